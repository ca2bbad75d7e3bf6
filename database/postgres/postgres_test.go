package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDSN(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "tour")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "tourism")

	t.Run("DefaultsSSLModeToDisable", func(t *testing.T) {
		t.Setenv("DB_SSLMODE", "")
		assert.Equal(t,
			"host=localhost port=5432 user=tour password=secret dbname=tourism sslmode=disable",
			FormatDSN())
	})

	t.Run("HonoursSSLMode", func(t *testing.T) {
		t.Setenv("DB_SSLMODE", "require")
		assert.Contains(t, FormatDSN(), "sslmode=require")
	})
}
