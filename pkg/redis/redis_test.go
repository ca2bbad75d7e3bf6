package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLFromEnv(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Duration
	}{
		{"Unset", "", 10 * time.Minute},
		{"Minutes", "5m", 5 * time.Minute},
		{"Garbage", "soon", 10 * time.Minute},
		{"Negative", "-1m", 10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("QRIS_CACHE_TTL", tt.raw)
			assert.Equal(t, tt.want, TTLFromEnv("QRIS_CACHE_TTL", 10*time.Minute))
		})
	}
}
