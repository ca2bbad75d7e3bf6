package utils

import (
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: name, Header: header, Size: size}
}

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()
	now := time.Now()

	id, err := u.NewULIDFromTimestamp(now)
	require.NoError(t, err)

	parsed, err := ulid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(now), parsed.Time())
}

func TestNewUUID(t *testing.T) {
	id, err := New().NewUUID()
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestValidateImageFile(t *testing.T) {
	u := New()

	tests := []struct {
		name string
		file *multipart.FileHeader
		want error
	}{
		{"Valid", imageHeader("bali.jpg", "image/jpeg", 1024), nil},
		{"UppercaseExtension", imageHeader("BALI.PNG", "image/png", 1024), nil},
		{"Missing", nil, ErrNoFile},
		{"TooLarge", imageHeader("bali.jpg", "image/jpeg", 6*1024*1024), ErrFileTooLarge},
		{"NotImage", imageHeader("notes.pdf", "application/pdf", 1024), ErrNotAnImage},
		{"BadExtension", imageHeader("bali.bmp", "image/bmp", 1024), ErrInvalidImageExt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := u.ValidateImageFile(tt.file)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
