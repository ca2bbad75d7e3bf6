package qrcode

import (
	"encoding/base64"
	"errors"

	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

var ErrEmptyContent = errors.New("qrcode: content is empty")

// Render encodes content as a PNG QR image. A non-positive size falls back to
// DefaultSize.
func Render(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}

	return qrcode.Encode(content, qrcode.Low, size)
}

// RenderBase64 is Render with the PNG bytes base64 encoded, ready for an
// inline data URI.
func RenderBase64(content string, size int) (string, error) {
	png, err := Render(content, size)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
