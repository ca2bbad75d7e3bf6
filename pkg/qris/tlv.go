package qris

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrMalformedPayload = errors.New("qris: malformed TLV payload")

const (
	TagPayloadFormat     = "00"
	TagPointOfInitiation = "01"
	TagAmount            = "54"
	TagFee               = "55"
	TagCountryCode       = "58"
	TagMerchantName      = "59"
	TagMerchantCity      = "60"
	TagCRC               = "63"
)

type Field struct {
	Tag   string
	Value string
}

func (f Field) String() string {
	return fmt.Sprintf("%s%02d%s", f.Tag, len([]rune(f.Value)), f.Value)
}

// Parse tokenizes a payload into its top-level fields, reading tag, length
// and value in order from the first character. Lengths count characters.
func Parse(payload string) ([]Field, error) {
	runes := []rune(payload)
	fields := make([]Field, 0, 16)

	for pos := 0; pos < len(runes); {
		if pos+4 > len(runes) {
			return nil, fmt.Errorf("%w: truncated header at offset %d", ErrMalformedPayload, pos)
		}

		tag := string(runes[pos : pos+2])
		if !isDigits(tag) {
			return nil, fmt.Errorf("%w: non-numeric tag %q at offset %d", ErrMalformedPayload, tag, pos)
		}

		rawLength := string(runes[pos+2 : pos+4])
		if !isDigits(rawLength) {
			return nil, fmt.Errorf("%w: non-numeric length %q for tag %s", ErrMalformedPayload, rawLength, tag)
		}
		length, _ := strconv.Atoi(rawLength)

		start := pos + 4
		end := start + length
		if end > len(runes) {
			return nil, fmt.Errorf("%w: tag %s wants %d characters, %d left", ErrMalformedPayload, tag, length, len(runes)-start)
		}

		fields = append(fields, Field{Tag: tag, Value: string(runes[start:end])})
		pos = end
	}

	return fields, nil
}

func Lookup(fields []Field, tag string) (string, bool) {
	for _, f := range fields {
		if f.Tag == tag {
			return f.Value, true
		}
	}
	return "", false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
