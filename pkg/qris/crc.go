package qris

import (
	"fmt"
	"unicode/utf8"
)

const (
	crcInit       uint16 = 0xFFFF
	crcPolynomial uint16 = 0x1021
	crcLength            = 4
)

// Checksum computes the CRC-16/CCITT-FALSE of data and returns it as four
// uppercase hex digits.
//
// The register is fed one code point at a time, not one UTF-8 byte at a time.
// Only the low byte of a code point survives the shift into the register, so
// "©" (U+00A9) and "Ω" (U+03A9) contribute the same value.
func Checksum(data string) string {
	crc := crcInit

	for _, r := range data {
		crc ^= uint16(r) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ crcPolynomial
			} else {
				crc <<= 1
			}
		}
	}

	return fmt.Sprintf("%04X", crc)
}

// Sign appends the checksum of payload to payload. The payload is expected to
// already end with the CRC tag and length ("6304").
func Sign(payload string) string {
	return payload + Checksum(payload)
}

// Verify reports whether the trailing four characters of code are the
// checksum of everything before them.
func Verify(code string) bool {
	payload, checksum, ok := splitChecksum(code)
	if !ok {
		return false
	}
	return Checksum(payload) == checksum
}

// splitChecksum separates the last four characters from the rest of code.
func splitChecksum(code string) (payload, checksum string, ok bool) {
	if utf8.RuneCountInString(code) < crcLength {
		return "", "", false
	}

	cut := len(code)
	for i := 0; i < crcLength; i++ {
		_, size := utf8.DecodeLastRuneInString(code[:cut])
		cut -= size
	}

	return code[:cut], code[cut:], true
}
