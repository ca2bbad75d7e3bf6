package qris

import (
	"errors"
	"strings"
)

const (
	staticInitiation  = "010211"
	dynamicInitiation = "010212"
	countryAnchor     = "5802ID"
	amountTag         = "54"
)

var ErrInvalidInput = errors.New("qris: static code is missing or too short")

// MakeDynamic turns a static QRIS code into a single-use dynamic one carrying
// amount and, optionally, a fee.
//
// Only a code that cannot hold a checksum is rejected. When the code does not
// follow the expected layout (no country anchor, or more than one) the input
// is returned untouched, since a static code is still payable. Callers that
// need to know whether a conversion happened should compare the result with
// the input.
func MakeDynamic(static string, amount float64, fee *Fee) (string, error) {
	payload, _, ok := splitChecksum(static)
	if !ok {
		return "", ErrInvalidInput
	}

	dynamic, err := makeDynamic(payload, amount, fee)
	if err != nil {
		return static, nil
	}

	return dynamic, nil
}

func makeDynamic(payload string, amount float64, fee *Fee) (string, error) {
	payload = strings.Replace(payload, staticInitiation, dynamicInitiation, 1)

	if strings.Count(payload, countryAnchor) != 1 {
		return "", errNonStandardFormat
	}
	head, tail, _ := strings.Cut(payload, countryAnchor)

	amountValue, err := formatInteger(amount)
	if err != nil {
		return "", err
	}

	feeTag, err := fee.Encode()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(head)
	b.WriteString(amountTag)
	b.WriteString(lengthOf(amountValue))
	b.WriteString(amountValue)
	b.WriteString(feeTag)
	b.WriteString(countryAnchor)
	b.WriteString(tail)

	return Sign(b.String()), nil
}

var errNonStandardFormat = errors.New("qris: country code anchor must appear exactly once")
