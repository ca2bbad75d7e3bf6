package qris

import (
	"strconv"
	"strings"
)

type Result struct {
	Valid        bool     `json:"valid"`
	IsDynamic    bool     `json:"is_dynamic"`
	IsStatic     bool     `json:"is_static"`
	Amount       *float64 `json:"amount"`
	MerchantName *string  `json:"merchant_name"`
	CityCode     *string  `json:"city_code"`
}

// Decode inspects a QRIS code. It never fails: a code whose checksum does not
// match comes back with Valid set to false and nothing else filled in.
//
// Well-formed codes are read field by field. Codes that do not tokenize fall
// back to locating the initiation and amount markers by substring, which can
// be fooled by a value that happens to contain them.
func Decode(code string) Result {
	var result Result

	if !Verify(code) {
		return result
	}
	result.Valid = true

	if fields, err := Parse(code); err == nil {
		decodeFields(&result, fields)
		return result
	}

	decodeLoose(&result, code)
	return result
}

func decodeFields(result *Result, fields []Field) {
	switch initiation, _ := Lookup(fields, TagPointOfInitiation); initiation {
	case "12":
		result.IsDynamic = true
	case "11":
		result.IsStatic = true
	}

	if raw, ok := Lookup(fields, TagAmount); ok {
		if amount, err := strconv.ParseFloat(raw, 64); err == nil {
			result.Amount = &amount
		}
	}
}

func decodeLoose(result *Result, code string) {
	if strings.Contains(code, dynamicInitiation) {
		result.IsDynamic = true
	} else if strings.Contains(code, staticInitiation) {
		result.IsStatic = true
	}

	idx := strings.Index(code, amountTag)
	if idx == -1 {
		return
	}

	length, err := strconv.Atoi(clamp(code, idx+2, idx+4))
	if err != nil {
		return
	}

	amount, err := strconv.ParseFloat(clamp(code, idx+4, idx+4+length), 64)
	if err != nil {
		return
	}
	result.Amount = &amount
}

// clamp slices s[from:to], shrinking the bounds to fit instead of panicking.
func clamp(s string, from, to int) string {
	if to > len(s) {
		to = len(s)
	}
	if from > to {
		return ""
	}
	return s[from:to]
}
