package qris

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type FeeKind string

const (
	FeeKindPercentage FeeKind = "persentase"
	FeeKindRupiah     FeeKind = "rupiah"
)

const (
	rupiahFeePrefix     = "55020256"
	percentageFeePrefix = "55020357"
)

// Fee is the convenience fee carried by a dynamic code. A nil *Fee means no fee.
type Fee struct {
	Kind  FeeKind
	Value float64
}

func RupiahFee(value float64) *Fee {
	return &Fee{Kind: FeeKindRupiah, Value: value}
}

func PercentageFee(value float64) *Fee {
	return &Fee{Kind: FeeKindPercentage, Value: value}
}

// NewFee builds a fee from loosely typed input. Any kind other than "rupiah"
// is treated as a percentage.
func NewFee(kind string, value *float64) *Fee {
	if value == nil {
		return nil
	}

	if strings.EqualFold(strings.TrimSpace(kind), string(FeeKindRupiah)) {
		return RupiahFee(*value)
	}

	return PercentageFee(*value)
}

func (k FeeKind) Valid() bool {
	return k == FeeKindPercentage || k == FeeKindRupiah
}

// Encode returns the tag 55 group for the fee, or "" when there is nothing to
// encode. Rupiah values are truncated toward zero, percentages are kept as is.
func (f *Fee) Encode() (string, error) {
	if f == nil || !(f.Value > 0) {
		return "", nil
	}

	if math.IsInf(f.Value, 0) {
		return "", fmt.Errorf("fee value is not finite")
	}

	if f.Kind == FeeKindRupiah {
		value, err := formatInteger(f.Value)
		if err != nil {
			return "", err
		}
		return rupiahFeePrefix + lengthOf(value) + value, nil
	}

	value := strconv.FormatFloat(f.Value, 'f', -1, 64)
	return percentageFeePrefix + lengthOf(value) + value, nil
}

func formatInteger(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("value %v is not finite", v)
	}

	t := math.Trunc(v)
	if t >= math.MaxInt64 || t < math.MinInt64 {
		return "", fmt.Errorf("value %v is out of range", v)
	}

	return strconv.FormatInt(int64(t), 10), nil
}

func lengthOf(value string) string {
	return fmt.Sprintf("%02d", len(value))
}
