package widget

import (
	"fmt"
	"math"
	"strings"

	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/shopspring/decimal"
)

const (
	maxAmountMagnitude = 309
	minAmountMagnitude = -324
)

// ParseAmount accepts both "." and "," as the decimal separator and only
// finite, non-negative values.
func ParseAmount(raw string) (float64, error) {
	normalized := strings.Replace(strings.TrimSpace(raw), ",", ".", 1)

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", model.ErrValidation, raw)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", model.ErrValidation, raw)
	}
	// Float64 expands the exponent into a big.Int, so check magnitude first.
	if magnitude := int64(d.Exponent()) + int64(d.NumDigits()); magnitude > maxAmountMagnitude || magnitude < minAmountMagnitude {
		return 0, fmt.Errorf("%w: %q is out of range", model.ErrValidation, raw)
	}

	amount, _ := d.Float64()
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return 0, fmt.Errorf("%w: %q is out of range", model.ErrValidation, raw)
	}
	return amount, nil
}
