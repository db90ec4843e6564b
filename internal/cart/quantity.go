package cart

import (
	"math"
	"strconv"
	"strings"
)

// MaxQuantity caps coerced quantities
const MaxQuantity = math.MaxInt32

// ParseQuantity coerces free-form input into a non-negative quantity.
// Fractions floor; negative, non-numeric and non-finite input yields 0.
func ParseQuantity(raw string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return CoerceQuantity(v)
}

// CoerceQuantity applies the ParseQuantity rules to a number
func CoerceQuantity(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	v = math.Floor(v)
	if v > MaxQuantity {
		return MaxQuantity
	}
	return int(v)
}

// addQuantity returns current + delta with the sum capped at MaxQuantity.
// current must already be within [0, MaxQuantity].
func addQuantity(current, delta int) int {
	if delta > MaxQuantity-current {
		return MaxQuantity
	}
	return current + delta
}

// lineTotal multiplies a unit price by a quantity, saturating at math.MaxInt64
func lineTotal(price int64, quantity int) int64 {
	if price == 0 || quantity <= 0 {
		return 0
	}
	if price > math.MaxInt64/int64(quantity) {
		return math.MaxInt64
	}
	return price * int64(quantity)
}

func addTotal(total, line int64) int64 {
	if line > math.MaxInt64-total {
		return math.MaxInt64
	}
	return total + line
}
