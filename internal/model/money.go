package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is an amount in minor currency units, as sent to and received from Spliit.
type Cents int64

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

// Decimal returns the amount in major units ("12.50" for 1250).
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// String formats the amount with exactly two decimal places.
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// ParseCents parses a major-unit amount such as "12.50" or "7" into Cents.
// Amounts with sub-cent precision are rejected rather than rounded.
func ParseCents(s string) (Cents, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	minor := d.Mul(hundred)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	if minor.GreaterThan(maxCents) || minor.LessThan(minCents) {
		return 0, fmt.Errorf("amount %q is out of range", s)
	}
	return Cents(minor.IntPart()), nil
}
