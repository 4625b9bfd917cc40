// Package money parses user-supplied amount strings into exact decimals.
package money

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse errors. Messages are surfaced to API clients verbatim.
var (
	ErrAmountEmpty       = errors.New("Amount cannot be empty")
	ErrInvalidFormat     = errors.New("Invalid amount format")
	ErrAmountNotPositive = errors.New("Amount must be greater than zero")
	ErrAmountScale       = errors.New("Amount cannot have more than 2 decimal places")
)

// amountPattern is the accepted wire shape: a plain base-10 decimal
// literal with an optional leading minus. Exponent and explicit-plus
// forms are rejected even though the decimal library parses them.
var amountPattern = regexp.MustCompile(`^-?([0-9]+(\.[0-9]+)?|\.[0-9]+)$`)

// Parse converts a raw amount string into an exact decimal.
// The value must be a plain decimal literal strictly greater than zero
// that survives the store's two-decimal-place scale unchanged, so a
// persisted amount always equals the amount that was validated.
// Amounts are never represented as binary floats, so "45.99" stays 45.99.
func Parse(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Decimal{}, ErrAmountEmpty
	}

	if !amountPattern.MatchString(trimmed) {
		return decimal.Decimal{}, ErrInvalidFormat
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidFormat
	}

	if !amount.IsPositive() {
		return decimal.Decimal{}, ErrAmountNotPositive
	}

	// Sub-cent digits would be rounded away on write, which for values
	// under 0.005 silently stores a zero amount.
	if !amount.Equal(amount.Round(2)) {
		return decimal.Decimal{}, ErrAmountScale
	}

	return amount, nil
}
