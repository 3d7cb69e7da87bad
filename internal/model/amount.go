package model

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-entered decimal amount into satoshis without
// going through floating point. Negative amounts and amounts with more than
// eight significant fractional digits are rejected.
func ParseAmount(s string) (btcutil.Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount %q is negative", s)
	}
	sats := d.Shift(8)
	if !sats.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than 8 decimal places", s)
	}
	if !sats.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %q out of range", s)
	}
	return btcutil.Amount(sats.IntPart()), nil
}

// FormatAmount renders satoshis as the decimal unit string the wallet service
// and the form use, without trailing zeros.
func FormatAmount(a btcutil.Amount) string {
	return decimal.New(int64(a), -8).String()
}

// AmountDecimal converts satoshis to the decimal unit as an exact decimal.
func AmountDecimal(a btcutil.Amount) decimal.Decimal {
	return decimal.New(int64(a), -8)
}
