// Package core provides the domain types and pure scoring logic.
//
// This file contains parsing helpers for currency-formatted catalog text.
package core

import (
	"strings"
	"unicode"
)

// ParseRupees converts a currency-formatted fee string to whole rupees.
//
// It accepts the catalog's display format: an optional "₹" prefix and
// thousands separators ("₹1,000" -> 1000, "₹0" -> 0, "499" -> 499).
// Returns ErrInvalidFee for empty strings, negative values, or anything
// that is not digits after stripping the currency symbol and commas.
func ParseRupees(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, ErrInvalidFee
	}
	var n int64
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidFee
		}
		n = n*10 + int64(r-'0')
		if n < 0 {
			return 0, ErrInvalidFee
		}
	}
	return n, nil
}
