// Package currency implements conversion between trip currencies through a
// reference-currency rate table.
//
// The rate table maps a currency code to its price in the reference currency,
// so the reference currency itself always carries rate 1. Conversion routes
// through the reference currency implicitly:
//
//	converted = amount * rate(from) / rate(to)
package currency

import (
	"errors"
	"fmt"
)

// ErrUnknownCurrency is returned when a currency code is absent from the
// rate table. No default rate is ever assumed.
var ErrUnknownCurrency = errors.New("unknown currency")

// Convert converts an amount between two currencies using the given rate table
func Convert(amount float64, from, to string, rates map[string]float64) (float64, error) {
	rateFrom, ok := rates[from]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
	}

	rateTo, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, to)
	}

	return amount * rateFrom / rateTo, nil
}
