// Package ledger derives net balances and settlement plans from the current
// expense set and rate table. Everything here is a pure view: nothing is
// persisted and results are recomputed on every request.
package ledger

import (
	"tripledger/internal/currency"
)

// Entry carries the minimal expense information needed for balance
// calculations.
type Entry struct {
	Amount    float64
	Currency  string
	PaidBy    string
	SplitWith []string
	SettledBy []string
}

// ComputeBalances returns each member's net position in the reference
// currency: positive means the member is owed money, negative means they owe.
//
// Per entry, share = converted amount / number of split participants (the
// payer counts toward the divisor when present in the set). A debtor's share
// moves from their balance to the payer's. Shares where the debtor is the
// payer or has already settled are excluded entirely.
//
// Members in memberIDs always appear in the result, at 0 if uninvolved.
// Ids referenced only by entries (e.g. removed members) get entries too, so
// the sum over the mapping stays zero.
func ComputeBalances(entries []Entry, rates map[string]float64, reference string, memberIDs []string) (map[string]float64, error) {
	balances := make(map[string]float64, len(memberIDs))
	for _, id := range memberIDs {
		balances[id] = 0
	}

	for _, e := range entries {
		refAmount, err := currency.Convert(e.Amount, e.Currency, reference, rates)
		if err != nil {
			return nil, err
		}

		splitCount := len(e.SplitWith)
		if splitCount == 0 {
			splitCount = 1
		}
		share := refAmount / float64(splitCount)

		settled := make(map[string]bool, len(e.SettledBy))
		for _, id := range e.SettledBy {
			settled[id] = true
		}

		for _, debtor := range e.SplitWith {
			if debtor == e.PaidBy || settled[debtor] {
				continue
			}
			balances[debtor] -= share
			balances[e.PaidBy] += share
		}
	}

	return balances, nil
}
