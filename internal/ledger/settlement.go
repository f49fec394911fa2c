package ledger

import (
	"math"
	"sort"
)

// settleEpsilon is the absolute threshold, in reference-currency units, below
// which a balance counts as settled. It keeps floating-point dust from
// producing transfers.
const settleEpsilon = 1.0

// Transfer is one suggested payment of a settlement plan
type Transfer struct {
	From   string
	To     string
	Amount float64
}

// Plan turns a net-balance mapping into an ordered list of transfers that
// zero out every balance, greedily matching the largest debtor against the
// largest creditor. The result is a good approximation, not the theoretical
// minimum transaction count.
//
// Output order is the emission order and is deterministic: parties with equal
// balances are ordered by member id ascending. An all-settled mapping yields
// an empty plan.
func Plan(balances map[string]float64) []Transfer {
	type party struct {
		id     string
		amount float64
	}

	var debtors, creditors []party
	for id, amount := range balances {
		switch {
		case amount < -settleEpsilon:
			debtors = append(debtors, party{id, amount})
		case amount > settleEpsilon:
			creditors = append(creditors, party{id, amount})
		}
	}

	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].amount != debtors[j].amount {
			return debtors[i].amount < debtors[j].amount
		}
		return debtors[i].id < debtors[j].id
	})
	sort.Slice(creditors, func(i, j int) bool {
		if creditors[i].amount != creditors[j].amount {
			return creditors[i].amount > creditors[j].amount
		}
		return creditors[i].id < creditors[j].id
	})

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := math.Min(-debtor.amount, creditor.amount)
		transfers = append(transfers, Transfer{
			From:   debtor.id,
			To:     creditor.id,
			Amount: amount,
		})

		debtor.amount += amount
		creditor.amount -= amount

		if -debtor.amount < settleEpsilon {
			i++
		}
		if creditor.amount < settleEpsilon {
			j++
		}
	}

	return transfers
}
