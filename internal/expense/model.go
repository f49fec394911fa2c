package expense

import (
	"errors"
	"fmt"
	"time"
)

// Common errors. The ErrInvalidExpense family marks data-model invariant
// violations; handlers map every member of the family to a 400.
var (
	ErrInvalidExpense   = errors.New("invalid expense")
	ErrEmptySplit       = fmt.Errorf("%w: at least one split participant is required", ErrInvalidExpense)
	ErrNegativeAmount   = fmt.Errorf("%w: amount cannot be negative", ErrInvalidExpense)
	ErrSettledNotSplit  = fmt.Errorf("%w: settled members must be split participants", ErrInvalidExpense)
	ErrNotParticipant   = fmt.Errorf("%w: member is not a split participant", ErrInvalidExpense)
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrPayerRequired    = fmt.Errorf("%w: paid_by is required", ErrInvalidExpense)
	ErrCurrencyRequired = fmt.Errorf("%w: currency is required", ErrInvalidExpense)
	ErrInvalidDate      = fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidExpense)
)

// Expense represents a single shared cost on the trip.
//
// SplitWith holds the members owing a share; the payer typically appears in
// it but does not have to. SettledBy is always present (never nil) and holds
// the split participants who have already reimbursed their share.
type Expense struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Category  string    `json:"category"`
	PaidBy    string    `json:"paid_by"`
	SplitWith []string  `json:"split_with"`
	SettledBy []string  `json:"settled_by"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// validateRecord checks the data-model invariants shared by create and update
func validateRecord(amount float64, paidBy string, currencyCode string, splitWith, settledBy []string) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if paidBy == "" {
		return ErrPayerRequired
	}
	if currencyCode == "" {
		return ErrCurrencyRequired
	}
	if len(splitWith) == 0 {
		return ErrEmptySplit
	}

	split := make(map[string]bool, len(splitWith))
	for _, id := range splitWith {
		split[id] = true
	}
	for _, id := range settledBy {
		if !split[id] {
			return ErrSettledNotSplit
		}
	}

	return nil
}

// flipSettled toggles membership of memberID in the settled set,
// preserving the order of the remaining entries.
func flipSettled(settledBy []string, memberID string) []string {
	for i, id := range settledBy {
		if id == memberID {
			return append(append([]string{}, settledBy[:i]...), settledBy[i+1:]...)
		}
	}
	return append(append([]string{}, settledBy...), memberID)
}

// nextSettledSet returns the settled set after toggling memberID on e, and
// whether the set actually changed. Toggling the payer is a no-op: the payer
// never owes themselves and is treated as settled regardless of the stored
// set. Toggling a member outside the split set fails with ErrNotParticipant,
// keeping the settled set a subset of the split set.
func nextSettledSet(e *Expense, memberID string) ([]string, bool, error) {
	if memberID == e.PaidBy {
		return e.SettledBy, false, nil
	}
	if !contains(e.SplitWith, memberID) {
		return nil, false, ErrNotParticipant
	}
	return flipSettled(e.SettledBy, memberID), true, nil
}

// contains reports whether id is present in ids
func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// IsFullySettled reports whether every split participant other than the payer
// has reimbursed their share. The payer is implicitly always settled.
func (e *Expense) IsFullySettled() bool {
	for _, id := range e.SplitWith {
		if id == e.PaidBy {
			continue
		}
		if !contains(e.SettledBy, id) {
			return false
		}
	}
	return true
}

// IsPartiallySettled reports whether some, but not all, shares are reimbursed
func (e *Expense) IsPartiallySettled() bool {
	return len(e.SettledBy) > 0 && !e.IsFullySettled()
}
