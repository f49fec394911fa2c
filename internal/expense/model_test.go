package expense

import (
	"errors"
	"testing"
	"time"
)

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		paidBy    string
		currency  string
		splitWith []string
		settledBy []string
		wantErr   error
	}{
		{
			name:      "valid record",
			amount:    3000,
			paidBy:    "A",
			currency:  "JPY",
			splitWith: []string{"A", "B"},
			settledBy: []string{"B"},
		},
		{
			name:      "zero amount is allowed",
			amount:    0,
			paidBy:    "A",
			currency:  "JPY",
			splitWith: []string{"A"},
		},
		{
			name:      "negative amount",
			amount:    -1,
			paidBy:    "A",
			currency:  "JPY",
			splitWith: []string{"A"},
			wantErr:   ErrNegativeAmount,
		},
		{
			name:     "empty split set",
			amount:   100,
			paidBy:   "A",
			currency: "JPY",
			wantErr:  ErrEmptySplit,
		},
		{
			name:      "settled member outside split set",
			amount:    100,
			paidBy:    "A",
			currency:  "JPY",
			splitWith: []string{"A", "B"},
			settledBy: []string{"C"},
			wantErr:   ErrSettledNotSplit,
		},
		{
			name:      "missing payer",
			amount:    100,
			currency:  "JPY",
			splitWith: []string{"A"},
			wantErr:   ErrPayerRequired,
		},
		{
			name:      "missing currency",
			amount:    100,
			paidBy:    "A",
			splitWith: []string{"A"},
			wantErr:   ErrCurrencyRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRecord(tt.amount, tt.paidBy, tt.currency, tt.splitWith, tt.settledBy)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("validateRecord() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateRecord() error = %v, want %v", err, tt.wantErr)
			}
			// Every validation failure belongs to the ErrInvalidExpense family
			if !errors.Is(err, ErrInvalidExpense) {
				t.Errorf("validateRecord() error = %v, want ErrInvalidExpense family", err)
			}
		})
	}
}

func TestFlipSettled(t *testing.T) {
	settled := []string{"B", "C"}

	added := flipSettled(settled, "D")
	if len(added) != 3 || added[2] != "D" {
		t.Errorf("flipSettled add = %v, want [B C D]", added)
	}

	removed := flipSettled(settled, "B")
	if len(removed) != 1 || removed[0] != "C" {
		t.Errorf("flipSettled remove = %v, want [C]", removed)
	}

	// The input slice must not be mutated
	if len(settled) != 2 || settled[0] != "B" || settled[1] != "C" {
		t.Errorf("flipSettled mutated its input: %v", settled)
	}

	fromEmpty := flipSettled(nil, "A")
	if len(fromEmpty) != 1 || fromEmpty[0] != "A" {
		t.Errorf("flipSettled from nil = %v, want [A]", fromEmpty)
	}
}

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := parseDate("2026-08-30", time.Now())
		if err != nil {
			t.Fatalf("parseDate() unexpected error: %v", err)
		}
		want := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("parseDate() = %v, want %v", got, want)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		if _, err := parseDate("30/08/2026", time.Now()); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("parseDate() error = %v, want ErrInvalidDate", err)
		}
	})

	t.Run("empty date uses the UTC calendar date of the fallback", func(t *testing.T) {
		// 01:30 on March 1st in UTC+9 is still February 28th in UTC
		fallback := time.Date(2026, 3, 1, 1, 30, 0, 0, time.FixedZone("UTC+9", 9*3600))
		got, err := parseDate("", fallback)
		if err != nil {
			t.Fatalf("parseDate() unexpected error: %v", err)
		}
		want := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("parseDate() = %v, want %v", got, want)
		}
	})
}

func TestNextSettledSet(t *testing.T) {
	record := &Expense{
		PaidBy:    "A",
		SplitWith: []string{"A", "B", "C"},
		SettledBy: []string{"B"},
	}

	tests := []struct {
		name        string
		memberID    string
		wantSettled []string
		wantChanged bool
		wantErr     error
	}{
		{
			name:        "toggling the payer leaves the set unchanged",
			memberID:    "A",
			wantSettled: []string{"B"},
			wantChanged: false,
		},
		{
			name:        "toggling an unsettled participant adds them",
			memberID:    "C",
			wantSettled: []string{"B", "C"},
			wantChanged: true,
		},
		{
			name:        "toggling a settled participant removes them",
			memberID:    "B",
			wantSettled: []string{},
			wantChanged: true,
		},
		{
			name:     "toggling a non-participant is rejected",
			memberID: "D",
			wantErr:  ErrNotParticipant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settled, changed, err := nextSettledSet(record, tt.memberID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("nextSettledSet() error = %v, want %v", err, tt.wantErr)
				}
				if !errors.Is(err, ErrInvalidExpense) {
					t.Errorf("nextSettledSet() error = %v, want ErrInvalidExpense family", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("nextSettledSet() unexpected error: %v", err)
			}
			if changed != tt.wantChanged {
				t.Errorf("nextSettledSet() changed = %v, want %v", changed, tt.wantChanged)
			}
			if len(settled) != len(tt.wantSettled) {
				t.Fatalf("nextSettledSet() = %v, want %v", settled, tt.wantSettled)
			}
			for i := range settled {
				if settled[i] != tt.wantSettled[i] {
					t.Errorf("nextSettledSet() = %v, want %v", settled, tt.wantSettled)
				}
			}
		})
	}
}

func TestSettlementStatus(t *testing.T) {
	tests := []struct {
		name          string
		expense       Expense
		wantFull      bool
		wantPartially bool
	}{
		{
			name: "nobody settled",
			expense: Expense{
				PaidBy:    "A",
				SplitWith: []string{"A", "B", "C"},
				SettledBy: []string{},
			},
		},
		{
			name: "some settled",
			expense: Expense{
				PaidBy:    "A",
				SplitWith: []string{"A", "B", "C"},
				SettledBy: []string{"B"},
			},
			wantPartially: true,
		},
		{
			name: "all debtors settled, payer implicitly settled",
			expense: Expense{
				PaidBy:    "A",
				SplitWith: []string{"A", "B", "C"},
				SettledBy: []string{"B", "C"},
			},
			wantFull: true,
		},
		{
			name: "payer-only split is trivially settled",
			expense: Expense{
				PaidBy:    "A",
				SplitWith: []string{"A"},
				SettledBy: []string{},
			},
			wantFull: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expense.IsFullySettled(); got != tt.wantFull {
				t.Errorf("IsFullySettled() = %v, want %v", got, tt.wantFull)
			}
			if got := tt.expense.IsPartiallySettled(); got != tt.wantPartially {
				t.Errorf("IsPartiallySettled() = %v, want %v", got, tt.wantPartially)
			}
		})
	}
}
