package ledger

import (
	"math"
	"testing"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name     string
		balances map[string]float64
		want     []Transfer
	}{
		{
			name:     "two debtors one creditor",
			balances: map[string]float64{"A": 2000, "B": -1000, "C": -1000},
			want: []Transfer{
				{From: "B", To: "A", Amount: 1000},
				{From: "C", To: "A", Amount: 1000},
			},
		},
		{
			name:     "single remaining debt",
			balances: map[string]float64{"A": 1000, "B": 0, "C": -1000},
			want: []Transfer{
				{From: "C", To: "A", Amount: 1000},
			},
		},
		{
			name:     "largest debtor matched against largest creditor first",
			balances: map[string]float64{"A": 500, "B": 1500, "C": -2000},
			want: []Transfer{
				{From: "C", To: "B", Amount: 1500},
				{From: "C", To: "A", Amount: 500},
			},
		},
		{
			name:     "all zero yields empty plan",
			balances: map[string]float64{"A": 0, "B": 0},
			want:     nil,
		},
		{
			name:     "dust below threshold is ignored",
			balances: map[string]float64{"A": 0.4, "B": -0.4},
			want:     nil,
		},
		{
			name:     "empty mapping",
			balances: map[string]float64{},
			want:     nil,
		},
		{
			name:     "equal balances tie-break by id ascending",
			balances: map[string]float64{"D": -500, "B": -500, "C": 500, "A": 500},
			want: []Transfer{
				{From: "B", To: "A", Amount: 500},
				{From: "D", To: "C", Amount: 500},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Plan(tt.balances)
			if len(got) != len(tt.want) {
				t.Fatalf("Plan() returned %d transfers, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i].From != tt.want[i].From || got[i].To != tt.want[i].To {
					t.Errorf("transfer %d = %s→%s, want %s→%s", i, got[i].From, got[i].To, tt.want[i].From, tt.want[i].To)
				}
				if math.Abs(got[i].Amount-tt.want[i].Amount) > 1e-6 {
					t.Errorf("transfer %d amount = %v, want %v", i, got[i].Amount, tt.want[i].Amount)
				}
			}
		})
	}
}

// Applying every transfer must bring all balances below the dust threshold.
func TestPlanCompleteness(t *testing.T) {
	balances := map[string]float64{
		"A": 3150.75,
		"B": -1200.25,
		"C": -2000.5,
		"D": 850,
		"E": -800,
	}

	remaining := make(map[string]float64, len(balances))
	for id, amount := range balances {
		remaining[id] = amount
	}

	transfers := Plan(balances)
	for _, tr := range transfers {
		if tr.Amount <= 0 {
			t.Errorf("non-positive transfer amount: %+v", tr)
		}
		remaining[tr.From] += tr.Amount
		remaining[tr.To] -= tr.Amount
	}

	for id, amount := range remaining {
		if math.Abs(amount) >= settleEpsilon {
			t.Errorf("balance[%s] = %v after settlement, want |x| < %v", id, amount, settleEpsilon)
		}
	}

	// Worst-case greedy bound: one transfer per party minus one.
	if max := 5 - 1; len(transfers) > max {
		t.Errorf("plan has %d transfers, want at most %d", len(transfers), max)
	}
}

// The emitted total equals the sum of positive balances.
func TestPlanConservation(t *testing.T) {
	balances := map[string]float64{
		"A": 1234.5,
		"B": 765.5,
		"C": -1500,
		"D": -500,
	}

	var positive float64
	for _, amount := range balances {
		if amount > 0 {
			positive += amount
		}
	}

	var emitted float64
	for _, tr := range Plan(balances) {
		emitted += tr.Amount
	}

	if math.Abs(emitted-positive) > settleEpsilon {
		t.Errorf("emitted total = %v, want %v", emitted, positive)
	}
}

// The plan is a pure function: identical input maps yield identical output.
func TestPlanDeterministic(t *testing.T) {
	balances := map[string]float64{
		"A": 100, "B": 100, "C": 100,
		"D": -100, "E": -100, "F": -100,
	}

	first := Plan(balances)
	for i := 0; i < 10; i++ {
		next := Plan(map[string]float64{
			"A": 100, "B": 100, "C": 100,
			"D": -100, "E": -100, "F": -100,
		})
		if len(next) != len(first) {
			t.Fatalf("run %d: %d transfers, want %d", i, len(next), len(first))
		}
		for j := range next {
			if next[j] != first[j] {
				t.Fatalf("run %d: transfer %d = %+v, want %+v", i, j, next[j], first[j])
			}
		}
	}
}
