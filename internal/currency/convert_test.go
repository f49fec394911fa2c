package currency

import (
	"errors"
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	rates := map[string]float64{
		"JPY": 1,
		"HKD": 19.2,
		"AUD": 96.5,
		"USD": 150.0,
	}

	tests := []struct {
		name    string
		amount  float64
		from    string
		to      string
		want    float64
		wantErr bool
	}{
		{
			name:   "to reference currency",
			amount: 100,
			from:   "HKD",
			to:     "JPY",
			want:   1920,
		},
		{
			name:   "from reference currency",
			amount: 1920,
			from:   "JPY",
			to:     "HKD",
			want:   100,
		},
		{
			name:   "cross currency routes through reference",
			amount: 10,
			from:   "USD",
			to:     "HKD",
			want:   10 * 150.0 / 19.2,
		},
		{
			name:   "same currency is identity",
			amount: 42.5,
			from:   "AUD",
			to:     "AUD",
			want:   42.5,
		},
		{
			name:   "zero amount",
			amount: 0,
			from:   "USD",
			to:     "JPY",
			want:   0,
		},
		{
			name:    "unknown source currency",
			amount:  10,
			from:    "GBP",
			to:      "JPY",
			wantErr: true,
		},
		{
			name:    "unknown target currency",
			amount:  10,
			from:    "JPY",
			to:      "GBP",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.amount, tt.from, tt.to, rates)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Convert() error = nil, want ErrUnknownCurrency")
				}
				if !errors.Is(err, ErrUnknownCurrency) {
					t.Errorf("Convert() error = %v, want ErrUnknownCurrency", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Convert() unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Convert() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Converting A→B→A must return the original amount up to floating-point
// rounding (relative tolerance 1e-6).
func TestConvertRoundTrip(t *testing.T) {
	rates := map[string]float64{
		"JPY": 1,
		"HKD": 19.2,
		"AUD": 96.5,
		"USD": 150.0,
		"EUR": 162.0,
		"TWD": 4.7,
	}

	amounts := []float64{0.01, 1, 3.33, 1000, 98765.43}

	for from := range rates {
		for to := range rates {
			for _, amount := range amounts {
				mid, err := Convert(amount, from, to, rates)
				if err != nil {
					t.Fatalf("Convert(%v, %s, %s) error: %v", amount, from, to, err)
				}
				back, err := Convert(mid, to, from, rates)
				if err != nil {
					t.Fatalf("Convert(%v, %s, %s) error: %v", mid, to, from, err)
				}
				if math.Abs(back-amount)/amount > 1e-6 {
					t.Errorf("round trip %s→%s→%s: got %v, want %v", from, to, from, back, amount)
				}
			}
		}
	}
}
