package rates

import "time"

// Rate is one row of the rate table: the price of a currency expressed in
// the reference currency.
type Rate struct {
	Code      string    `json:"code"`
	Rate      float64   `json:"rate"`
	UpdatedAt time.Time `json:"updated_at"`
}
