package ledger

// BalancesResponse maps member ids to their net position in the requested
// display currency.
type BalancesResponse struct {
	Currency string             `json:"currency"`
	Balances map[string]float64 `json:"balances"`
}

// TransferResponse is one suggested payment
type TransferResponse struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// PlanResponse is the ordered settlement plan
type PlanResponse struct {
	Currency  string              `json:"currency"`
	Transfers []*TransferResponse `json:"transfers"`
}

// SummaryResponse is the spending dashboard: whole-trip and today's totals
type SummaryResponse struct {
	Currency   string  `json:"currency"`
	Total      float64 `json:"total"`
	TodayTotal float64 `json:"today_total"`
	TodayCount int     `json:"today_count"`
}

// BreakdownRow is one group of the spending breakdown
type BreakdownRow struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

// BreakdownResponse groups spending by category or by day
type BreakdownResponse struct {
	Mode     string          `json:"mode"`
	Currency string          `json:"currency"`
	Rows     []*BreakdownRow `json:"rows"`
}

// ConvertResponse is the result of a display-layer conversion
type ConvertResponse struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted float64 `json:"converted"`
}
