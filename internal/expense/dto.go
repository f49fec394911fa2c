package expense

// CreateExpenseRequest represents the request to record an expense
type CreateExpenseRequest struct {
	Title     string   `json:"title" validate:"max=255"`
	Amount    float64  `json:"amount" validate:"required,gte=0"`
	Currency  string   `json:"currency" validate:"required"`
	Category  string   `json:"category"`
	PaidBy    string   `json:"paid_by"`
	SplitWith []string `json:"split_with" validate:"required,min=1"`
	SettledBy []string `json:"settled_by"`
	Date      string   `json:"date"` // YYYY-MM-DD, defaults to today
}

// UpdateExpenseRequest replaces an existing record's fields.
// Updates are whole-record, mirroring the create shape.
type UpdateExpenseRequest struct {
	Title     string   `json:"title" validate:"max=255"`
	Amount    float64  `json:"amount" validate:"required,gte=0"`
	Currency  string   `json:"currency" validate:"required"`
	Category  string   `json:"category"`
	PaidBy    string   `json:"paid_by" validate:"required"`
	SplitWith []string `json:"split_with" validate:"required,min=1"`
	SettledBy []string `json:"settled_by"`
	Date      string   `json:"date"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Amount           float64  `json:"amount"`
	Currency         string   `json:"currency"`
	Category         string   `json:"category"`
	PaidBy           string   `json:"paid_by"`
	SplitWith        []string `json:"split_with"`
	SettledBy        []string `json:"settled_by"`
	Date             string   `json:"date"`
	CreatedAt        string   `json:"created_at"`
	FullySettled     bool     `json:"fully_settled"`
	PartiallySettled bool     `json:"partially_settled"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:               e.ID,
		Title:            e.Title,
		Amount:           e.Amount,
		Currency:         e.Currency,
		Category:         e.Category,
		PaidBy:           e.PaidBy,
		SplitWith:        e.SplitWith,
		SettledBy:        e.SettledBy,
		Date:             e.Date.Format("2006-01-02"),
		CreatedAt:        e.CreatedAt.Format("2006-01-02T15:04:05Z"),
		FullySettled:     e.IsFullySettled(),
		PartiallySettled: e.IsPartiallySettled(),
	}
}
