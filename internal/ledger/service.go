package ledger

import (
	"context"
	"errors"
	"sort"
	"time"

	"tripledger/internal/currency"
	"tripledger/internal/expense"
	"tripledger/internal/member"
	"tripledger/internal/rates"
)

// Breakdown modes
const (
	BreakdownByCategory = "category"
	BreakdownByDay      = "daily"
)

// ErrInvalidBreakdownMode is returned for an unrecognized breakdown mode
var ErrInvalidBreakdownMode = errors.New("breakdown mode must be category or daily")

// Service derives ledger views from the expense store and rate table.
// It holds no state of its own; every read recomputes from scratch.
type Service struct {
	expenseRepo *expense.Repository
	memberRepo  *member.Repository
	rates       *rates.Service
}

// NewService creates a new ledger service
func NewService(expenseRepo *expense.Repository, memberRepo *member.Repository, ratesService *rates.Service) *Service {
	return &Service{
		expenseRepo: expenseRepo,
		memberRepo:  memberRepo,
		rates:       ratesService,
	}
}

// Balances computes every member's net position in the display currency.
// An empty displayCurrency means the reference currency.
func (s *Service) Balances(ctx context.Context, displayCurrency string) (*BalancesResponse, error) {
	balances, table, err := s.referenceBalances(ctx)
	if err != nil {
		return nil, err
	}

	displayCurrency, err = s.resolveDisplay(displayCurrency, table)
	if err != nil {
		return nil, err
	}

	converted := make(map[string]float64, len(balances))
	for id, amount := range balances {
		value, err := currency.Convert(amount, s.rates.Reference(), displayCurrency, table)
		if err != nil {
			return nil, err
		}
		converted[id] = value
	}

	return &BalancesResponse{
		Currency: displayCurrency,
		Balances: converted,
	}, nil
}

// SettlementPlan suggests the transfers that would zero out all balances,
// expressed in the display currency. The plan itself is computed in the
// reference currency so the dust threshold is stable across display choices.
func (s *Service) SettlementPlan(ctx context.Context, displayCurrency string) (*PlanResponse, error) {
	balances, table, err := s.referenceBalances(ctx)
	if err != nil {
		return nil, err
	}

	displayCurrency, err = s.resolveDisplay(displayCurrency, table)
	if err != nil {
		return nil, err
	}

	transfers := Plan(balances)
	result := make([]*TransferResponse, len(transfers))
	for i, t := range transfers {
		amount, err := currency.Convert(t.Amount, s.rates.Reference(), displayCurrency, table)
		if err != nil {
			return nil, err
		}
		result[i] = &TransferResponse{
			From:   t.From,
			To:     t.To,
			Amount: amount,
		}
	}

	return &PlanResponse{
		Currency:  displayCurrency,
		Transfers: result,
	}, nil
}

// Summary reports the whole-trip total plus today's total and record count
func (s *Service) Summary(ctx context.Context, displayCurrency string) (*SummaryResponse, error) {
	expenses, table, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	displayCurrency, err = s.resolveDisplay(displayCurrency, table)
	if err != nil {
		return nil, err
	}

	// Expense dates are UTC calendar dates, so "today" is the UTC date too
	today := time.Now().UTC().Format("2006-01-02")
	summary := &SummaryResponse{Currency: displayCurrency}

	for _, e := range expenses {
		value, err := currency.Convert(e.Amount, e.Currency, displayCurrency, table)
		if err != nil {
			return nil, err
		}
		summary.Total += value
		if e.Date.UTC().Format("2006-01-02") == today {
			summary.TodayTotal += value
			summary.TodayCount++
		}
	}

	return summary, nil
}

// Breakdown groups spending by category or by day with percentage shares.
// Category rows are sorted by value descending, daily rows by date descending.
func (s *Service) Breakdown(ctx context.Context, mode, displayCurrency string) (*BreakdownResponse, error) {
	if mode == "" {
		mode = BreakdownByCategory
	}
	if mode != BreakdownByCategory && mode != BreakdownByDay {
		return nil, ErrInvalidBreakdownMode
	}

	expenses, table, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	displayCurrency, err = s.resolveDisplay(displayCurrency, table)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]float64)
	var total float64
	for _, e := range expenses {
		value, err := currency.Convert(e.Amount, e.Currency, displayCurrency, table)
		if err != nil {
			return nil, err
		}

		key := e.Category
		if mode == BreakdownByDay {
			key = e.Date.Format("2006-01-02")
		} else if key == "" {
			key = "Other"
		}

		groups[key] += value
		total += value
	}

	rows := make([]*BreakdownRow, 0, len(groups))
	for name, value := range groups {
		row := &BreakdownRow{Name: name, Value: value}
		if total > 0 {
			row.Percent = value / total * 100
		}
		rows = append(rows, row)
	}

	if mode == BreakdownByCategory {
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Value != rows[j].Value {
				return rows[i].Value > rows[j].Value
			}
			return rows[i].Name < rows[j].Name
		})
	} else {
		sort.Slice(rows, func(i, j int) bool { return rows[i].Name > rows[j].Name })
	}

	return &BreakdownResponse{
		Mode:     mode,
		Currency: displayCurrency,
		Rows:     rows,
	}, nil
}

// Convert converts an amount between two currencies for display formatting
func (s *Service) Convert(ctx context.Context, amount float64, from, to string) (*ConvertResponse, error) {
	table, err := s.rates.Table(ctx)
	if err != nil {
		return nil, err
	}

	converted, err := currency.Convert(amount, from, to, table)
	if err != nil {
		return nil, err
	}

	return &ConvertResponse{
		Amount:    amount,
		From:      from,
		To:        to,
		Converted: converted,
	}, nil
}

// referenceBalances computes reference-currency balances over the full
// expense set, seeding every known member at zero.
func (s *Service) referenceBalances(ctx context.Context) (map[string]float64, map[string]float64, error) {
	expenses, table, err := s.load(ctx)
	if err != nil {
		return nil, nil, err
	}

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	memberIDs := make([]string, len(members))
	for i, m := range members {
		memberIDs[i] = m.ID
	}

	entries := make([]Entry, len(expenses))
	for i, e := range expenses {
		entries[i] = Entry{
			Amount:    e.Amount,
			Currency:  e.Currency,
			PaidBy:    e.PaidBy,
			SplitWith: e.SplitWith,
			SettledBy: e.SettledBy,
		}
	}

	balances, err := ComputeBalances(entries, table, s.rates.Reference(), memberIDs)
	if err != nil {
		return nil, nil, err
	}

	return balances, table, nil
}

func (s *Service) load(ctx context.Context) ([]*expense.Expense, map[string]float64, error) {
	expenses, err := s.expenseRepo.List(ctx, expense.Filter{})
	if err != nil {
		return nil, nil, err
	}

	table, err := s.rates.Table(ctx)
	if err != nil {
		return nil, nil, err
	}

	return expenses, table, nil
}

// resolveDisplay defaults an empty display currency to the reference and
// verifies the requested one is convertible.
func (s *Service) resolveDisplay(displayCurrency string, table map[string]float64) (string, error) {
	if displayCurrency == "" {
		return s.rates.Reference(), nil
	}
	if _, ok := table[displayCurrency]; !ok {
		return "", currency.ErrUnknownCurrency
	}
	return displayCurrency, nil
}
