package ledger

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tripledger/internal/currency"
	"tripledger/pkg/response"
)

// Handler handles HTTP requests for ledger views
type Handler struct {
	service *Service
}

// NewHandler creates a new ledger handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for ledger endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/balances", h.Balances)
	r.Get("/settlement", h.SettlementPlan)
	r.Get("/summary", h.Summary)
	r.Get("/breakdown", h.Breakdown)
	r.Get("/convert", h.Convert)

	return r
}

// Balances handles GET /ledger/balances
// @Summary      Get net balances
// @Description  Net position per member in the display currency; positive means owed money
// @Tags         ledger
// @Produce      json
// @Param        currency query string false "Display currency (defaults to reference)"
// @Success      200 {object} response.APIResponse{data=BalancesResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /ledger/balances [get]
func (h *Handler) Balances(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Balances(r.Context(), r.URL.Query().Get("currency"))
	if err != nil {
		h.writeError(w, err, "Failed to compute balances")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// SettlementPlan handles GET /ledger/settlement
// @Summary      Get the settlement plan
// @Description  Ordered list of suggested transfers that would settle all debts
// @Tags         ledger
// @Produce      json
// @Param        currency query string false "Display currency (defaults to reference)"
// @Success      200 {object} response.APIResponse{data=PlanResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /ledger/settlement [get]
func (h *Handler) SettlementPlan(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SettlementPlan(r.Context(), r.URL.Query().Get("currency"))
	if err != nil {
		h.writeError(w, err, "Failed to compute settlement plan")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Summary handles GET /ledger/summary
// @Summary      Get spending summary
// @Description  Whole-trip total plus today's total and record count
// @Tags         ledger
// @Produce      json
// @Param        currency query string false "Display currency (defaults to reference)"
// @Success      200 {object} response.APIResponse{data=SummaryResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /ledger/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Summary(r.Context(), r.URL.Query().Get("currency"))
	if err != nil {
		h.writeError(w, err, "Failed to compute summary")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Breakdown handles GET /ledger/breakdown
// @Summary      Get spending breakdown
// @Description  Spending grouped by category or by day with percentage shares
// @Tags         ledger
// @Produce      json
// @Param        mode query string false "category or daily" default(category)
// @Param        currency query string false "Display currency (defaults to reference)"
// @Success      200 {object} response.APIResponse{data=BreakdownResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /ledger/breakdown [get]
func (h *Handler) Breakdown(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Breakdown(r.Context(), r.URL.Query().Get("mode"), r.URL.Query().Get("currency"))
	if err != nil {
		h.writeError(w, err, "Failed to compute breakdown")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Convert handles GET /ledger/convert
// @Summary      Convert an amount between currencies
// @Tags         ledger
// @Produce      json
// @Param        amount query number true "Amount to convert"
// @Param        from query string true "Source currency code"
// @Param        to query string true "Target currency code"
// @Success      200 {object} response.APIResponse{data=ConvertResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /ledger/convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil {
		response.BadRequest(w, "Invalid amount")
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.BadRequest(w, "Both from and to currencies are required")
		return
	}

	result, err := h.service.Convert(r.Context(), amount, from, to)
	if err != nil {
		h.writeError(w, err, "Failed to convert amount")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, currency.ErrUnknownCurrency) || errors.Is(err, ErrInvalidBreakdownMode) {
		response.BadRequest(w, err.Error())
		return
	}
	response.InternalError(w, fallback)
}
