package rates

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripledger/pkg/response"
)

// SetRatesRequest represents the request body for merging rates into the table
type SetRatesRequest struct {
	Rates map[string]float64 `json:"rates" validate:"required"`
}

// RateTableResponse represents the full rate table
type RateTableResponse struct {
	Reference string             `json:"reference"`
	Rates     map[string]float64 `json:"rates"`
}

// Handler handles HTTP requests for the rate table
type Handler struct {
	service *Service
}

// NewHandler creates a new rates handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for rate endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetTable)
	r.Put("/", h.SetRates)
	r.Delete("/{code}", h.Remove)

	return r
}

// GetTable handles GET /rates
// @Summary      Get the rate table
// @Description  Returns every known currency and its price in the reference currency
// @Tags         rates
// @Produce      json
// @Success      200 {object} response.APIResponse{data=RateTableResponse}
// @Router       /rates [get]
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.Table(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to load rate table")
		return
	}

	response.JSON(w, http.StatusOK, &RateTableResponse{
		Reference: h.service.Reference(),
		Rates:     table,
	})
}

// SetRates handles PUT /rates
// @Summary      Merge rates into the table
// @Description  Upserts the supplied code→rate pairs; the reference currency cannot be changed
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        request body SetRatesRequest true "Rates to merge"
// @Success      200 {object} response.APIResponse{data=RateTableResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /rates [put]
func (h *Handler) SetRates(w http.ResponseWriter, r *http.Request) {
	var req SetRatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if len(req.Rates) == 0 {
		response.BadRequest(w, "At least one rate is required")
		return
	}

	if err := h.service.SetAll(r.Context(), req.Rates); err != nil {
		if errors.Is(err, ErrInvalidRate) || errors.Is(err, ErrReferenceReadOnly) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to store rates")
		return
	}

	table, err := h.service.Table(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to load rate table")
		return
	}

	response.JSON(w, http.StatusOK, &RateTableResponse{
		Reference: h.service.Reference(),
		Rates:     table,
	})
}

// Remove handles DELETE /rates/{code}
// @Summary      Remove a currency from the rate table
// @Tags         rates
// @Produce      json
// @Param        code path string true "Currency code"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /rates/{code} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Remove(r.Context(), chi.URLParam(r, "code")); err != nil {
		if errors.Is(err, ErrRateNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrReferenceReadOnly) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to remove rate")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Currency removed from rate table"})
}
