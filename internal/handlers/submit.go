package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/currency-exchanger/internal/models"
	"github.com/sbilibin2017/currency-exchanger/internal/services"
)

// Submitter executes the conversion transaction and exposes the resulting
// state.
type Submitter interface {
	OnSubmitClick(ctx context.Context) error
	ViewState() models.ExchangeViewState
}

// SubmitErrorResponse represents an error response for a conversion submit
// swagger:model SubmitErrorResponse
type SubmitErrorResponse struct {
	// Error message
	// default: Conversion failed, please check your balances
	Error string `json:"error"`
}

// NewSubmitHandler handles conversion submits.
// @Summary Submit conversion
// @Description Executes the conversion with balance-sufficiency and commission checks
// @Tags exchange
// @Accept json
// @Produce json
// @Success 200 {object} models.ExchangeViewState "Conversion confirmed"
// @Failure 400 {object} handlers.SubmitErrorResponse "Insufficient funds"
// @Failure 500 {object} handlers.SubmitErrorResponse "Storage error"
// @Router /submit [post]
func NewSubmitHandler(submitter Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := submitter.OnSubmitClick(r.Context()); err != nil {
			switch {
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SubmitErrorResponse{Error: services.InsufficientFundsMessage})
			default:
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "Internal server error"})
			}
			return
		}

		json.NewEncoder(w).Encode(submitter.ViewState())
	}
}
