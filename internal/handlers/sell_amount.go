package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/currency-exchanger/internal/logger"
	"github.com/sbilibin2017/currency-exchanger/internal/models"
)

// SellAmountChanger applies a sell-amount edit and exposes the resulting state.
type SellAmountChanger interface {
	OnSellAmountChange(amount float64) error
	ViewState() models.ExchangeViewState
}

// SellAmountRequest represents the JSON body for a sell-amount edit
// swagger:model SellAmountRequest
type SellAmountRequest struct {
	// Amount to sell
	// required: true
	// default: 100.0
	Amount float64 `json:"amount"`
}

// SellAmountErrorResponse represents an error response for a sell-amount edit
// swagger:model SellAmountErrorResponse
type SellAmountErrorResponse struct {
	// Error message
	// default: Invalid amount
	Error string `json:"error"`
}

// NewSellAmountHandler handles sell-amount edits.
// @Summary Change sell amount
// @Description Updates the amount to sell and rederives the receive amount
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body handlers.SellAmountRequest true "Sell Amount Request"
// @Success 200 {object} models.ExchangeViewState "Updated view state"
// @Failure 400 {object} handlers.SellAmountErrorResponse "Invalid amount"
// @Router /sell/amount [post]
func NewSellAmountHandler(changer SellAmountChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req SellAmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SellAmountErrorResponse{Error: "Invalid amount"})
			return
		}

		if err := changer.OnSellAmountChange(req.Amount); err != nil {
			logger.Log.Errorw("rejected sell amount", "amount", req.Amount, "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SellAmountErrorResponse{Error: "Invalid amount"})
			return
		}

		json.NewEncoder(w).Encode(changer.ViewState())
	}
}
