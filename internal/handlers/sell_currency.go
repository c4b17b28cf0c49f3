package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/currency-exchanger/internal/logger"
	"github.com/sbilibin2017/currency-exchanger/internal/models"
)

// SellCurrencyChanger applies a sell-currency selection and exposes the
// resulting state.
type SellCurrencyChanger interface {
	OnSellCurrencyChange(currency string) error
	ViewState() models.ExchangeViewState
}

// CurrencyRequest represents the JSON body for a currency selection
// swagger:model CurrencyRequest
type CurrencyRequest struct {
	// Currency code
	// required: true
	// default: EUR
	Currency string `json:"currency"`
}

// CurrencyErrorResponse represents an error response for a currency selection
// swagger:model CurrencyErrorResponse
type CurrencyErrorResponse struct {
	// Error message
	// default: Invalid currency
	Error string `json:"error"`
}

// NewSellCurrencyHandler handles sell-currency selections.
// @Summary Change sell currency
// @Description Selects the currency to sell, keeping the sell and receive currencies distinct
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body handlers.CurrencyRequest true "Currency Request"
// @Success 200 {object} models.ExchangeViewState "Updated view state"
// @Failure 400 {object} handlers.CurrencyErrorResponse "Invalid currency"
// @Router /sell/currency [post]
func NewSellCurrencyHandler(changer SellCurrencyChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req CurrencyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CurrencyErrorResponse{Error: "Invalid currency"})
			return
		}

		if err := changer.OnSellCurrencyChange(req.Currency); err != nil {
			logger.Log.Errorw("rejected sell currency", "currency", req.Currency, "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CurrencyErrorResponse{Error: "Invalid currency"})
			return
		}

		json.NewEncoder(w).Encode(changer.ViewState())
	}
}
