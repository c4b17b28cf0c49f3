package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/currency-exchanger/internal/logger"
	"github.com/sbilibin2017/currency-exchanger/internal/models"
)

// ReceiveCurrencyChanger applies a receive-currency selection and exposes
// the resulting state.
type ReceiveCurrencyChanger interface {
	OnReceiveCurrencyChange(currency string) error
	ViewState() models.ExchangeViewState
}

// NewReceiveCurrencyHandler handles receive-currency selections.
// @Summary Change receive currency
// @Description Selects the currency to receive; it must differ from the sell currency
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body handlers.CurrencyRequest true "Currency Request"
// @Success 200 {object} models.ExchangeViewState "Updated view state"
// @Failure 400 {object} handlers.CurrencyErrorResponse "Invalid currency"
// @Router /receive/currency [post]
func NewReceiveCurrencyHandler(changer ReceiveCurrencyChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req CurrencyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CurrencyErrorResponse{Error: "Invalid currency"})
			return
		}

		if err := changer.OnReceiveCurrencyChange(req.Currency); err != nil {
			logger.Log.Errorw("rejected receive currency", "currency", req.Currency, "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CurrencyErrorResponse{Error: "Invalid currency"})
			return
		}

		json.NewEncoder(w).Encode(changer.ViewState())
	}
}
