package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/currency-exchanger/internal/models"
)

// StateViewer exposes the current exchange view state.
type StateViewer interface {
	ViewState() models.ExchangeViewState
}

// StateErrorResponse represents an error response for state requests
// swagger:model StateErrorResponse
type StateErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewGetStateHandler returns an HTTP handler serving the exchange view state.
// @Summary Get exchange view state
// @Description Returns the current exchange view state: balances, selections, derived amounts
// @Tags exchange
// @Produce json
// @Success 200 {object} models.ExchangeViewState "Current view state"
// @Router /state [get]
func NewGetStateHandler(viewer StateViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(viewer.ViewState())
	}
}
