package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/currency-exchanger/internal/models"
)

// DialogDismisser clears the confirmation dialog and exposes the resulting
// state.
type DialogDismisser interface {
	OnDismissDialog()
	ViewState() models.ExchangeViewState
}

// NewDismissDialogHandler handles dialog dismissals.
// @Summary Dismiss confirmation dialog
// @Description Clears the confirmation dialog shown after a successful conversion
// @Tags exchange
// @Produce json
// @Success 200 {object} models.ExchangeViewState "Updated view state"
// @Router /dialog/dismiss [post]
func NewDismissDialogHandler(dismisser DialogDismisser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		dismisser.OnDismissDialog()
		json.NewEncoder(w).Encode(dismisser.ViewState())
	}
}
