package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/currency-exchanger/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGetStateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockViewer := NewMockStateViewer(ctrl)
	mockViewer.EXPECT().ViewState().Return(models.ExchangeViewState{
		Balances:               map[string]float64{"EUR": 1000.0, "USD": 0.0},
		SellCurrency:           "EUR",
		SellCurrencyOptions:    []string{"USD"},
		ReceiveCurrency:        "USD",
		ReceiveCurrencyOptions: []string{},
	})

	handler := NewGetStateHandler(mockViewer)

	req := httptest.NewRequest(http.MethodGet, "/state", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var state models.ExchangeViewState
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, "EUR", state.SellCurrency)
	assert.Equal(t, "USD", state.ReceiveCurrency)
	assert.Equal(t, map[string]float64{"EUR": 1000.0, "USD": 0.0}, state.Balances)
}
