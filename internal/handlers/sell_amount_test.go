package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/currency-exchanger/internal/models"
	"github.com/sbilibin2017/currency-exchanger/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSellAmountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		body           string
		setupMocks     func(m *MockSellAmountChanger)
		expectedStatus int
	}{
		{
			name: "successful amount change",
			body: `{"amount": 100.0}`,
			setupMocks: func(m *MockSellAmountChanger) {
				m.EXPECT().OnSellAmountChange(100.0).Return(nil)
				m.EXPECT().ViewState().Return(models.ExchangeViewState{SellAmount: 100.0})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid JSON body",
			body:           `not-json`,
			setupMocks:     func(m *MockSellAmountChanger) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "negative amount rejected",
			body: `{"amount": -5.0}`,
			setupMocks: func(m *MockSellAmountChanger) {
				m.EXPECT().OnSellAmountChange(-5.0).Return(services.ErrNegativeAmount)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockChanger := NewMockSellAmountChanger(ctrl)
			tt.setupMocks(mockChanger)

			handler := NewSellAmountHandler(mockChanger)

			req := httptest.NewRequest(http.MethodPost, "/sell/amount", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
