package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/currency-exchanger/internal/models"
	"github.com/sbilibin2017/currency-exchanger/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSubmitHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		setupMocks     func(m *MockSubmitter)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful conversion",
			setupMocks: func(m *MockSubmitter) {
				m.EXPECT().OnSubmitClick(gomock.Any()).Return(nil)
				m.EXPECT().ViewState().Return(models.ExchangeViewState{
					DialogMessage: "You have converted 100.00 EUR to 112.90 USD. ",
				})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "insufficient funds",
			setupMocks: func(m *MockSubmitter) {
				m.EXPECT().OnSubmitClick(gomock.Any()).Return(services.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  services.InsufficientFundsMessage,
		},
		{
			name: "storage failure",
			setupMocks: func(m *MockSubmitter) {
				m.EXPECT().OnSubmitClick(gomock.Any()).Return(errors.New("storage unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSubmitter := NewMockSubmitter(ctrl)
			tt.setupMocks(mockSubmitter)

			handler := NewSubmitHandler(mockSubmitter)

			req := httptest.NewRequest(http.MethodPost, "/submit", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedError != "" {
				var resp SubmitErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestDismissDialogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDismisser := NewMockDialogDismisser(ctrl)
	mockDismisser.EXPECT().OnDismissDialog()
	mockDismisser.EXPECT().ViewState().Return(models.ExchangeViewState{})

	handler := NewDismissDialogHandler(mockDismisser)

	req := httptest.NewRequest(http.MethodPost, "/dialog/dismiss", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var state models.ExchangeViewState
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Empty(t, state.DialogMessage)
}
