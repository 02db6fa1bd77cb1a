package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success outflow",
			body: `{"description":"Groceries","amount":120.5,"date":"2024-03-01","type":"Outflow","category":"Food"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, tx *models.Transaction) (models.Transaction, error) {
						assert.Equal(t, "Groceries", tx.Description)
						assert.True(t, decimal.RequireFromString("120.5").Equal(tx.Amount))
						assert.Equal(t, date, tx.Date)
						assert.Equal(t, models.Outflow, tx.Type)
						assert.Equal(t, models.Food, tx.Category)
						stored := *tx
						stored.ID = id
						stored.Amount = stored.Amount.Neg()
						return stored, nil
					})
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]string{
				"id":          id.String(),
				"description": "Groceries",
				"amount":      "-120.5",
				"date":        "2024-03-01T00:00:00Z",
				"type":        "Outflow",
				"category":    "Food",
			},
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Invalid request body"},
		},
		{
			name:         "empty description",
			body:         `{"description":"  ","amount":"10","date":"2024-03-01","type":"Inflow","category":"Salary"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": models.ErrEmptyDescription.Error()},
		},
		{
			name:         "non-positive amount",
			body:         `{"description":"Refund","amount":-5,"date":"2024-03-01","type":"Outflow","category":"Other"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": models.ErrNonPositiveAmount.Error()},
		},
		{
			name:         "unknown type",
			body:         `{"description":"Lunch","amount":5,"date":"2024-03-01","type":"Sideways","category":"Food"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": models.ErrInvalidType.Error()},
		},
		{
			name:         "invalid date",
			body:         `{"description":"Lunch","amount":5,"date":"01/03/2024","type":"Outflow","category":"Food"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Invalid date"},
		},
		{
			name: "service rejects",
			body: `{"description":"Lunch","amount":5,"date":"2024-03-01T12:00:00Z","type":"Outflow","category":"Food"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Transaction{}, models.ErrNilTransaction)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": models.ErrNilTransaction.Error()},
		},
		{
			name: "internal server error",
			body: `{"description":"Lunch","amount":5,"date":"2024-03-01","type":"Outflow","category":"Food"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Transaction{}, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp)

			if tt.expectedCode == http.StatusCreated {
				assert.Equal(t, "/api/v1/transactions/"+id.String(), rr.Header().Get("Location"))
			}
		})
	}
}
