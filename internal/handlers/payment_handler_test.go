package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/srqtax/tdt/internal/logger"
	"github.com/srqtax/tdt/internal/middleware"
	"github.com/srqtax/tdt/internal/models"
	"github.com/srqtax/tdt/internal/repository"
	"github.com/srqtax/tdt/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupPaymentTestRouter(handler *PaymentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	log := logger.New("test")
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	v1 := router.Group("/api/v1")
	{
		payments := v1.Group("/payments")
		{
			payments.POST("", handler.Create)
			payments.GET("", handler.List)
			payments.GET("/:id", handler.Get)
		}
	}

	return router
}

func TestPaymentCreate(t *testing.T) {
	t.Run("records payment", func(t *testing.T) {
		mockService := new(MockPaymentService)
		router := setupPaymentTestRouter(NewPaymentHandler(mockService))

		mockService.On("CreatePayment", mock.Anything, mock.MatchedBy(func(in services.CreatePaymentInput) bool {
			return in.PropertyID == 1 &&
				in.Amount.Equal(decimal.NewFromFloat(150.00)) &&
				in.PeriodStart.Equal(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)) &&
				in.PeriodEnd.Equal(time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC))
		})).Return(&models.TDTPayment{
			ID:            10,
			TransactionID: "AAAA-BBBB-CCCC-DDDD",
			PropertyID:    1,
		}, nil)

		body, _ := json.Marshal(map[string]any{
			"property_id":  1,
			"amount":       150.00,
			"period_start": "2025-05-01",
			"period_end":   "2025-05-31",
		})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp CreatePaymentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 10, resp.PaymentID)
		assert.Equal(t, "AAAA-BBBB-CCCC-DDDD", resp.TransactionID)
	})

	t.Run("missing required fields", func(t *testing.T) {
		mockService := new(MockPaymentService)
		router := setupPaymentTestRouter(NewPaymentHandler(mockService))

		body, _ := json.Marshal(map[string]any{"amount": 150.00})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
	})

	t.Run("malformed period date", func(t *testing.T) {
		mockService := new(MockPaymentService)
		router := setupPaymentTestRouter(NewPaymentHandler(mockService))

		body, _ := json.Marshal(map[string]any{
			"property_id":  1,
			"amount":       150.00,
			"period_start": "05/01/2025",
			"period_end":   "2025-05-31",
		})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown property", func(t *testing.T) {
		mockService := new(MockPaymentService)
		router := setupPaymentTestRouter(NewPaymentHandler(mockService))

		mockService.On("CreatePayment", mock.Anything, mock.Anything).
			Return(nil, services.ErrPropertyNotFound)

		body, _ := json.Marshal(map[string]any{
			"property_id":  999,
			"amount":       150.00,
			"period_start": "2025-05-01",
			"period_end":   "2025-05-31",
		})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPaymentList(t *testing.T) {
	mockService := new(MockPaymentService)
	router := setupPaymentTestRouter(NewPaymentHandler(mockService))

	mockService.On("ListPayments", mock.Anything, repository.PaymentFilter{PropertyID: ptr(1)}).
		Return([]models.TDTPayment{{ID: 1, PropertyID: 1}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/payments?property_id=1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp PaymentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}

func TestPaymentGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockService := new(MockPaymentService)
		router := setupPaymentTestRouter(NewPaymentHandler(mockService))

		mockService.On("GetPayment", mock.Anything, 3).
			Return(&models.TDTPayment{ID: 3, TransactionID: "AAAA-BBBB-CCCC-DDDD"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/payments/3", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var payment models.TDTPayment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payment))
		assert.Equal(t, "AAAA-BBBB-CCCC-DDDD", payment.TransactionID)
	})

	t.Run("not found", func(t *testing.T) {
		mockService := new(MockPaymentService)
		router := setupPaymentTestRouter(NewPaymentHandler(mockService))

		mockService.On("GetPayment", mock.Anything, 99).
			Return(nil, services.ErrPaymentNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/payments/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
