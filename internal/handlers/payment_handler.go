package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	apierrors "github.com/srqtax/tdt/internal/errors"
	"github.com/srqtax/tdt/internal/middleware"
	"github.com/srqtax/tdt/internal/models"
	"github.com/srqtax/tdt/internal/repository"
	"github.com/srqtax/tdt/internal/services"
)

// periodDateLayout is the date-only format for payment coverage periods.
const periodDateLayout = "2006-01-02"

// PaymentHandler handles payment-related HTTP requests.
type PaymentHandler struct {
	service services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler instance.
func NewPaymentHandler(service services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service: service,
	}
}

// CreatePaymentRequest represents the JSON body of a dealer payment
// submission. Period dates are date-only strings (YYYY-MM-DD).
type CreatePaymentRequest struct {
	PropertyID     int      `json:"property_id" binding:"required"`
	Amount         float64  `json:"amount" binding:"required,gt=0"`
	PeriodStart    string   `json:"period_start" binding:"required"`
	PeriodEnd      string   `json:"period_end" binding:"required"`
	DealerID       *int     `json:"dealer_id"`
	ExpectedAmount *float64 `json:"expected_amount"`
	Notes          *string  `json:"notes"`
}

// CreatePaymentResponse represents the dealer submission response.
type CreatePaymentResponse struct {
	Success       bool   `json:"success"`
	PaymentID     int    `json:"payment_id"`
	TransactionID string `json:"transaction_id"`
}

// ListPaymentsRequest represents the query parameters for the list endpoint.
type ListPaymentsRequest struct {
	PropertyID *int `form:"property_id" binding:"omitempty,min=1"`
	Limit      int  `form:"limit" binding:"omitempty,min=1,max=500"`
}

// PaymentListResponse represents the response for the list endpoint.
type PaymentListResponse struct {
	Payments []models.TDTPayment `json:"payments"`
	Count    int                 `json:"count"`
}

// Create handles POST /api/v1/payments.
// Records a TDT payment submitted by a dealer or entered manually.
func (h *PaymentHandler) Create(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	periodStart, err := time.Parse(periodDateLayout, req.PeriodStart)
	if err != nil {
		apierrors.BadRequest(c, "period_start must be a YYYY-MM-DD date", nil)
		return
	}
	periodEnd, err := time.Parse(periodDateLayout, req.PeriodEnd)
	if err != nil {
		apierrors.BadRequest(c, "period_end must be a YYYY-MM-DD date", nil)
		return
	}

	if log != nil {
		log.Info("Processing payment submission", map[string]interface{}{
			"property_id": req.PropertyID,
			"amount":      req.Amount,
		})
	}

	input := services.CreatePaymentInput{
		PropertyID:  req.PropertyID,
		DealerID:    req.DealerID,
		Amount:      decimal.NewFromFloat(req.Amount),
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Notes:       req.Notes,
	}
	if req.ExpectedAmount != nil {
		input.ExpectedAmount = decimal.NullDecimal{
			Decimal: decimal.NewFromFloat(*req.ExpectedAmount),
			Valid:   true,
		}
	}

	payment, err := h.service.CreatePayment(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			apierrors.NotFound(c, "Property not found")
			return
		}
		if errors.Is(err, services.ErrInvalidPayment) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to record payment", err)
		return
	}

	c.JSON(http.StatusCreated, CreatePaymentResponse{
		Success:       true,
		PaymentID:     payment.ID,
		TransactionID: payment.TransactionID,
	})
}

// List handles GET /api/v1/payments.
func (h *PaymentHandler) List(c *gin.Context) {
	var req ListPaymentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	payments, err := h.service.ListPayments(c.Request.Context(), repository.PaymentFilter{
		PropertyID: req.PropertyID,
		Limit:      req.Limit,
	})
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list payments", err)
		return
	}

	c.JSON(http.StatusOK, PaymentListResponse{
		Payments: payments,
		Count:    len(payments),
	})
}

// Get handles GET /api/v1/payments/:id.
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Payment id must be an integer", nil)
		return
	}

	payment, err := h.service.GetPayment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPaymentNotFound) {
			apierrors.NotFound(c, "Payment not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to query payment", err)
		return
	}

	c.JSON(http.StatusOK, payment)
}
