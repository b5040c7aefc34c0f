package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/srqtax/tdt/internal/logger"
	"github.com/srqtax/tdt/internal/models"
	"github.com/srqtax/tdt/internal/repository"
)

// Service-level errors
var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidPayment  = errors.New("invalid payment")
)

// CreatePaymentInput carries a dealer or manual payment submission.
type CreatePaymentInput struct {
	PropertyID     int
	DealerID       *int
	Amount         decimal.Decimal
	PeriodStart    time.Time
	PeriodEnd      time.Time
	ExpectedAmount decimal.NullDecimal
	Notes          *string
}

// PaymentService defines the interface for payment business logic operations.
type PaymentService interface {
	// CreatePayment records a payment and reclassifies the owning
	// property's compliance scenario.
	// Returns ErrPropertyNotFound if the property does not exist and
	// ErrInvalidPayment if the amount or coverage period is invalid.
	CreatePayment(ctx context.Context, input CreatePaymentInput) (*models.TDTPayment, error)

	// ListPayments retrieves payments matching the filter.
	ListPayments(ctx context.Context, filter repository.PaymentFilter) ([]models.TDTPayment, error)

	// GetPayment retrieves a single payment by id.
	// Returns ErrPaymentNotFound if no payment exists with the id.
	GetPayment(ctx context.Context, id int) (*models.TDTPayment, error)
}

type paymentService struct {
	payments   repository.PaymentRepository
	properties repository.PropertyRepository
	log        *logger.Logger
}

// NewPaymentService creates a new instance of PaymentService.
func NewPaymentService(payments repository.PaymentRepository, properties repository.PropertyRepository, log *logger.Logger) PaymentService {
	return &paymentService{
		payments:   payments,
		properties: properties,
		log:        log,
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, input CreatePaymentInput) (*models.TDTPayment, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidPayment, input.Amount)
	}
	if input.PeriodEnd.Before(input.PeriodStart) {
		return nil, fmt.Errorf("%w: period end precedes period start", ErrInvalidPayment)
	}

	property, err := s.properties.GetByID(ctx, input.PropertyID)
	if err != nil {
		s.log.Error("Failed to query property for payment", err, map[string]interface{}{
			"property_id": input.PropertyID,
		})
		return nil, fmt.Errorf("failed to query property: %w", err)
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	now := time.Now().UTC()
	payment := &models.TDTPayment{
		PropertyID:     input.PropertyID,
		DealerID:       input.DealerID,
		Amount:         input.Amount,
		PeriodStart:    input.PeriodStart,
		PeriodEnd:      input.PeriodEnd,
		PaymentDate:    &now,
		ExpectedAmount: input.ExpectedAmount,
		Notes:          input.Notes,
	}

	if err := s.payments.Insert(ctx, payment); err != nil {
		s.log.Error("Failed to record payment", err, map[string]interface{}{
			"property_id": input.PropertyID,
		})
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	scenario, err := recomputeScenario(ctx, s.properties, s.payments, input.PropertyID, property.IsRegistered)
	if err != nil {
		s.log.Error("Failed to reclassify property after payment", err, map[string]interface{}{
			"property_id": input.PropertyID,
			"payment_id":  payment.ID,
		})
		return nil, err
	}

	s.log.Info("Payment recorded", map[string]interface{}{
		"payment_id":     payment.ID,
		"transaction_id": payment.TransactionID,
		"property_id":    input.PropertyID,
		"amount":         input.Amount.String(),
		"scenario":       scenario.String(),
	})

	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, filter repository.PaymentFilter) ([]models.TDTPayment, error) {
	payments, err := s.payments.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list payments", err, nil)
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (s *paymentService) GetPayment(ctx context.Context, id int) (*models.TDTPayment, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to query payment", err, map[string]interface{}{
			"payment_id": id,
		})
		return nil, fmt.Errorf("failed to query payment: %w", err)
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}
