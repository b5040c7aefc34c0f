package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TDTPayment records a Tourist Development Tax remittance for a property.
// Payments are immutable once created; DealerID is nil for independent
// submitters. ExpectedAmount, when present, is the amount the property
// should have remitted for the period and drives correctness checks.
type TDTPayment struct {
	ID            int    `json:"id"`
	TransactionID string `json:"transaction_id"`
	PropertyID    int    `json:"property_id"`
	DealerID      *int   `json:"dealer_id,omitempty"`

	Amount      decimal.Decimal `json:"amount"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`

	ExpectedAmount decimal.NullDecimal `json:"expected_amount,omitempty"`
	Verified       bool                `json:"verified"`
	Notes          *string             `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
