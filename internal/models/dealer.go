package models

import "time"

// Dealer types accepted by the schema.
const (
	DealerTypePlatform  = "platform"
	DealerTypeMomAndPop = "mom_and_pop"
)

// Dealer is an entity that remits TDT payments on behalf of properties:
// either a booking platform or an independent operator. Unlisted submitters
// are represented by a null dealer reference on the payment, not a Dealer row.
type Dealer struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	DealerType   string    `json:"dealer_type"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
