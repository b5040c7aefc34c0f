package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property represents a short-term-rental property tracked for Tourist
// Development Tax compliance, carrying the county assessor field set.
// All nullable fields use pointers to distinguish between zero values and NULL.
type Property struct {
	ID       int     `json:"id"`
	ParcelID *string `json:"parcel_id,omitempty"`

	UserAccount     *string `json:"user_account,omitempty"`
	OwnerName       *string `json:"owner_name,omitempty"`
	OwnerName2      *string `json:"owner_name2,omitempty"`
	OwnerName3      *string `json:"owner_name3,omitempty"`
	OwnerStreet1    *string `json:"owner_street1,omitempty"`
	OwnerStreet2    *string `json:"owner_street2,omitempty"`
	OwnerCity       *string `json:"owner_city,omitempty"`
	OwnerState      *string `json:"owner_state,omitempty"`
	OwnerPostal     *string `json:"owner_postal,omitempty"`
	OwnerCountyCode *string `json:"owner_county_code,omitempty"`

	Address        string  `json:"address"`
	StreetNumber   *string `json:"street_number,omitempty"`
	LocDescription *string `json:"loc_description,omitempty"`
	LocUnit        *string `json:"loc_unit,omitempty"`
	LocDirPrefix   *string `json:"loc_dir_prefix,omitempty"`
	LocDirSuffix   *string `json:"loc_dir_suffix,omitempty"`
	City           string  `json:"city"`
	LocState       *string `json:"loc_state,omitempty"`
	ZipCode        string  `json:"zip_code"`
	CountyName     string  `json:"county_name"`

	Lat           *float64 `json:"lat,omitempty"`
	Lng           *float64 `json:"lng,omitempty"`
	GooglePlaceID *string  `json:"google_place_id,omitempty"`

	LandUseCode      *string `json:"land_use_code,omitempty"`
	NeighborhoodCode *string `json:"neighborhood_code,omitempty"`
	LocationState    *string `json:"location_state,omitempty"`
	PriorID1         *string `json:"prior_id1,omitempty"`
	PriorID2         *string `json:"prior_id2,omitempty"`
	PriorID3         *string `json:"prior_id3,omitempty"`
	Census           *string `json:"census,omitempty"`
	Utilities1       *string `json:"utilities1,omitempty"`
	Utilities2       *string `json:"utilities2,omitempty"`
	GulfBay          *string `json:"gulf_bay,omitempty"`

	Description       *string `json:"description,omitempty"`
	LegalDescription1 *string `json:"legal_description1,omitempty"`
	LegalDescription2 *string `json:"legal_description2,omitempty"`
	LegalDescription3 *string `json:"legal_description3,omitempty"`
	LegalDescription4 *string `json:"legal_description4,omitempty"`

	TotalLand    decimal.NullDecimal `json:"total_land,omitempty"`
	LandUnitType *string             `json:"land_unit_type,omitempty"`
	Zoning1      *string             `json:"zoning1,omitempty"`
	Zoning2      *string             `json:"zoning2,omitempty"`
	Zoning3      *string             `json:"zoning3,omitempty"`
	ZoningType   string              `json:"zoning_type"`
	PropertyStatus *string           `json:"property_status,omitempty"`

	TDTNumber          *string    `json:"tdt_number,omitempty"`
	HomesteadStatus    bool       `json:"homestead_status"`
	IsRegistered       bool       `json:"is_registered"`
	RegistrationDate   *time.Time `json:"registration_date,omitempty"`
	IsActive           bool       `json:"is_active"`
	ActiveDate         *time.Time `json:"active_date,omitempty"`
	InactiveDate       *time.Time `json:"inactive_date,omitempty"`
	ComplianceScenario *int       `json:"compliance_scenario,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
