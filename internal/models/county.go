package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// County assessor reference rows. One-to-many children of a parcel id,
// populated solely by batch import and never mutated by the API layer.

// Sale is a recorded transfer of a parcel.
type Sale struct {
	ID             int                 `json:"id"`
	ParcelID       string              `json:"parcel_id"`
	SaleDate       *time.Time          `json:"sale_date,omitempty"`
	Sequence       *int                `json:"sequence,omitempty"`
	SalePrice      decimal.NullDecimal `json:"sale_price,omitempty"`
	LegalReference *string             `json:"legal_reference,omitempty"`
	Book           *string             `json:"book,omitempty"`
	Page           *string             `json:"page,omitempty"`
	NalCode        *string             `json:"nal_code,omitempty"`
	DeedType       *string             `json:"deed_type,omitempty"`
	RecordingDate  *time.Time          `json:"recording_date,omitempty"`
	DocStamps      decimal.NullDecimal `json:"doc_stamps,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

// Building is an improvement card for a parcel.
type Building struct {
	ID                    int                 `json:"id"`
	ParcelID              string              `json:"parcel_id"`
	CardNumber            *string             `json:"card_number,omitempty"`
	AvgHeightFloor        decimal.NullDecimal `json:"avg_height_floor,omitempty"`
	PrimeIntWall          *string             `json:"prime_int_wall,omitempty"`
	SecIntWall            *string             `json:"sec_int_wall,omitempty"`
	SecIntWallPercent     decimal.NullDecimal `json:"sec_int_wall_percent,omitempty"`
	PrimaryFloors         *string             `json:"primary_floors,omitempty"`
	SecFloors             *string             `json:"sec_floors,omitempty"`
	SecFloorsPercent      decimal.NullDecimal `json:"sec_floors_percent,omitempty"`
	Insulation            *string             `json:"insulation,omitempty"`
	HeatType              *string             `json:"heat_type,omitempty"`
	PercentAirConditioned decimal.NullDecimal `json:"percent_air_conditioned,omitempty"`
	ExtType               *string             `json:"ext_type,omitempty"`
	StoryHeight           decimal.NullDecimal `json:"story_height,omitempty"`
	Foundation            *string             `json:"foundation,omitempty"`
	Units                 decimal.NullDecimal `json:"units,omitempty"`
	Frame                 *string             `json:"frame,omitempty"`
	PrimeWall             *string             `json:"prime_wall,omitempty"`
	SecWall               *string             `json:"sec_wall,omitempty"`
	SecWallPercent        decimal.NullDecimal `json:"sec_wall_percent,omitempty"`
	RoofStruct            *string             `json:"roof_struct,omitempty"`
	RoofCover             *string             `json:"roof_cover,omitempty"`
	ViewType              *string             `json:"view_type,omitempty"`
	Grade                 *string             `json:"grade,omitempty"`
	YearBuilt             *int                `json:"year_built,omitempty"`
	EffYearBuilt          *int                `json:"eff_year_built,omitempty"`
	CondoFloor            *string             `json:"condo_floor,omitempty"`
	CondoComplexName      *string             `json:"condo_complex_name,omitempty"`
	FullBath              decimal.NullDecimal `json:"full_bath,omitempty"`
	FullBathRating        *string             `json:"full_bath_rating,omitempty"`
	HalfBath              decimal.NullDecimal `json:"half_bath,omitempty"`
	HalfBathRating        *string             `json:"half_bath_rating,omitempty"`
	OtherFixtures         decimal.NullDecimal `json:"other_fixtures,omitempty"`
	OtherFixturesRating   *string             `json:"other_fixtures_rating,omitempty"`
	Fireplaces            *string             `json:"fireplaces,omitempty"`
	FireplaceRating       *string             `json:"fireplace_rating,omitempty"`
	ParkingSpaces         *string             `json:"parking_spaces,omitempty"`
	PercentSprinkled      *string             `json:"percent_sprinkled,omitempty"`
	CreatedAt             time.Time           `json:"created_at"`
}

// Land is a land line for a parcel.
type Land struct {
	ID         int                 `json:"id"`
	ParcelID   string              `json:"parcel_id"`
	SeqNumber  *string             `json:"seq_number,omitempty"`
	LineType   *string             `json:"line_type,omitempty"`
	NumOfUnits decimal.NullDecimal `json:"num_of_units,omitempty"`
	UnitType   *string             `json:"unit_type,omitempty"`
	LandType   *string             `json:"land_type,omitempty"`
	NeighMod   *string             `json:"neigh_mod,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// PropertyValue is an assessed-value roll line for a parcel.
type PropertyValue struct {
	ID            int                 `json:"id"`
	ParcelID      string              `json:"parcel_id"`
	TotalValue    decimal.NullDecimal `json:"total_value,omitempty"`
	LandValue     decimal.NullDecimal `json:"land_value,omitempty"`
	BuildingValue decimal.NullDecimal `json:"building_value,omitempty"`
	SfyiValue     decimal.NullDecimal `json:"sfyi_value,omitempty"`
	AssessedValue decimal.NullDecimal `json:"assessed_value,omitempty"`
	TaxableValue  decimal.NullDecimal `json:"taxable_value,omitempty"`
	Deletions     decimal.NullDecimal `json:"deletions,omitempty"`
	NewConst      decimal.NullDecimal `json:"new_const,omitempty"`
	NewLand       decimal.NullDecimal `json:"new_land,omitempty"`
	AgCredit      decimal.NullDecimal `json:"ag_credit,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

// Exemption is a tax exemption applied to a parcel.
type Exemption struct {
	ID                       int                 `json:"id"`
	ParcelID                 string              `json:"parcel_id"`
	ExemptionCode            *string             `json:"exemption_code,omitempty"`
	AmountOffTotalAssessment decimal.NullDecimal `json:"amount_off_total_assessment,omitempty"`
	AppCode                  *string             `json:"app_code,omitempty"`
	CreatedAt                time.Time           `json:"created_at"`
}

// LookupCode is a row of one of the four lookup-code tables
// (land use, deed type, neighborhood, exemption).
type LookupCode struct {
	ID          int       `json:"id"`
	Code        string    `json:"code"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
