package countyimport

import "strings"

// Defaults applied so imported rows always satisfy the NOT NULL
// constraints on address, city, and zip, even from sparse source rows.
const (
	defaultCity    = "Sarasota"
	defaultZipCode = "00000"
)

var propertyColumns = []string{
	"parcel_id", "user_account",
	"owner_name", "owner_name2", "owner_name3",
	"owner_street1", "owner_street2", "owner_city", "owner_state", "owner_postal", "owner_county_code",
	"address", "street_number", "loc_description", "loc_unit", "loc_dir_prefix", "loc_dir_suffix",
	"city", "loc_state", "zip_code",
	"land_use_code", "neighborhood_code", "location_state",
	"prior_id1", "prior_id2", "prior_id3",
	"census", "utilities1", "utilities2", "gulf_bay",
	"description", "legal_description1", "legal_description2", "legal_description3", "legal_description4",
	"total_land", "land_unit_type", "zoning1", "zoning2", "zoning3", "property_status",
}

// propertyRecord is one row of PropertyOwnerLegal.txt mapped to the
// properties table.
type propertyRecord struct {
	ParcelID        string
	UserAccount     *string
	OwnerName       *string
	OwnerName2      *string
	OwnerName3      *string
	OwnerStreet1    *string
	OwnerStreet2    *string
	OwnerCity       *string
	OwnerState      *string
	OwnerPostal     *string
	OwnerCountyCode *string

	Address        string
	StreetNumber   *string
	LocDescription *string
	LocUnit        *string
	LocDirPrefix   *string
	LocDirSuffix   *string
	City           string
	LocState       *string
	ZipCode        string

	LandUseCode      *string
	NeighborhoodCode *string
	LocationState    *string
	PriorID1         *string
	PriorID2         *string
	PriorID3         *string
	Census           *string
	Utilities1       *string
	Utilities2       *string
	GulfBay          *string

	Description       *string
	LegalDescription1 *string
	LegalDescription2 *string
	LegalDescription3 *string
	LegalDescription4 *string

	TotalLand      *float64
	LandUnitType   *string
	Zoning1        *string
	Zoning2        *string
	Zoning3        *string
	PropertyStatus *string
}

// newPropertyRecord maps a source row. Returns false when the parcel id
// cleans to nil, which drops the row from the load batch.
func newPropertyRecord(f *sourceFile, row []string) (*propertyRecord, bool) {
	parcelID := CleanValue(f.cell(row, "ParcelID"))
	if parcelID == nil {
		return nil, false
	}

	r := &propertyRecord{
		ParcelID:        *parcelID,
		UserAccount:     CleanValue(f.cell(row, "UserAccount")),
		OwnerName:       CleanValue(f.cell(row, "name1")),
		OwnerName2:      CleanValue(f.cell(row, "name2")),
		OwnerName3:      CleanValue(f.cell(row, "name3")),
		OwnerStreet1:    CleanValue(f.cell(row, "CuOStreet1")),
		OwnerStreet2:    CleanValue(f.cell(row, "CuOStreet2")),
		OwnerCity:       CleanValue(f.cell(row, "CuOCity")),
		OwnerState:      CleanValue(f.cell(row, "CuOState")),
		OwnerPostal:     CleanValue(f.cell(row, "CuOPostal")),
		OwnerCountyCode: CleanValue(f.cell(row, "CuOCountyCode")),

		StreetNumber:   CleanValue(f.cell(row, "StreetNumber")),
		LocDescription: CleanValue(f.cell(row, "LOCDescription")),
		LocUnit:        CleanValue(f.cell(row, "LocUnit")),
		LocDirPrefix:   CleanValue(f.cell(row, "locdirprefix")),
		LocDirSuffix:   CleanValue(f.cell(row, "locdirsuffix")),
		LocState:       CleanValue(f.cell(row, "LocState")),

		LandUseCode:      CleanValue(f.cell(row, "LUC")),
		NeighborhoodCode: CleanValue(f.cell(row, "NBC")),
		LocationState:    CleanValue(f.cell(row, "LocationState")),
		PriorID1:         CleanValue(f.cell(row, "PriorID1a")),
		PriorID2:         CleanValue(f.cell(row, "PriorID2a")),
		PriorID3:         CleanValue(f.cell(row, "PriorID3a")),
		Census:           CleanValue(f.cell(row, "Census")),
		Utilities1:       CleanValue(f.cell(row, "Utilities1")),
		Utilities2:       CleanValue(f.cell(row, "Utilities2")),
		GulfBay:          CleanValue(f.cell(row, "GulfBay")),

		Description:       CleanValue(f.cell(row, "Description")),
		LegalDescription1: CleanValue(f.cell(row, "LegalDescription1")),
		LegalDescription2: CleanValue(f.cell(row, "LegalDescription2")),
		LegalDescription3: CleanValue(f.cell(row, "LegalDescription3")),
		LegalDescription4: CleanValue(f.cell(row, "LegalDescription4")),

		TotalLand:      ParseFloat(f.cell(row, "TotalLand")),
		LandUnitType:   CleanValue(f.cell(row, "LandUnitType")),
		Zoning1:        CleanValue(f.cell(row, "Zoning1")),
		Zoning2:        CleanValue(f.cell(row, "Zoning2")),
		Zoning3:        CleanValue(f.cell(row, "Zoning3")),
		PropertyStatus: CleanValue(f.cell(row, "status")),
	}

	// Synthesize the display address from the street number and location
	// description, defaulting both so the result is never null.
	streetNum := "0"
	if r.StreetNumber != nil {
		streetNum = *r.StreetNumber
	}
	locDesc := ""
	if r.LocDescription != nil {
		locDesc = *r.LocDescription
	}
	r.Address = strings.TrimSpace(streetNum + " " + locDesc)

	r.City = defaultCity
	if city := CleanValue(f.cell(row, "LocCity")); city != nil {
		r.City = *city
	}
	r.ZipCode = defaultZipCode
	if zip := CleanValue(f.cell(row, "LocZip")); zip != nil {
		r.ZipCode = *zip
	}

	return r, true
}

func (r *propertyRecord) values() []any {
	return []any{
		r.ParcelID, r.UserAccount,
		r.OwnerName, r.OwnerName2, r.OwnerName3,
		r.OwnerStreet1, r.OwnerStreet2, r.OwnerCity, r.OwnerState, r.OwnerPostal, r.OwnerCountyCode,
		r.Address, r.StreetNumber, r.LocDescription, r.LocUnit, r.LocDirPrefix, r.LocDirSuffix,
		r.City, r.LocState, r.ZipCode,
		r.LandUseCode, r.NeighborhoodCode, r.LocationState,
		r.PriorID1, r.PriorID2, r.PriorID3,
		r.Census, r.Utilities1, r.Utilities2, r.GulfBay,
		r.Description, r.LegalDescription1, r.LegalDescription2, r.LegalDescription3, r.LegalDescription4,
		r.TotalLand, r.LandUnitType, r.Zoning1, r.Zoning2, r.Zoning3, r.PropertyStatus,
	}
}
