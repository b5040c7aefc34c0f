package countyimport

var buildingColumns = []string{
	"parcel_id", "card_number", "avg_height_floor",
	"prime_int_wall", "sec_int_wall", "sec_int_wall_percent",
	"primary_floors", "sec_floors", "sec_floors_percent",
	"insulation", "heat_type", "percent_air_conditioned",
	"ext_type", "story_height", "foundation", "units", "frame",
	"prime_wall", "sec_wall", "sec_wall_percent",
	"roof_struct", "roof_cover", "view_type", "grade",
	"year_built", "eff_year_built", "condo_floor", "condo_complex_name",
	"full_bath", "full_bath_rating", "half_bath", "half_bath_rating",
	"other_fixtures", "other_fixtures_rating", "fireplaces", "fireplace_rating",
	"parking_spaces", "percent_sprinkled",
}

// buildingRecord is one row of Building.txt mapped to the buildings table.
type buildingRecord struct {
	ParcelID              string
	CardNumber            *string
	AvgHeightFloor        *float64
	PrimeIntWall          *string
	SecIntWall            *string
	SecIntWallPercent     *float64
	PrimaryFloors         *string
	SecFloors             *string
	SecFloorsPercent      *float64
	Insulation            *string
	HeatType              *string
	PercentAirConditioned *float64
	ExtType               *string
	StoryHeight           *float64
	Foundation            *string
	Units                 *float64
	Frame                 *string
	PrimeWall             *string
	SecWall               *string
	SecWallPercent        *float64
	RoofStruct            *string
	RoofCover             *string
	ViewType              *string
	Grade                 *string
	YearBuilt             *int
	EffYearBuilt          *int
	CondoFloor            *string
	CondoComplexName      *string
	FullBath              *float64
	FullBathRating        *string
	HalfBath              *float64
	HalfBathRating        *string
	OtherFixtures         *float64
	OtherFixturesRating   *string
	Fireplaces            *string
	FireplaceRating       *string
	ParkingSpaces         *string
	PercentSprinkled      *string
}

func newBuildingRecord(f *sourceFile, row []string) (*buildingRecord, bool) {
	parcelID := CleanValue(f.cell(row, "parcelid"))
	if parcelID == nil {
		return nil, false
	}

	return &buildingRecord{
		ParcelID:              *parcelID,
		CardNumber:            CleanValue(f.cell(row, "cardnumber")),
		AvgHeightFloor:        ParseFloat(f.cell(row, "avghtfl")),
		PrimeIntWall:          CleanValue(f.cell(row, "primeintwall")),
		SecIntWall:            CleanValue(f.cell(row, "secintwall")),
		SecIntWallPercent:     ParseFloat(f.cell(row, "secintwallpercent")),
		PrimaryFloors:         CleanValue(f.cell(row, "primaryfloors")),
		SecFloors:             CleanValue(f.cell(row, "secfloors")),
		SecFloorsPercent:      ParseFloat(f.cell(row, "secfloorspercent")),
		Insulation:            CleanValue(f.cell(row, "insulation")),
		HeatType:              CleanValue(f.cell(row, "heattype")),
		PercentAirConditioned: ParseFloat(f.cell(row, "percentairconditioned")),
		ExtType:               CleanValue(f.cell(row, "exttype")),
		StoryHeight:           ParseFloat(f.cell(row, "storyhgt")),
		Foundation:            CleanValue(f.cell(row, "foundation")),
		Units:                 ParseFloat(f.cell(row, "units")),
		Frame:                 CleanValue(f.cell(row, "frame")),
		PrimeWall:             CleanValue(f.cell(row, "primewall")),
		SecWall:               CleanValue(f.cell(row, "secwall")),
		SecWallPercent:        ParseFloat(f.cell(row, "secwallpercent")),
		RoofStruct:            CleanValue(f.cell(row, "roofstruct")),
		RoofCover:             CleanValue(f.cell(row, "roofcover")),
		ViewType:              CleanValue(f.cell(row, "view_")),
		Grade:                 CleanValue(f.cell(row, "grade")),
		YearBuilt:             ParseInt(f.cell(row, "yearblt")),
		EffYearBuilt:          ParseInt(f.cell(row, "effyearblt")),
		CondoFloor:            CleanValue(f.cell(row, "condofloor")),
		CondoComplexName:      CleanValue(f.cell(row, "condocomplexname")),
		FullBath:              ParseFloat(f.cell(row, "fullbath")),
		FullBathRating:        CleanValue(f.cell(row, "fullbathrating")),
		HalfBath:              ParseFloat(f.cell(row, "halfbath")),
		HalfBathRating:        CleanValue(f.cell(row, "halfbathrating")),
		OtherFixtures:         ParseFloat(f.cell(row, "otherfixtures")),
		OtherFixturesRating:   CleanValue(f.cell(row, "otherfixturesrating")),
		Fireplaces:            CleanValue(f.cell(row, "fireplaces")),
		FireplaceRating:       CleanValue(f.cell(row, "fireplacerating")),
		ParkingSpaces:         CleanValue(f.cell(row, "parkingspaces")),
		PercentSprinkled:      CleanValue(f.cell(row, "percentsprinkled")),
	}, true
}

func (r *buildingRecord) values() []any {
	return []any{
		r.ParcelID, r.CardNumber, r.AvgHeightFloor,
		r.PrimeIntWall, r.SecIntWall, r.SecIntWallPercent,
		r.PrimaryFloors, r.SecFloors, r.SecFloorsPercent,
		r.Insulation, r.HeatType, r.PercentAirConditioned,
		r.ExtType, r.StoryHeight, r.Foundation, r.Units, r.Frame,
		r.PrimeWall, r.SecWall, r.SecWallPercent,
		r.RoofStruct, r.RoofCover, r.ViewType, r.Grade,
		r.YearBuilt, r.EffYearBuilt, r.CondoFloor, r.CondoComplexName,
		r.FullBath, r.FullBathRating, r.HalfBath, r.HalfBathRating,
		r.OtherFixtures, r.OtherFixturesRating, r.Fireplaces, r.FireplaceRating,
		r.ParkingSpaces, r.PercentSprinkled,
	}
}
