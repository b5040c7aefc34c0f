package countyimport

var valueColumns = []string{
	"parcel_id", "total_value", "land_value", "building_value", "sfyi_value",
	"assessed_value", "taxable_value", "deletions", "new_const", "new_land", "ag_credit",
}

// valueRecord is one row of Values.txt mapped to the property_values table.
type valueRecord struct {
	ParcelID      string
	TotalValue    *float64
	LandValue     *float64
	BuildingValue *float64
	SfyiValue     *float64
	AssessedValue *float64
	TaxableValue  *float64
	Deletions     *float64
	NewConst      *float64
	NewLand       *float64
	AgCredit      *float64
}

func newValueRecord(f *sourceFile, row []string) (*valueRecord, bool) {
	parcelID := CleanValue(f.cell(row, "ParcelID"))
	if parcelID == nil {
		return nil, false
	}

	return &valueRecord{
		ParcelID:      *parcelID,
		TotalValue:    ParseFloat(f.cell(row, "TotalValue")),
		LandValue:     ParseFloat(f.cell(row, "Land")),
		BuildingValue: ParseFloat(f.cell(row, "Building")),
		SfyiValue:     ParseFloat(f.cell(row, "SFYI")),
		AssessedValue: ParseFloat(f.cell(row, "AssessedValue")),
		TaxableValue:  ParseFloat(f.cell(row, "TaxableValue")),
		Deletions:     ParseFloat(f.cell(row, "Deletions")),
		NewConst:      ParseFloat(f.cell(row, "NewConst")),
		NewLand:       ParseFloat(f.cell(row, "NewLand")),
		AgCredit:      ParseFloat(f.cell(row, "AgCredit")),
	}, true
}

func (r *valueRecord) values() []any {
	return []any{
		r.ParcelID, r.TotalValue, r.LandValue, r.BuildingValue, r.SfyiValue,
		r.AssessedValue, r.TaxableValue, r.Deletions, r.NewConst, r.NewLand, r.AgCredit,
	}
}
