package countyimport

var landColumns = []string{
	"parcel_id", "seq_number", "line_type", "num_of_units",
	"unit_type", "land_type", "neigh_mod",
}

// landRecord is one row of Land.txt mapped to the land table.
type landRecord struct {
	ParcelID   string
	SeqNumber  *string
	LineType   *string
	NumOfUnits *float64
	UnitType   *string
	LandType   *string
	NeighMod   *string
}

func newLandRecord(f *sourceFile, row []string) (*landRecord, bool) {
	parcelID := CleanValue(f.cell(row, "parcelid"))
	if parcelID == nil {
		return nil, false
	}

	return &landRecord{
		ParcelID:   *parcelID,
		SeqNumber:  CleanValue(f.cell(row, "seeqnumber")),
		LineType:   CleanValue(f.cell(row, "linetype")),
		NumOfUnits: ParseFloat(f.cell(row, "numofunits")),
		UnitType:   CleanValue(f.cell(row, "unittype")),
		LandType:   CleanValue(f.cell(row, "landtype")),
		NeighMod:   CleanValue(f.cell(row, "neighmod")),
	}, true
}

func (r *landRecord) values() []any {
	return []any{
		r.ParcelID, r.SeqNumber, r.LineType, r.NumOfUnits,
		r.UnitType, r.LandType, r.NeighMod,
	}
}
