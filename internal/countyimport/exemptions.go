package countyimport

var exemptionColumns = []string{
	"parcel_id", "exemption_code", "amount_off_total_assessment", "app_code",
}

// exemptionRecord is one row of Exemptions.txt mapped to the exemptions table.
type exemptionRecord struct {
	ParcelID                 string
	ExemptionCode            *string
	AmountOffTotalAssessment *float64
	AppCode                  *string
}

func newExemptionRecord(f *sourceFile, row []string) (*exemptionRecord, bool) {
	parcelID := CleanValue(f.cell(row, "parcelid"))
	if parcelID == nil {
		return nil, false
	}

	return &exemptionRecord{
		ParcelID:                 *parcelID,
		ExemptionCode:            CleanValue(f.cell(row, "exemptioncode")),
		AmountOffTotalAssessment: ParseFloat(f.cell(row, "amountofftotalassessment")),
		AppCode:                  CleanValue(f.cell(row, "appcode")),
	}, true
}

func (r *exemptionRecord) values() []any {
	return []any{r.ParcelID, r.ExemptionCode, r.AmountOffTotalAssessment, r.AppCode}
}

var lookupColumns = []string{"code", "description"}

// lookupRecord is one row of a lookup-code export. All four lookup files
// share the Code/Description shape.
type lookupRecord struct {
	Code        string
	Description *string
}

func newLookupRecord(f *sourceFile, row []string) (*lookupRecord, bool) {
	code := CleanValue(f.cell(row, "Code"))
	if code == nil {
		return nil, false
	}

	return &lookupRecord{
		Code:        *code,
		Description: CleanValue(f.cell(row, "Description")),
	}, true
}

func (r *lookupRecord) values() []any {
	return []any{r.Code, r.Description}
}
