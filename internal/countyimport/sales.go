package countyimport

import "time"

var saleColumns = []string{
	"parcel_id", "sale_date", "sequence", "sale_price", "legal_reference",
	"book", "page", "nal_code", "deed_type", "recording_date", "doc_stamps",
}

// saleRecord is one row of Sales.txt mapped to the sales table.
type saleRecord struct {
	ParcelID       string
	SaleDate       *time.Time
	Sequence       *int
	SalePrice      *float64
	LegalReference *string
	Book           *string
	Page           *string
	NalCode        *string
	DeedType       *string
	RecordingDate  *time.Time
	DocStamps      *float64
}

func newSaleRecord(f *sourceFile, row []string) (*saleRecord, bool) {
	parcelID := CleanValue(f.cell(row, "parcelid"))
	if parcelID == nil {
		return nil, false
	}

	return &saleRecord{
		ParcelID:       *parcelID,
		SaleDate:       ParseDate(f.cell(row, "saledate")),
		Sequence:       ParseInt(f.cell(row, "sequence")),
		SalePrice:      ParseFloat(f.cell(row, "saleprice")),
		LegalReference: CleanValue(f.cell(row, "legalreference")),
		Book:           CleanValue(f.cell(row, "book")),
		Page:           CleanValue(f.cell(row, "page")),
		NalCode:        CleanValue(f.cell(row, "nalcode")),
		DeedType:       CleanValue(f.cell(row, "deedtype")),
		RecordingDate:  ParseDate(f.cell(row, "recordingdate")),
		DocStamps:      ParseFloat(f.cell(row, "docstamps")),
	}, true
}

func (r *saleRecord) values() []any {
	return []any{
		r.ParcelID, r.SaleDate, r.Sequence, r.SalePrice, r.LegalReference,
		r.Book, r.Page, r.NalCode, r.DeedType, r.RecordingDate, r.DocStamps,
	}
}
