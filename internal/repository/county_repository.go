package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/srqtax/tdt/internal/database"
	"github.com/srqtax/tdt/internal/models"
)

// Lookup kinds accepted by ListLookupCodes, mapped to their tables.
var lookupTables = map[string]string{
	"land_use":     "lookup_land_use_codes",
	"deed_type":    "lookup_deed_types",
	"neighborhood": "lookup_neighborhood_codes",
	"exemption":    "lookup_exemption_codes",
}

// CountyRepository reads the assessor reference tables. These are
// populated only by the batch importer; the API reads them by parcel id.
type CountyRepository interface {
	// ListSales returns a parcel's sale history, most recent first.
	ListSales(ctx context.Context, parcelID string) ([]models.Sale, error)

	// ListBuildings returns a parcel's improvement cards.
	ListBuildings(ctx context.Context, parcelID string) ([]models.Building, error)

	// ListLand returns a parcel's land lines.
	ListLand(ctx context.Context, parcelID string) ([]models.Land, error)

	// LatestValue returns the most recent assessed-value line, or nil, nil
	// if the parcel has none.
	LatestValue(ctx context.Context, parcelID string) (*models.PropertyValue, error)

	// ListExemptions returns a parcel's exemptions.
	ListExemptions(ctx context.Context, parcelID string) ([]models.Exemption, error)

	// ListLookupCodes returns the rows of one lookup-code table by kind
	// (land_use, deed_type, neighborhood, exemption).
	ListLookupCodes(ctx context.Context, kind string) ([]models.LookupCode, error)
}

type countyRepository struct {
	db database.Pool
}

// NewCountyRepository creates a CountyRepository backed by the pool.
func NewCountyRepository(db database.Pool) CountyRepository {
	return &countyRepository{db: db}
}

// ErrUnknownLookupKind is returned for a lookup kind outside the fixed set.
var ErrUnknownLookupKind = fmt.Errorf("unknown lookup kind")

func (r *countyRepository) ListSales(ctx context.Context, parcelID string) ([]models.Sale, error) {
	query := `
		SELECT id, parcel_id, sale_date, sequence, sale_price, legal_reference,
		       book, page, nal_code, deed_type, recording_date, doc_stamps, created_at
		FROM sales
		WHERE parcel_id = $1
		ORDER BY sale_date DESC NULLS LAST, id DESC
	`

	rows, err := r.db.Query(ctx, query, parcelID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var sales []models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(
			&s.ID, &s.ParcelID, &s.SaleDate, &s.Sequence, &s.SalePrice, &s.LegalReference,
			&s.Book, &s.Page, &s.NalCode, &s.DeedType, &s.RecordingDate, &s.DocStamps, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}

	return sales, rows.Err()
}

func (r *countyRepository) ListBuildings(ctx context.Context, parcelID string) ([]models.Building, error) {
	query := `
		SELECT id, parcel_id, card_number, avg_height_floor,
		       prime_int_wall, sec_int_wall, sec_int_wall_percent,
		       primary_floors, sec_floors, sec_floors_percent,
		       insulation, heat_type, percent_air_conditioned,
		       ext_type, story_height, foundation, units, frame,
		       prime_wall, sec_wall, sec_wall_percent,
		       roof_struct, roof_cover, view_type, grade,
		       year_built, eff_year_built, condo_floor, condo_complex_name,
		       full_bath, full_bath_rating, half_bath, half_bath_rating,
		       other_fixtures, other_fixtures_rating, fireplaces, fireplace_rating,
		       parking_spaces, percent_sprinkled, created_at
		FROM buildings
		WHERE parcel_id = $1
		ORDER BY card_number, id
	`

	rows, err := r.db.Query(ctx, query, parcelID)
	if err != nil {
		return nil, fmt.Errorf("failed to query buildings: %w", err)
	}
	defer rows.Close()

	var buildings []models.Building
	for rows.Next() {
		var b models.Building
		if err := rows.Scan(
			&b.ID, &b.ParcelID, &b.CardNumber, &b.AvgHeightFloor,
			&b.PrimeIntWall, &b.SecIntWall, &b.SecIntWallPercent,
			&b.PrimaryFloors, &b.SecFloors, &b.SecFloorsPercent,
			&b.Insulation, &b.HeatType, &b.PercentAirConditioned,
			&b.ExtType, &b.StoryHeight, &b.Foundation, &b.Units, &b.Frame,
			&b.PrimeWall, &b.SecWall, &b.SecWallPercent,
			&b.RoofStruct, &b.RoofCover, &b.ViewType, &b.Grade,
			&b.YearBuilt, &b.EffYearBuilt, &b.CondoFloor, &b.CondoComplexName,
			&b.FullBath, &b.FullBathRating, &b.HalfBath, &b.HalfBathRating,
			&b.OtherFixtures, &b.OtherFixturesRating, &b.Fireplaces, &b.FireplaceRating,
			&b.ParkingSpaces, &b.PercentSprinkled, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan building: %w", err)
		}
		buildings = append(buildings, b)
	}

	return buildings, rows.Err()
}

func (r *countyRepository) ListLand(ctx context.Context, parcelID string) ([]models.Land, error) {
	query := `
		SELECT id, parcel_id, seq_number, line_type, num_of_units,
		       unit_type, land_type, neigh_mod, created_at
		FROM land
		WHERE parcel_id = $1
		ORDER BY seq_number, id
	`

	rows, err := r.db.Query(ctx, query, parcelID)
	if err != nil {
		return nil, fmt.Errorf("failed to query land lines: %w", err)
	}
	defer rows.Close()

	var lines []models.Land
	for rows.Next() {
		var l models.Land
		if err := rows.Scan(
			&l.ID, &l.ParcelID, &l.SeqNumber, &l.LineType, &l.NumOfUnits,
			&l.UnitType, &l.LandType, &l.NeighMod, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan land line: %w", err)
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}

func (r *countyRepository) LatestValue(ctx context.Context, parcelID string) (*models.PropertyValue, error) {
	query := `
		SELECT id, parcel_id, total_value, land_value, building_value, sfyi_value,
		       assessed_value, taxable_value, deletions, new_const, new_land,
		       ag_credit, created_at
		FROM property_values
		WHERE parcel_id = $1
		ORDER BY id DESC
		LIMIT 1
	`

	var v models.PropertyValue
	err := r.db.QueryRow(ctx, query, parcelID).Scan(
		&v.ID, &v.ParcelID, &v.TotalValue, &v.LandValue, &v.BuildingValue, &v.SfyiValue,
		&v.AssessedValue, &v.TaxableValue, &v.Deletions, &v.NewConst, &v.NewLand,
		&v.AgCredit, &v.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query latest value: %w", err)
	}

	return &v, nil
}

func (r *countyRepository) ListExemptions(ctx context.Context, parcelID string) ([]models.Exemption, error) {
	query := `
		SELECT id, parcel_id, exemption_code, amount_off_total_assessment, app_code, created_at
		FROM exemptions
		WHERE parcel_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, parcelID)
	if err != nil {
		return nil, fmt.Errorf("failed to query exemptions: %w", err)
	}
	defer rows.Close()

	var exemptions []models.Exemption
	for rows.Next() {
		var e models.Exemption
		if err := rows.Scan(
			&e.ID, &e.ParcelID, &e.ExemptionCode, &e.AmountOffTotalAssessment, &e.AppCode, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exemption: %w", err)
		}
		exemptions = append(exemptions, e)
	}

	return exemptions, rows.Err()
}

func (r *countyRepository) ListLookupCodes(ctx context.Context, kind string) ([]models.LookupCode, error) {
	table, ok := lookupTables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLookupKind, kind)
	}

	// table comes from the fixed lookupTables map, never from input.
	query := fmt.Sprintf("SELECT id, code, description, created_at FROM %s ORDER BY code", table)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var codes []models.LookupCode
	for rows.Next() {
		var c models.LookupCode
		if err := rows.Scan(&c.ID, &c.Code, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lookup code: %w", err)
		}
		codes = append(codes, c)
	}

	return codes, rows.Err()
}
