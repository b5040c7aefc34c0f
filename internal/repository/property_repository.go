package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/srqtax/tdt/internal/database"
	"github.com/srqtax/tdt/internal/models"
)

// ErrDuplicate marks inserts rejected by a uniqueness constraint
// (parcel id or TDT number already taken).
var ErrDuplicate = errors.New("duplicate key")

// PropertyFilter narrows a property listing. Zero values mean "no filter".
type PropertyFilter struct {
	// Scenario filters by compliance_scenario when non-nil.
	Scenario *int
	// Search matches address, parcel id, or TDT number (case-insensitive
	// substring).
	Search string
	Limit  int
	Offset int
}

// MapPoint is the reduced property shape served to the map view. Only
// geocoded properties appear on the map.
type MapPoint struct {
	ID                 int     `json:"id"`
	Address            string  `json:"address"`
	Lat                float64 `json:"lat"`
	Lng                float64 `json:"lng"`
	IsRegistered       bool    `json:"is_registered"`
	ComplianceScenario *int    `json:"compliance_scenario,omitempty"`
}

// PropertyRepository defines the interface for property data access operations.
type PropertyRepository interface {
	// List returns properties matching the filter, newest first.
	// Returns an empty slice if none match (not an error).
	List(ctx context.Context, filter PropertyFilter) ([]models.Property, error)

	// ListForMap returns all geocoded properties as map points.
	ListForMap(ctx context.Context) ([]MapPoint, error)

	// GetByID returns nil, nil if no property has the given id (not an error).
	GetByID(ctx context.Context, id int) (*models.Property, error)

	// GetByParcelID returns nil, nil if no property has the given parcel id.
	GetByParcelID(ctx context.Context, parcelID string) (*models.Property, error)

	// GetByTDTNumber returns nil, nil if no property has the given TDT number.
	GetByTDTNumber(ctx context.Context, tdtNumber string) (*models.Property, error)

	// Insert creates a property from the intake fields and returns its id.
	Insert(ctx context.Context, p *models.Property) (int, error)

	// Register flips is_registered false->true, assigning the TDT number
	// and registration date in the same statement. Returns false if the
	// property was already registered (no row transitioned).
	Register(ctx context.Context, id int, tdtNumber string, registeredAt time.Time) (bool, error)

	// SetComplianceScenario stores the classifier result; nil means compliant.
	SetComplianceScenario(ctx context.Context, id int, scenario *int) error
}

type propertyRepository struct {
	db database.Pool
}

// NewPropertyRepository creates a new instance of PropertyRepository.
func NewPropertyRepository(db database.Pool) PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

const propertyColumns = `
	id, parcel_id, user_account,
	owner_name, owner_name2, owner_name3,
	owner_street1, owner_street2, owner_city, owner_state, owner_postal, owner_county_code,
	address, street_number, loc_description, loc_unit, loc_dir_prefix, loc_dir_suffix,
	city, loc_state, zip_code, county_name,
	lat, lng, google_place_id,
	land_use_code, neighborhood_code, location_state,
	prior_id1, prior_id2, prior_id3,
	census, utilities1, utilities2, gulf_bay,
	description, legal_description1, legal_description2, legal_description3, legal_description4,
	total_land, land_unit_type, zoning1, zoning2, zoning3, zoning_type, property_status,
	tdt_number, homestead_status, is_registered, registration_date,
	is_active, active_date, inactive_date, compliance_scenario,
	created_at, updated_at`

// scanProperty scans a row selected with propertyColumns.
func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	err := row.Scan(
		&p.ID, &p.ParcelID, &p.UserAccount,
		&p.OwnerName, &p.OwnerName2, &p.OwnerName3,
		&p.OwnerStreet1, &p.OwnerStreet2, &p.OwnerCity, &p.OwnerState, &p.OwnerPostal, &p.OwnerCountyCode,
		&p.Address, &p.StreetNumber, &p.LocDescription, &p.LocUnit, &p.LocDirPrefix, &p.LocDirSuffix,
		&p.City, &p.LocState, &p.ZipCode, &p.CountyName,
		&p.Lat, &p.Lng, &p.GooglePlaceID,
		&p.LandUseCode, &p.NeighborhoodCode, &p.LocationState,
		&p.PriorID1, &p.PriorID2, &p.PriorID3,
		&p.Census, &p.Utilities1, &p.Utilities2, &p.GulfBay,
		&p.Description, &p.LegalDescription1, &p.LegalDescription2, &p.LegalDescription3, &p.LegalDescription4,
		&p.TotalLand, &p.LandUnitType, &p.Zoning1, &p.Zoning2, &p.Zoning3, &p.ZoningType, &p.PropertyStatus,
		&p.TDTNumber, &p.HomesteadStatus, &p.IsRegistered, &p.RegistrationDate,
		&p.IsActive, &p.ActiveDate, &p.InactiveDate, &p.ComplianceScenario,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const defaultListLimit = 100

// List queries properties with optional scenario and search filters.
// The search term matches address, parcel id, and TDT number.
func (r *propertyRepository) List(ctx context.Context, filter PropertyFilter) ([]models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE 1=1`
	args := []any{}

	if filter.Scenario != nil {
		args = append(args, *filter.Scenario)
		query += fmt.Sprintf(" AND compliance_scenario = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (address ILIKE $%d OR parcel_id ILIKE $%d OR tdt_number ILIKE $%d)", n, n, n)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d", len(args))
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", err)
	}

	return properties, nil
}

// ListForMap returns every property with coordinates set.
func (r *propertyRepository) ListForMap(ctx context.Context) ([]MapPoint, error) {
	query := `
		SELECT id, address, lat, lng, is_registered, compliance_scenario
		FROM properties
		WHERE lat IS NOT NULL AND lng IS NOT NULL
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query map points: %w", err)
	}
	defer rows.Close()

	points := []MapPoint{}
	for rows.Next() {
		var pt MapPoint
		if err := rows.Scan(&pt.ID, &pt.Address, &pt.Lat, &pt.Lng, &pt.IsRegistered, &pt.ComplianceScenario); err != nil {
			return nil, fmt.Errorf("failed to scan map point row: %w", err)
		}
		points = append(points, pt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating map point rows: %w", err)
	}

	return points, nil
}

func (r *propertyRepository) getByColumn(ctx context.Context, column string, value any) (*models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE ` + column + ` = $1 LIMIT 1`

	p, err := scanProperty(r.db.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query property by %s: %w", column, err)
	}
	return p, nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id int) (*models.Property, error) {
	return r.getByColumn(ctx, "id", id)
}

func (r *propertyRepository) GetByParcelID(ctx context.Context, parcelID string) (*models.Property, error) {
	return r.getByColumn(ctx, "parcel_id", parcelID)
}

func (r *propertyRepository) GetByTDTNumber(ctx context.Context, tdtNumber string) (*models.Property, error) {
	return r.getByColumn(ctx, "tdt_number", tdtNumber)
}

// Insert creates a property from the intake form fields; the remaining
// assessor columns stay NULL until a county import backfills them.
func (r *propertyRepository) Insert(ctx context.Context, p *models.Property) (int, error) {
	query := `
		INSERT INTO properties (
			parcel_id, owner_name, address, street_number, loc_description,
			city, zip_code, lat, lng,
			land_use_code, zoning_type, description,
			homestead_status, is_registered, tdt_number, registration_date,
			compliance_scenario
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`

	var id int
	err := r.db.QueryRow(ctx, query,
		p.ParcelID, p.OwnerName, p.Address, p.StreetNumber, p.LocDescription,
		p.City, p.ZipCode, p.Lat, p.Lng,
		p.LandUseCode, p.ZoningType, p.Description,
		p.HomesteadStatus, p.IsRegistered, p.TDTNumber, p.RegistrationDate,
		p.ComplianceScenario,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, fmt.Errorf("property with this key already exists: %w", ErrDuplicate)
		}
		return 0, fmt.Errorf("failed to insert property: %w", err)
	}

	return id, nil
}

// Register performs the single guarded registration transition. The WHERE
// clause keeps the flip idempotent under concurrent requests: only one
// statement can move a property out of the unregistered state.
func (r *propertyRepository) Register(ctx context.Context, id int, tdtNumber string, registeredAt time.Time) (bool, error) {
	query := `
		UPDATE properties
		SET is_registered = TRUE,
		    tdt_number = $2,
		    registration_date = $3,
		    updated_at = now()
		WHERE id = $1 AND is_registered = FALSE
	`

	tag, err := r.db.Exec(ctx, query, id, tdtNumber, registeredAt)
	if err != nil {
		return false, fmt.Errorf("failed to register property %d: %w", id, err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *propertyRepository) SetComplianceScenario(ctx context.Context, id int, scenario *int) error {
	query := `UPDATE properties SET compliance_scenario = $2, updated_at = now() WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id, scenario); err != nil {
		return fmt.Errorf("failed to update compliance scenario for property %d: %w", id, err)
	}
	return nil
}
