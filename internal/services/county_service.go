package services

import (
	"context"
	"fmt"

	"github.com/srqtax/tdt/internal/logger"
	"github.com/srqtax/tdt/internal/models"
	"github.com/srqtax/tdt/internal/repository"
)

// AssessorDetail is the county assessor view of one property: sale
// history, improvement cards, land lines, the latest value roll line,
// and exemptions. All slices are empty for properties without a parcel
// id, since the assessor tables are keyed by parcel.
type AssessorDetail struct {
	Sales       []models.Sale         `json:"sales"`
	Buildings   []models.Building     `json:"buildings"`
	Land        []models.Land         `json:"land"`
	LatestValue *models.PropertyValue `json:"latest_value,omitempty"`
	Exemptions  []models.Exemption    `json:"exemptions"`
}

// CountyService serves assessor reference data for the API.
type CountyService interface {
	// GetAssessorDetail returns the assessor data linked to a property.
	// Returns ErrPropertyNotFound if the property does not exist.
	GetAssessorDetail(ctx context.Context, propertyID int) (*AssessorDetail, error)

	// ListLookupCodes returns one lookup-code table by kind.
	// Passes through repository.ErrUnknownLookupKind for a bad kind.
	ListLookupCodes(ctx context.Context, kind string) ([]models.LookupCode, error)
}

type countyService struct {
	county     repository.CountyRepository
	properties repository.PropertyRepository
	log        *logger.Logger
}

// NewCountyService creates a CountyService.
func NewCountyService(county repository.CountyRepository, properties repository.PropertyRepository, log *logger.Logger) CountyService {
	return &countyService{county: county, properties: properties, log: log}
}

func (s *countyService) GetAssessorDetail(ctx context.Context, propertyID int) (*AssessorDetail, error) {
	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get property %d: %w", propertyID, err)
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	detail := &AssessorDetail{
		Sales:      []models.Sale{},
		Buildings:  []models.Building{},
		Land:       []models.Land{},
		Exemptions: []models.Exemption{},
	}

	// Assessor rows are keyed by parcel id; a manually created property
	// without one has no county data.
	if property.ParcelID == nil || *property.ParcelID == "" {
		return detail, nil
	}
	parcelID := *property.ParcelID

	if detail.Sales, err = s.county.ListSales(ctx, parcelID); err != nil {
		return nil, fmt.Errorf("failed to list sales for parcel %s: %w", parcelID, err)
	}
	if detail.Buildings, err = s.county.ListBuildings(ctx, parcelID); err != nil {
		return nil, fmt.Errorf("failed to list buildings for parcel %s: %w", parcelID, err)
	}
	if detail.Land, err = s.county.ListLand(ctx, parcelID); err != nil {
		return nil, fmt.Errorf("failed to list land for parcel %s: %w", parcelID, err)
	}
	if detail.LatestValue, err = s.county.LatestValue(ctx, parcelID); err != nil {
		return nil, fmt.Errorf("failed to get latest value for parcel %s: %w", parcelID, err)
	}
	if detail.Exemptions, err = s.county.ListExemptions(ctx, parcelID); err != nil {
		return nil, fmt.Errorf("failed to list exemptions for parcel %s: %w", parcelID, err)
	}

	// Serialize empty sections as [] rather than null.
	if detail.Sales == nil {
		detail.Sales = []models.Sale{}
	}
	if detail.Buildings == nil {
		detail.Buildings = []models.Building{}
	}
	if detail.Land == nil {
		detail.Land = []models.Land{}
	}
	if detail.Exemptions == nil {
		detail.Exemptions = []models.Exemption{}
	}

	return detail, nil
}

func (s *countyService) ListLookupCodes(ctx context.Context, kind string) ([]models.LookupCode, error) {
	codes, err := s.county.ListLookupCodes(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list lookup codes: %w", err)
	}
	return codes, nil
}
