package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/srqtax/tdt/internal/compliance"
	"github.com/srqtax/tdt/internal/logger"
	"github.com/srqtax/tdt/internal/models"
	"github.com/srqtax/tdt/internal/repository"
)

// Defaults applied when intake omits location fields.
const (
	DefaultCity    = "Sarasota"
	DefaultZipCode = "00000"
)

// Service-level errors
var (
	ErrPropertyNotFound  = errors.New("property not found")
	ErrAlreadyRegistered = errors.New("property is already registered")
	ErrLookupKeyRequired = errors.New("either parcel_id or tdt_number is required")
	ErrDuplicateProperty = errors.New("a property with this parcel id already exists")
)

// CreatePropertyInput carries the intake form fields for a new property.
type CreatePropertyInput struct {
	ParcelID       *string
	OwnerName      *string
	Address        string
	StreetNumber   *string
	LocDescription *string
	City           string
	ZipCode        string
	Lat            *float64
	Lng            *float64
	LandUseCode    *string
	ZoningType     string
	Description    *string
	Homestead      bool
	// Register creates the property already registered, assigning its
	// TDT number at creation time.
	Register bool
}

// PropertyService defines the interface for property business logic operations.
type PropertyService interface {
	// ListProperties retrieves properties matching the filter.
	ListProperties(ctx context.Context, filter repository.PropertyFilter) ([]models.Property, error)

	// GetMapPoints retrieves all geocoded properties for the map view.
	GetMapPoints(ctx context.Context) ([]repository.MapPoint, error)

	// GetProperty retrieves a single property by id.
	// Returns ErrPropertyNotFound if no property exists with the id.
	GetProperty(ctx context.Context, id int) (*models.Property, error)

	// LookupProperty retrieves a property by parcel id or TDT number.
	// Returns ErrLookupKeyRequired if both keys are empty and
	// ErrPropertyNotFound if no property matches.
	LookupProperty(ctx context.Context, parcelID, tdtNumber string) (*models.Property, error)

	// CreateProperty creates a property from intake fields, classifying
	// its compliance scenario at creation time.
	CreateProperty(ctx context.Context, input CreatePropertyInput) (*models.Property, error)

	// RegisterProperty transitions a property from unregistered to
	// registered, assigning its TDT number and registration date.
	// Returns ErrPropertyNotFound if the property does not exist and
	// ErrAlreadyRegistered if it has already been registered.
	RegisterProperty(ctx context.Context, id int) (*models.Property, error)
}

type propertyService struct {
	properties repository.PropertyRepository
	payments   repository.PaymentRepository
	log        *logger.Logger
}

// NewPropertyService creates a new instance of PropertyService.
func NewPropertyService(properties repository.PropertyRepository, payments repository.PaymentRepository, log *logger.Logger) PropertyService {
	return &propertyService{
		properties: properties,
		payments:   payments,
		log:        log,
	}
}

func (s *propertyService) ListProperties(ctx context.Context, filter repository.PropertyFilter) ([]models.Property, error) {
	properties, err := s.properties.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list properties", err, nil)
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

func (s *propertyService) GetMapPoints(ctx context.Context) ([]repository.MapPoint, error) {
	points, err := s.properties.ListForMap(ctx)
	if err != nil {
		s.log.Error("Failed to list map points", err, nil)
		return nil, fmt.Errorf("failed to list map points: %w", err)
	}
	return points, nil
}

func (s *propertyService) GetProperty(ctx context.Context, id int) (*models.Property, error) {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to query property", err, map[string]interface{}{
			"property_id": id,
		})
		return nil, fmt.Errorf("failed to query property: %w", err)
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

// LookupProperty resolves a property by alternate key. Parcel id takes
// precedence when both are given.
func (s *propertyService) LookupProperty(ctx context.Context, parcelID, tdtNumber string) (*models.Property, error) {
	var (
		property *models.Property
		err      error
	)

	switch {
	case parcelID != "":
		property, err = s.properties.GetByParcelID(ctx, parcelID)
	case tdtNumber != "":
		property, err = s.properties.GetByTDTNumber(ctx, tdtNumber)
	default:
		return nil, ErrLookupKeyRequired
	}

	if err != nil {
		s.log.Error("Failed to look up property", err, map[string]interface{}{
			"parcel_id":  parcelID,
			"tdt_number": tdtNumber,
		})
		return nil, fmt.Errorf("failed to look up property: %w", err)
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

func (s *propertyService) CreateProperty(ctx context.Context, input CreatePropertyInput) (*models.Property, error) {
	property := &models.Property{
		ParcelID:        input.ParcelID,
		OwnerName:       input.OwnerName,
		Address:         input.Address,
		StreetNumber:    input.StreetNumber,
		LocDescription:  input.LocDescription,
		City:            input.City,
		ZipCode:         input.ZipCode,
		Lat:             input.Lat,
		Lng:             input.Lng,
		LandUseCode:     input.LandUseCode,
		ZoningType:      input.ZoningType,
		Description:     input.Description,
		HomesteadStatus: input.Homestead,
	}
	if property.City == "" {
		property.City = DefaultCity
	}
	if property.ZipCode == "" {
		property.ZipCode = DefaultZipCode
	}
	if property.ZoningType == "" {
		property.ZoningType = "residential"
	}

	if input.Register {
		now := time.Now().UTC()
		tdtNumber := models.NewTDTNumber(now.Year())
		property.IsRegistered = true
		property.TDTNumber = &tdtNumber
		property.RegistrationDate = &now
	}

	// A new property has no payment history.
	property.ComplianceScenario = compliance.Classify(property.IsRegistered, false, false).Ptr()

	id, err := s.properties.Insert(ctx, property)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateProperty
		}
		s.log.Error("Failed to create property", err, map[string]interface{}{
			"address": input.Address,
		})
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	s.log.Info("Property created", map[string]interface{}{
		"property_id": id,
		"address":     property.Address,
		"registered":  property.IsRegistered,
	})

	return s.GetProperty(ctx, id)
}

func (s *propertyService) RegisterProperty(ctx context.Context, id int) (*models.Property, error) {
	property, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	if property.IsRegistered {
		return nil, ErrAlreadyRegistered
	}

	now := time.Now().UTC()
	tdtNumber := models.NewTDTNumber(now.Year())

	ok, err := s.properties.Register(ctx, id, tdtNumber, now)
	if err != nil {
		s.log.Error("Failed to register property", err, map[string]interface{}{
			"property_id": id,
		})
		return nil, fmt.Errorf("failed to register property: %w", err)
	}
	if !ok {
		// Lost a race with a concurrent registration.
		return nil, ErrAlreadyRegistered
	}

	if _, err := recomputeScenario(ctx, s.properties, s.payments, id, true); err != nil {
		return nil, err
	}

	s.log.Info("Property registered", map[string]interface{}{
		"property_id": id,
		"tdt_number":  tdtNumber,
	})

	return s.GetProperty(ctx, id)
}

// recomputeScenario reclassifies a property from its current payment
// history and stores the result. Called after every registration or
// payment mutation.
func recomputeScenario(ctx context.Context, properties repository.PropertyRepository, payments repository.PaymentRepository, propertyID int, isRegistered bool) (compliance.Scenario, error) {
	summary, err := payments.SummaryForProperty(ctx, propertyID)
	if err != nil {
		return 0, fmt.Errorf("failed to summarize payments for property %d: %w", propertyID, err)
	}

	scenario := compliance.Classify(isRegistered, summary.HasPayments(), summary.Correct())
	if err := properties.SetComplianceScenario(ctx, propertyID, scenario.Ptr()); err != nil {
		return 0, fmt.Errorf("failed to store compliance scenario for property %d: %w", propertyID, err)
	}

	return scenario, nil
}
