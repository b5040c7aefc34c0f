package services

import (
	"context"
	"time"

	"github.com/srqtax/tdt/internal/models"
	"github.com/srqtax/tdt/internal/repository"
	"github.com/stretchr/testify/mock"
)

// MockPropertyRepository is a mock implementation of PropertyRepository for testing
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) List(ctx context.Context, filter repository.PropertyFilter) ([]models.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyRepository) ListForMap(ctx context.Context) ([]repository.MapPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.MapPoint), args.Error(1)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id int) (*models.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) GetByParcelID(ctx context.Context, parcelID string) (*models.Property, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) GetByTDTNumber(ctx context.Context, tdtNumber string) (*models.Property, error) {
	args := m.Called(ctx, tdtNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) Insert(ctx context.Context, p *models.Property) (int, error) {
	args := m.Called(ctx, p)
	return args.Int(0), args.Error(1)
}

func (m *MockPropertyRepository) Register(ctx context.Context, id int, tdtNumber string, registeredAt time.Time) (bool, error) {
	args := m.Called(ctx, id, tdtNumber, registeredAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockPropertyRepository) SetComplianceScenario(ctx context.Context, id int, scenario *int) error {
	args := m.Called(ctx, id, scenario)
	return args.Error(0)
}

// MockPaymentRepository is a mock implementation of PaymentRepository for testing
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Insert(ctx context.Context, p *models.TDTPayment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) List(ctx context.Context, filter repository.PaymentFilter) ([]models.TDTPayment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TDTPayment), args.Error(1)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int) (*models.TDTPayment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TDTPayment), args.Error(1)
}

func (m *MockPaymentRepository) SummaryForProperty(ctx context.Context, propertyID int) (repository.PaymentSummary, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(repository.PaymentSummary), args.Error(1)
}

// MockDealerRepository is a mock implementation of DealerRepository for testing
type MockDealerRepository struct {
	mock.Mock
}

func (m *MockDealerRepository) ListActive(ctx context.Context) ([]models.Dealer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dealer), args.Error(1)
}

// MockStatsRepository is a mock implementation of StatsRepository for testing
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) ComplianceStats(ctx context.Context) (*models.ComplianceStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ComplianceStats), args.Error(1)
}

// MockCountyRepository is a mock implementation of CountyRepository for testing
type MockCountyRepository struct {
	mock.Mock
}

func (m *MockCountyRepository) ListSales(ctx context.Context, parcelID string) ([]models.Sale, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Sale), args.Error(1)
}

func (m *MockCountyRepository) ListBuildings(ctx context.Context, parcelID string) ([]models.Building, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Building), args.Error(1)
}

func (m *MockCountyRepository) ListLand(ctx context.Context, parcelID string) ([]models.Land, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Land), args.Error(1)
}

func (m *MockCountyRepository) LatestValue(ctx context.Context, parcelID string) (*models.PropertyValue, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PropertyValue), args.Error(1)
}

func (m *MockCountyRepository) ListExemptions(ctx context.Context, parcelID string) ([]models.Exemption, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Exemption), args.Error(1)
}

func (m *MockCountyRepository) ListLookupCodes(ctx context.Context, kind string) ([]models.LookupCode, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LookupCode), args.Error(1)
}
