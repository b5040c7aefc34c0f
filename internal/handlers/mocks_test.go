package handlers

import (
	"context"

	"github.com/srqtax/tdt/internal/models"
	"github.com/srqtax/tdt/internal/repository"
	"github.com/srqtax/tdt/internal/services"
	"github.com/stretchr/testify/mock"
)

// MockPropertyService is a mock implementation of PropertyService for testing
type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) ListProperties(ctx context.Context, filter repository.PropertyFilter) ([]models.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyService) GetMapPoints(ctx context.Context) ([]repository.MapPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.MapPoint), args.Error(1)
}

func (m *MockPropertyService) GetProperty(ctx context.Context, id int) (*models.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) LookupProperty(ctx context.Context, parcelID, tdtNumber string) (*models.Property, error) {
	args := m.Called(ctx, parcelID, tdtNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) CreateProperty(ctx context.Context, input services.CreatePropertyInput) (*models.Property, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) RegisterProperty(ctx context.Context, id int) (*models.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

// MockPaymentService is a mock implementation of PaymentService for testing
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, input services.CreatePaymentInput) (*models.TDTPayment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TDTPayment), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, filter repository.PaymentFilter) ([]models.TDTPayment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TDTPayment), args.Error(1)
}

func (m *MockPaymentService) GetPayment(ctx context.Context, id int) (*models.TDTPayment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TDTPayment), args.Error(1)
}

// MockDealerService is a mock implementation of DealerService for testing
type MockDealerService struct {
	mock.Mock
}

func (m *MockDealerService) ListDealers(ctx context.Context) ([]models.Dealer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dealer), args.Error(1)
}

// MockStatsService is a mock implementation of StatsService for testing
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStats(ctx context.Context) (*models.ComplianceStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ComplianceStats), args.Error(1)
}

// MockCountyService is a mock implementation of CountyService for testing
type MockCountyService struct {
	mock.Mock
}

func (m *MockCountyService) GetAssessorDetail(ctx context.Context, propertyID int) (*services.AssessorDetail, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AssessorDetail), args.Error(1)
}

func (m *MockCountyService) ListLookupCodes(ctx context.Context, kind string) ([]models.LookupCode, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LookupCode), args.Error(1)
}
