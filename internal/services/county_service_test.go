package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srqtax/tdt/internal/logger"
	"github.com/srqtax/tdt/internal/models"
	"github.com/srqtax/tdt/internal/repository"
)

func newCountyService(county *MockCountyRepository, props *MockPropertyRepository) CountyService {
	return NewCountyService(county, props, logger.New("test"))
}

func TestGetAssessorDetail_PropertyNotFound(t *testing.T) {
	mockCounty := new(MockCountyRepository)
	mockProps := new(MockPropertyRepository)
	service := newCountyService(mockCounty, mockProps)

	ctx := context.Background()
	mockProps.On("GetByID", ctx, 99).Return(nil, nil)

	detail, err := service.GetAssessorDetail(ctx, 99)

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	mockCounty.AssertNotCalled(t, "ListSales")
	mockProps.AssertExpectations(t)
}

func TestGetAssessorDetail_NoParcelID(t *testing.T) {
	mockCounty := new(MockCountyRepository)
	mockProps := new(MockPropertyRepository)
	service := newCountyService(mockCounty, mockProps)

	ctx := context.Background()
	mockProps.On("GetByID", ctx, 1).Return(&models.Property{
		ID:      1,
		Address: "123 MAIN ST",
		City:    "Sarasota",
		ZipCode: "34236",
	}, nil)

	detail, err := service.GetAssessorDetail(ctx, 1)

	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Empty(t, detail.Sales)
	assert.NotNil(t, detail.Sales)
	assert.Nil(t, detail.LatestValue)
	mockCounty.AssertNotCalled(t, "ListSales")
	mockProps.AssertExpectations(t)
}

func TestGetAssessorDetail_FullDetail(t *testing.T) {
	mockCounty := new(MockCountyRepository)
	mockProps := new(MockPropertyRepository)
	service := newCountyService(mockCounty, mockProps)

	ctx := context.Background()
	parcelID := "0123456789"
	mockProps.On("GetByID", ctx, 1).Return(&models.Property{
		ID:       1,
		ParcelID: &parcelID,
		Address:  "123 MAIN ST",
		City:     "Sarasota",
		ZipCode:  "34236",
	}, nil)

	sales := []models.Sale{{ID: 1, ParcelID: parcelID, DeedType: ptr("WD")}}
	buildings := []models.Building{{ID: 1, ParcelID: parcelID, YearBuilt: ptr(1975)}}
	land := []models.Land{{ID: 1, ParcelID: parcelID}}
	value := &models.PropertyValue{ID: 7, ParcelID: parcelID}
	exemptions := []models.Exemption{{ID: 1, ParcelID: parcelID, ExemptionCode: ptr("HX")}}

	mockCounty.On("ListSales", ctx, parcelID).Return(sales, nil)
	mockCounty.On("ListBuildings", ctx, parcelID).Return(buildings, nil)
	mockCounty.On("ListLand", ctx, parcelID).Return(land, nil)
	mockCounty.On("LatestValue", ctx, parcelID).Return(value, nil)
	mockCounty.On("ListExemptions", ctx, parcelID).Return(exemptions, nil)

	detail, err := service.GetAssessorDetail(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, sales, detail.Sales)
	assert.Equal(t, buildings, detail.Buildings)
	assert.Equal(t, land, detail.Land)
	assert.Equal(t, value, detail.LatestValue)
	assert.Equal(t, exemptions, detail.Exemptions)
	mockCounty.AssertExpectations(t)
	mockProps.AssertExpectations(t)
}

func TestGetAssessorDetail_EmptySectionsAreNotNil(t *testing.T) {
	mockCounty := new(MockCountyRepository)
	mockProps := new(MockPropertyRepository)
	service := newCountyService(mockCounty, mockProps)

	ctx := context.Background()
	parcelID := "0123456789"
	mockProps.On("GetByID", ctx, 1).Return(&models.Property{
		ID:       1,
		ParcelID: &parcelID,
		Address:  "123 MAIN ST",
		City:     "Sarasota",
		ZipCode:  "34236",
	}, nil)

	mockCounty.On("ListSales", ctx, parcelID).Return(nil, nil)
	mockCounty.On("ListBuildings", ctx, parcelID).Return(nil, nil)
	mockCounty.On("ListLand", ctx, parcelID).Return(nil, nil)
	mockCounty.On("LatestValue", ctx, parcelID).Return(nil, nil)
	mockCounty.On("ListExemptions", ctx, parcelID).Return(nil, nil)

	detail, err := service.GetAssessorDetail(ctx, 1)

	require.NoError(t, err)
	assert.NotNil(t, detail.Sales)
	assert.NotNil(t, detail.Buildings)
	assert.NotNil(t, detail.Land)
	assert.NotNil(t, detail.Exemptions)
	assert.Nil(t, detail.LatestValue)
}

func TestGetAssessorDetail_RepositoryError(t *testing.T) {
	mockCounty := new(MockCountyRepository)
	mockProps := new(MockPropertyRepository)
	service := newCountyService(mockCounty, mockProps)

	ctx := context.Background()
	parcelID := "0123456789"
	mockProps.On("GetByID", ctx, 1).Return(&models.Property{
		ID:       1,
		ParcelID: &parcelID,
		Address:  "123 MAIN ST",
		City:     "Sarasota",
		ZipCode:  "34236",
	}, nil)

	mockCounty.On("ListSales", ctx, parcelID).Return(nil, errors.New("connection refused"))

	detail, err := service.GetAssessorDetail(ctx, 1)

	assert.Nil(t, detail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list sales")
	mockCounty.AssertNotCalled(t, "ListBuildings")
}

func TestListLookupCodes(t *testing.T) {
	t.Run("passes codes through", func(t *testing.T) {
		mockCounty := new(MockCountyRepository)
		service := newCountyService(mockCounty, new(MockPropertyRepository))

		ctx := context.Background()
		expected := []models.LookupCode{{ID: 1, Code: "WD", Description: ptr("Warranty Deed")}}
		mockCounty.On("ListLookupCodes", ctx, "deed_type").Return(expected, nil)

		codes, err := service.ListLookupCodes(ctx, "deed_type")

		require.NoError(t, err)
		assert.Equal(t, expected, codes)
		mockCounty.AssertExpectations(t)
	})

	t.Run("wraps unknown kind", func(t *testing.T) {
		mockCounty := new(MockCountyRepository)
		service := newCountyService(mockCounty, new(MockPropertyRepository))

		ctx := context.Background()
		mockCounty.On("ListLookupCodes", ctx, "zoning").Return(nil, repository.ErrUnknownLookupKind)

		codes, err := service.ListLookupCodes(ctx, "zoning")

		assert.Nil(t, codes)
		assert.ErrorIs(t, err, repository.ErrUnknownLookupKind)
	})
}
