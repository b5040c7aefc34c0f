package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountyRepositoryListSales(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	saleDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM sales").
		WithArgs("0123456789").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "parcel_id", "sale_date", "sequence", "sale_price", "legal_reference",
			"book", "page", "nal_code", "deed_type", "recording_date", "doc_stamps", "created_at",
		}).AddRow(
			1, "0123456789", &saleDate, ptr(1),
			decimal.NullDecimal{Decimal: decimal.NewFromInt(450000), Valid: true},
			(*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), ptr("WD"),
			(*time.Time)(nil), decimal.NullDecimal{}, time.Now(),
		))

	repo := NewCountyRepository(mock)
	sales, err := repo.ListSales(context.Background(), "0123456789")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "0123456789", sales[0].ParcelID)
	require.NotNil(t, sales[0].DeedType)
	assert.Equal(t, "WD", *sales[0].DeedType)
	assert.True(t, sales[0].SalePrice.Valid)
	assert.True(t, sales[0].SalePrice.Decimal.Equal(decimal.NewFromInt(450000)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountyRepositoryLatestValue(t *testing.T) {
	t.Run("returns most recent line", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM property_values").
			WithArgs("0123456789").
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "parcel_id", "total_value", "land_value", "building_value", "sfyi_value",
				"assessed_value", "taxable_value", "deletions", "new_const", "new_land",
				"ag_credit", "created_at",
			}).AddRow(
				7, "0123456789",
				decimal.NullDecimal{Decimal: decimal.NewFromInt(512000), Valid: true},
				decimal.NullDecimal{}, decimal.NullDecimal{}, decimal.NullDecimal{},
				decimal.NullDecimal{Decimal: decimal.NewFromInt(480000), Valid: true},
				decimal.NullDecimal{}, decimal.NullDecimal{}, decimal.NullDecimal{},
				decimal.NullDecimal{}, decimal.NullDecimal{}, time.Now(),
			))

		repo := NewCountyRepository(mock)
		value, err := repo.LatestValue(context.Background(), "0123456789")
		require.NoError(t, err)
		require.NotNil(t, value)
		assert.True(t, value.TotalValue.Decimal.Equal(decimal.NewFromInt(512000)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns nil when parcel has no value lines", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM property_values").
			WithArgs("no-such-parcel").
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		repo := NewCountyRepository(mock)
		value, err := repo.LatestValue(context.Background(), "no-such-parcel")
		require.NoError(t, err)
		assert.Nil(t, value)
	})
}

func TestCountyRepositoryListExemptions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM exemptions").
		WithArgs("0123456789").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "parcel_id", "exemption_code", "amount_off_total_assessment", "app_code", "created_at",
		}).AddRow(
			1, "0123456789", ptr("HX"),
			decimal.NullDecimal{Decimal: decimal.NewFromInt(50000), Valid: true},
			ptr("A"), time.Now(),
		))

	repo := NewCountyRepository(mock)
	exemptions, err := repo.ListExemptions(context.Background(), "0123456789")
	require.NoError(t, err)
	require.Len(t, exemptions, 1)
	require.NotNil(t, exemptions[0].ExemptionCode)
	assert.Equal(t, "HX", *exemptions[0].ExemptionCode)
}

func TestCountyRepositoryListLookupCodes(t *testing.T) {
	t.Run("valid kind queries its table", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM lookup_deed_types").
			WillReturnRows(pgxmock.NewRows([]string{"id", "code", "description", "created_at"}).
				AddRow(1, "WD", ptr("Warranty Deed"), time.Now()).
				AddRow(2, "QC", ptr("Quit Claim"), time.Now()))

		repo := NewCountyRepository(mock)
		codes, err := repo.ListLookupCodes(context.Background(), "deed_type")
		require.NoError(t, err)
		require.Len(t, codes, 2)
		assert.Equal(t, "WD", codes[0].Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown kind is rejected without a query", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewCountyRepository(mock)
		_, err = repo.ListLookupCodes(context.Background(), "zoning")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownLookupKind))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountyRepositoryListBuildingsQueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM buildings").
		WithArgs("0123456789").
		WillReturnError(errors.New("connection refused"))

	repo := NewCountyRepository(mock)
	_, err = repo.ListBuildings(context.Background(), "0123456789")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query buildings")
}
