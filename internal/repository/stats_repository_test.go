package repository

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepositoryComplianceStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT").
		WillReturnRows(pgxmock.NewRows([]string{"total", "registered", "unregistered", "s1", "s2", "s3", "s4"}).
			AddRow(100, 60, 40, 25, 15, 12, 8))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM tdt_payments`).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).
			AddRow(decimal.NewFromFloat(12345.67)))

	repo := NewStatsRepository(mock)
	stats, err := repo.ComplianceStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100, stats.TotalProperties)
	assert.Equal(t, 60, stats.Registered)
	assert.Equal(t, 40, stats.Unregistered)
	assert.Equal(t, 25, stats.Scenario1)
	assert.Equal(t, 8, stats.Scenario4)
	assert.True(t, stats.TotalPayments.Equal(decimal.NewFromFloat(12345.67)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
