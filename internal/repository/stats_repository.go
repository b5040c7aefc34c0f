package repository

import (
	"context"
	"fmt"

	"github.com/srqtax/tdt/internal/database"
	"github.com/srqtax/tdt/internal/models"
)

// StatsRepository defines the interface for aggregate compliance statistics.
type StatsRepository interface {
	ComplianceStats(ctx context.Context) (*models.ComplianceStats, error)
}

type statsRepository struct {
	db database.Pool
}

// NewStatsRepository creates a new instance of StatsRepository.
func NewStatsRepository(db database.Pool) StatsRepository {
	return &statsRepository{
		db: db,
	}
}

func (r *statsRepository) ComplianceStats(ctx context.Context) (*models.ComplianceStats, error) {
	propertyQuery := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_registered),
			COUNT(*) FILTER (WHERE NOT is_registered),
			COUNT(*) FILTER (WHERE compliance_scenario = 1),
			COUNT(*) FILTER (WHERE compliance_scenario = 2),
			COUNT(*) FILTER (WHERE compliance_scenario = 3),
			COUNT(*) FILTER (WHERE compliance_scenario = 4)
		FROM properties
	`

	var stats models.ComplianceStats
	err := r.db.QueryRow(ctx, propertyQuery).Scan(
		&stats.TotalProperties,
		&stats.Registered,
		&stats.Unregistered,
		&stats.Scenario1,
		&stats.Scenario2,
		&stats.Scenario3,
		&stats.Scenario4,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query property stats: %w", err)
	}

	paymentQuery := `SELECT COALESCE(SUM(amount), 0) FROM tdt_payments`
	if err := r.db.QueryRow(ctx, paymentQuery).Scan(&stats.TotalPayments); err != nil {
		return nil, fmt.Errorf("failed to query payment total: %w", err)
	}

	return &stats, nil
}
