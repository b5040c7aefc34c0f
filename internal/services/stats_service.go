package services

import (
	"context"
	"fmt"

	"github.com/srqtax/tdt/internal/logger"
	"github.com/srqtax/tdt/internal/models"
	"github.com/srqtax/tdt/internal/repository"
)

// StatsService defines the interface for compliance statistics.
type StatsService interface {
	// GetStats retrieves the aggregate compliance snapshot.
	GetStats(ctx context.Context) (*models.ComplianceStats, error)
}

type statsService struct {
	repo repository.StatsRepository
	log  *logger.Logger
}

// NewStatsService creates a new instance of StatsService.
func NewStatsService(repo repository.StatsRepository, log *logger.Logger) StatsService {
	return &statsService{
		repo: repo,
		log:  log,
	}
}

func (s *statsService) GetStats(ctx context.Context) (*models.ComplianceStats, error) {
	stats, err := s.repo.ComplianceStats(ctx)
	if err != nil {
		s.log.Error("Failed to compute compliance stats", err, nil)
		return nil, fmt.Errorf("failed to compute compliance stats: %w", err)
	}
	return stats, nil
}
