package services

import (
	"context"
	"fmt"

	"github.com/srqtax/tdt/internal/logger"
	"github.com/srqtax/tdt/internal/models"
	"github.com/srqtax/tdt/internal/repository"
)

// DealerService defines the interface for dealer business logic operations.
type DealerService interface {
	// ListDealers retrieves the active dealers shown in the payment form.
	ListDealers(ctx context.Context) ([]models.Dealer, error)
}

type dealerService struct {
	repo repository.DealerRepository
	log  *logger.Logger
}

// NewDealerService creates a new instance of DealerService.
func NewDealerService(repo repository.DealerRepository, log *logger.Logger) DealerService {
	return &dealerService{
		repo: repo,
		log:  log,
	}
}

func (s *dealerService) ListDealers(ctx context.Context) ([]models.Dealer, error) {
	dealers, err := s.repo.ListActive(ctx)
	if err != nil {
		s.log.Error("Failed to list dealers", err, nil)
		return nil, fmt.Errorf("failed to list dealers: %w", err)
	}
	return dealers, nil
}
