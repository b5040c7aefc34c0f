package repository

import (
	"context"
	"fmt"

	"github.com/srqtax/tdt/internal/database"
	"github.com/srqtax/tdt/internal/models"
)

// localRentalsPrefix marks the seeded placeholder dealers hidden from the
// dealer dropdown.
const localRentalsPrefix = "Local Rentals%"

// DealerRepository defines the interface for dealer data access operations.
type DealerRepository interface {
	// ListActive returns active dealers, excluding the "Local Rentals"
	// placeholders, ordered by name. Returns an empty slice if none exist.
	ListActive(ctx context.Context) ([]models.Dealer, error)
}

type dealerRepository struct {
	db database.Pool
}

// NewDealerRepository creates a new instance of DealerRepository.
func NewDealerRepository(db database.Pool) DealerRepository {
	return &dealerRepository{
		db: db,
	}
}

func (r *dealerRepository) ListActive(ctx context.Context) ([]models.Dealer, error) {
	query := `
		SELECT id, name, dealer_type, contact_email, contact_phone, is_active, created_at
		FROM dealers
		WHERE is_active = TRUE AND name NOT LIKE $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, localRentalsPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to query dealers: %w", err)
	}
	defer rows.Close()

	dealers := []models.Dealer{}
	for rows.Next() {
		var d models.Dealer
		if err := rows.Scan(&d.ID, &d.Name, &d.DealerType, &d.ContactEmail, &d.ContactPhone, &d.IsActive, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dealer row: %w", err)
		}
		dealers = append(dealers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dealer rows: %w", err)
	}

	return dealers, nil
}
