package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/srqtax/tdt/internal/database"
	"github.com/srqtax/tdt/internal/models"
)

// maxTransactionIDAttempts bounds the retry loop when a generated
// transaction id collides with an existing one.
const maxTransactionIDAttempts = 5

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// PaymentFilter narrows a payment listing. Zero values mean "no filter".
type PaymentFilter struct {
	PropertyID *int
	Limit      int
}

// PaymentSummary aggregates a property's payment history for the
// compliance classifier.
type PaymentSummary struct {
	// Count is the total number of payments recorded for the property.
	Count int
	// Mismatched counts payments whose amount differs from a non-null
	// expected amount.
	Mismatched int
}

// HasPayments reports whether any payment has been recorded.
func (s PaymentSummary) HasPayments() bool { return s.Count > 0 }

// Correct reports whether every payment with an expected amount matched
// it exactly.
func (s PaymentSummary) Correct() bool { return s.Mismatched == 0 }

// PaymentRepository defines the interface for payment data access operations.
type PaymentRepository interface {
	// Insert creates a payment, generating its transaction id. On a
	// transaction id collision it retries with a fresh id a bounded
	// number of times. Sets ID, TransactionID, and CreatedAt on p.
	Insert(ctx context.Context, p *models.TDTPayment) error

	// List returns payments matching the filter, newest first.
	List(ctx context.Context, filter PaymentFilter) ([]models.TDTPayment, error)

	// GetByID returns nil, nil if no payment has the given id (not an error).
	GetByID(ctx context.Context, id int) (*models.TDTPayment, error)

	// SummaryForProperty aggregates the property's payment history.
	SummaryForProperty(ctx context.Context, propertyID int) (PaymentSummary, error)
}

type paymentRepository struct {
	db database.Pool
}

// NewPaymentRepository creates a new instance of PaymentRepository.
func NewPaymentRepository(db database.Pool) PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

const paymentColumns = `
	id, transaction_id, property_id, dealer_id,
	amount, period_start, period_end, payment_date,
	expected_amount, verified, notes, created_at`

func scanPayment(row pgx.Row) (*models.TDTPayment, error) {
	var p models.TDTPayment
	err := row.Scan(
		&p.ID, &p.TransactionID, &p.PropertyID, &p.DealerID,
		&p.Amount, &p.PeriodStart, &p.PeriodEnd, &p.PaymentDate,
		&p.ExpectedAmount, &p.Verified, &p.Notes, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) Insert(ctx context.Context, p *models.TDTPayment) error {
	query := `
		INSERT INTO tdt_payments (
			transaction_id, property_id, dealer_id,
			amount, period_start, period_end, payment_date,
			expected_amount, verified, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, transaction_id, created_at
	`

	for attempt := 0; attempt < maxTransactionIDAttempts; attempt++ {
		txID := models.NewTransactionID()

		err := r.db.QueryRow(ctx, query,
			txID, p.PropertyID, p.DealerID,
			p.Amount, p.PeriodStart, p.PeriodEnd, p.PaymentDate,
			p.ExpectedAmount, p.Verified, p.Notes,
		).Scan(&p.ID, &p.TransactionID, &p.CreatedAt)
		if err == nil {
			return nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == "tdt_payments_transaction_id_key" {
			continue
		}
		return fmt.Errorf("failed to insert payment for property %d: %w", p.PropertyID, err)
	}

	return fmt.Errorf("failed to insert payment for property %d: transaction id collisions exhausted %d attempts", p.PropertyID, maxTransactionIDAttempts)
}

func (r *paymentRepository) List(ctx context.Context, filter PaymentFilter) ([]models.TDTPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM tdt_payments WHERE 1=1`
	args := []any{}

	if filter.PropertyID != nil {
		args = append(args, *filter.PropertyID)
		query += fmt.Sprintf(" AND property_id = $%d", len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []models.TDTPayment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return payments, nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id int) (*models.TDTPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM tdt_payments WHERE id = $1`

	p, err := scanPayment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query payment %d: %w", id, err)
	}
	return p, nil
}

func (r *paymentRepository) SummaryForProperty(ctx context.Context, propertyID int) (PaymentSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE expected_amount IS NOT NULL AND amount <> expected_amount)
		FROM tdt_payments
		WHERE property_id = $1
	`

	var summary PaymentSummary
	err := r.db.QueryRow(ctx, query, propertyID).Scan(&summary.Count, &summary.Mismatched)
	if err != nil {
		return PaymentSummary{}, fmt.Errorf("failed to summarize payments for property %d: %w", propertyID, err)
	}

	return summary, nil
}
