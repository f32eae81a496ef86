package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UnmatchedRepo implements ports.UnmatchedRepository.
type UnmatchedRepo struct {
	pool Pool
}

// NewUnmatchedRepo creates a new UnmatchedRepo.
func NewUnmatchedRepo(pool Pool) *UnmatchedRepo {
	return &UnmatchedRepo{pool: pool}
}

const unmatchedColumns = `id, phone, amount, currency, external_id, settlement_method,
		needs_verification, claimed, claimed_by, created_at, claimed_at`

// Create inserts a new unmatched payment.
func (r *UnmatchedRepo) Create(ctx context.Context, p *domain.UnmatchedPayment) error {
	query := `INSERT INTO unmatched_payments (` + unmatchedColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Phone, p.Amount, p.Currency, p.ExternalID, p.SettlementMethod,
		p.NeedsVerification, p.Claimed, p.ClaimedBy, p.CreatedAt, p.ClaimedAt,
	)
	if err != nil {
		return fmt.Errorf("insert unmatched payment: %w", err)
	}
	return nil
}

// GetUnclaimedByExternalID returns the open payment with the external id, or nil.
func (r *UnmatchedRepo) GetUnclaimedByExternalID(ctx context.Context, externalID string) (*domain.UnmatchedPayment, error) {
	query := `SELECT ` + unmatchedColumns + ` FROM unmatched_payments
		WHERE external_id = $1 AND claimed = FALSE`

	p := &domain.UnmatchedPayment{}
	err := r.pool.QueryRow(ctx, query, externalID).Scan(
		&p.ID, &p.Phone, &p.Amount, &p.Currency, &p.ExternalID, &p.SettlementMethod,
		&p.NeedsVerification, &p.Claimed, &p.ClaimedBy, &p.CreatedAt, &p.ClaimedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unmatched payment: %w", err)
	}
	return p, nil
}

// MarkClaimed closes an unmatched payment against the claiming account.
func (r *UnmatchedRepo) MarkClaimed(ctx context.Context, id, accountID uuid.UUID) error {
	query := `UPDATE unmatched_payments SET claimed = TRUE, claimed_by = $1, claimed_at = NOW()
		WHERE id = $2 AND claimed = FALSE`

	tag, err := r.pool.Exec(ctx, query, accountID, id)
	if err != nil {
		return fmt.Errorf("mark payment claimed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment already claimed or missing: %s", id)
	}
	return nil
}

// ListUnclaimed returns the oldest open payments.
func (r *UnmatchedRepo) ListUnclaimed(ctx context.Context, limit int) ([]domain.UnmatchedPayment, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT ` + unmatchedColumns + ` FROM unmatched_payments
		WHERE claimed = FALSE ORDER BY created_at ASC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list unmatched payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.UnmatchedPayment
	for rows.Next() {
		p := domain.UnmatchedPayment{}
		err := rows.Scan(
			&p.ID, &p.Phone, &p.Amount, &p.Currency, &p.ExternalID, &p.SettlementMethod,
			&p.NeedsVerification, &p.Claimed, &p.ClaimedBy, &p.CreatedAt, &p.ClaimedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan unmatched payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unmatched payments: %w", err)
	}
	return payments, nil
}
