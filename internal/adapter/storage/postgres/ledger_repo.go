package postgres

import (
	"context"
	"fmt"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.LedgerRepository.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Append inserts one completed ledger row within a transaction.
func (r *LedgerRepo) Append(ctx context.Context, tx pgx.Tx, entry *domain.Transaction) error {
	query := `INSERT INTO transactions (` + txColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := tx.Exec(ctx, query,
		entry.ID, entry.AccountID, entry.Type, entry.Currency, entry.Amount,
		entry.AmountRequested, entry.EstimatedBonus, entry.EstimatedTokens,
		entry.TokensGenerated, entry.Status, entry.ExternalID,
		entry.SettlementMethod, entry.AdminKey, entry.CreatedAt, entry.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

// ExternalIDSettled reports whether a completed row with the external id
// already exists. Must run inside the transaction performing the eventual
// write so the duplicate check and the write are atomic.
func (r *LedgerRepo) ExternalIDSettled(ctx context.Context, tx pgx.Tx, externalID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM transactions
		WHERE external_id = $1 AND status = $2)`

	var exists bool
	err := tx.QueryRow(ctx, query, externalID, domain.TransactionStatusCompleted).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check external id settled: %w", err)
	}
	return exists, nil
}

// ListByAccount returns the newest ledger rows for an account.
func (r *LedgerRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + txColumns + ` FROM transactions
		WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Transaction
	for rows.Next() {
		t := domain.Transaction{}
		err := rows.Scan(
			&t.ID, &t.AccountID, &t.Type, &t.Currency, &t.Amount, &t.AmountRequested,
			&t.EstimatedBonus, &t.EstimatedTokens, &t.TokensGenerated, &t.Status,
			&t.ExternalID, &t.SettlementMethod, &t.AdminKey, &t.CreatedAt, &t.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entries: %w", err)
	}
	return entries, nil
}
