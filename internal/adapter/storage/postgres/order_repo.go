package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepo implements ports.OrderRepository. Orders live in the same
// transactions table as settled ledger rows; a pending DEPOSIT row is an
// order.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const txColumns = `id, account_id, type, currency, amount, amount_requested,
		estimated_bonus, estimated_tokens, tokens_generated, status,
		external_id, settlement_method, admin_key, created_at, completed_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	err := row.Scan(
		&t.ID, &t.AccountID, &t.Type, &t.Currency, &t.Amount, &t.AmountRequested,
		&t.EstimatedBonus, &t.EstimatedTokens, &t.TokensGenerated, &t.Status,
		&t.ExternalID, &t.SettlementMethod, &t.AdminKey, &t.CreatedAt, &t.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a pending deposit order within a transaction.
func (r *OrderRepo) Create(ctx context.Context, tx pgx.Tx, order *domain.Transaction) error {
	query := `INSERT INTO transactions (` + txColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := tx.Exec(ctx, query,
		order.ID, order.AccountID, order.Type, order.Currency, order.Amount,
		order.AmountRequested, order.EstimatedBonus, order.EstimatedTokens,
		order.TokensGenerated, order.Status, order.ExternalID,
		order.SettlementMethod, order.AdminKey, order.CreatedAt, order.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// FindPending returns the newest pending order for (account, currency), or nil.
func (r *OrderRepo) FindPending(ctx context.Context, accountID uuid.UUID, currency domain.Currency) (*domain.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions
		WHERE account_id = $1 AND currency = $2 AND type = $3 AND status = $4
		ORDER BY created_at DESC LIMIT 1`

	t, err := scanTransaction(r.pool.QueryRow(ctx, query,
		accountID, currency, domain.TransactionTypeDeposit, domain.TransactionStatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find pending order: %w", err)
	}
	return t, nil
}

// FindPendingForUpdate is FindPending with the order row locked. It MUST be
// called within a transaction already holding the account lock.
func (r *OrderRepo) FindPendingForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, currency domain.Currency) (*domain.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions
		WHERE account_id = $1 AND currency = $2 AND type = $3 AND status = $4
		ORDER BY created_at DESC LIMIT 1 FOR UPDATE`

	t, err := scanTransaction(tx.QueryRow(ctx, query,
		accountID, currency, domain.TransactionTypeDeposit, domain.TransactionStatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find pending order for update: %w", err)
	}
	return t, nil
}

// Complete settles a pending order within a transaction.
func (r *OrderRepo) Complete(ctx context.Context, tx pgx.Tx, id uuid.UUID, credited, tokens float64, externalID, method string) error {
	query := `UPDATE transactions SET
		amount = $1, tokens_generated = $2, external_id = $3,
		settlement_method = $4, status = $5, completed_at = NOW()
		WHERE id = $6 AND status = $7`

	tag, err := tx.Exec(ctx, query,
		credited, tokens, externalID, method,
		domain.TransactionStatusCompleted, id, domain.TransactionStatusPending,
	)
	if err != nil {
		return fmt.Errorf("complete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not pending: %s", id)
	}
	return nil
}

// Cancel marks a pending order canceled within a transaction.
func (r *OrderRepo) Cancel(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	query := `UPDATE transactions SET status = $1, completed_at = NOW()
		WHERE id = $2 AND status = $3`

	tag, err := tx.Exec(ctx, query,
		domain.TransactionStatusCanceled, id, domain.TransactionStatusPending)
	if err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not pending: %s", id)
	}
	return nil
}

// CancelStale cancels pending orders created before the cutoff.
func (r *OrderRepo) CancelStale(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE transactions SET status = $1, completed_at = NOW()
		WHERE type = $2 AND status = $3 AND created_at < $4`

	tag, err := r.pool.Exec(ctx, query,
		domain.TransactionStatusCanceled, domain.TransactionTypeDeposit,
		domain.TransactionStatusPending, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("cancel stale orders: %w", err)
	}
	return tag.RowsAffected(), nil
}
