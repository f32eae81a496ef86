package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

const accountColumns = `id, user_key, balance_cup, balance_saldo, balance_usdt,
		pending_cup, pending_saldo, pending_usdt,
		first_dep_cup, first_dep_saldo, first_dep_usdt,
		tokens_cws, tokens_cwt, phone, wallet_address, last_active, created_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	a := &domain.Account{}
	err := row.Scan(
		&a.ID, &a.UserKey, &a.BalanceCUP, &a.BalanceSaldo, &a.BalanceUSDT,
		&a.PendingCUP, &a.PendingSaldo, &a.PendingUSDT,
		&a.FirstDepCUP, &a.FirstDepSaldo, &a.FirstDepUSDT,
		&a.TokensCWS, &a.TokensCWT, &a.Phone, &a.WalletAddress,
		&a.LastActive, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new account.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.UserKey, a.BalanceCUP, a.BalanceSaldo, a.BalanceUSDT,
		a.PendingCUP, a.PendingSaldo, a.PendingUSDT,
		a.FirstDepCUP, a.FirstDepSaldo, a.FirstDepUSDT,
		a.TokensCWS, a.TokensCWT, a.Phone, a.WalletAddress,
		a.LastActive, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID fetches an account by its UUID (without locking).
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	a, err := scanAccount(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}
	return a, nil
}

// GetByUserKey fetches an account by its storefront user key.
func (r *AccountRepo) GetByUserKey(ctx context.Context, userKey string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_key = $1`

	a, err := scanAccount(r.pool.QueryRow(ctx, query, userKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by user key: %w", err)
	}
	return a, nil
}

// GetByPhone fetches the account linked to a sender phone.
func (r *AccountRepo) GetByPhone(ctx context.Context, phone string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE phone = $1`

	a, err := scanAccount(r.pool.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by phone: %w", err)
	}
	return a, nil
}

// GetByWallet fetches the account linked to a chain wallet address.
func (r *AccountRepo) GetByWallet(ctx context.Context, wallet string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE wallet_address = $1`

	a, err := scanAccount(r.pool.QueryRow(ctx, query, wallet))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by wallet: %w", err)
	}
	return a, nil
}

// GetByIDForUpdate fetches an account by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *AccountRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`

	a, err := scanAccount(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account for update: %w", err)
	}
	return a, nil
}

// UpdateBalances persists the mutable balance state of a locked account.
func (r *AccountRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, a *domain.Account) error {
	query := `UPDATE accounts SET
		balance_cup = $1, balance_saldo = $2, balance_usdt = $3,
		pending_cup = $4, pending_saldo = $5, pending_usdt = $6,
		first_dep_cup = $7, first_dep_saldo = $8, first_dep_usdt = $9,
		tokens_cws = $10, tokens_cwt = $11, last_active = $12
		WHERE id = $13`

	tag, err := tx.Exec(ctx, query,
		a.BalanceCUP, a.BalanceSaldo, a.BalanceUSDT,
		a.PendingCUP, a.PendingSaldo, a.PendingUSDT,
		a.FirstDepCUP, a.FirstDepSaldo, a.FirstDepUSDT,
		a.TokensCWS, a.TokensCWT, a.LastActive, a.ID,
	)
	if err != nil {
		return fmt.Errorf("update account balances: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %s", a.ID)
	}
	return nil
}

// LinkPhone attaches a sender phone to the account.
func (r *AccountRepo) LinkPhone(ctx context.Context, id uuid.UUID, phone string) error {
	query := `UPDATE accounts SET phone = $1, last_active = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, phone, id)
	if err != nil {
		return fmt.Errorf("link phone: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %s", id)
	}
	return nil
}

// LinkWallet attaches a chain wallet address to the account.
func (r *AccountRepo) LinkWallet(ctx context.Context, id uuid.UUID, wallet string) error {
	query := `UPDATE accounts SET wallet_address = $1, last_active = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, wallet, id)
	if err != nil {
		return fmt.Errorf("link wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %s", id)
	}
	return nil
}

// ListSweepCandidates returns ids of accounts whose pending balance for the
// currency has reached the minimum.
func (r *AccountRepo) ListSweepCandidates(ctx context.Context, currency domain.Currency, minimum float64) ([]uuid.UUID, error) {
	var column string
	switch currency {
	case domain.CurrencyCUP:
		column = "pending_cup"
	case domain.CurrencySaldo:
		column = "pending_saldo"
	case domain.CurrencyUSDT:
		column = "pending_usdt"
	default:
		return nil, fmt.Errorf("unknown currency: %s", currency)
	}

	query := fmt.Sprintf(`SELECT id FROM accounts WHERE %s >= $1 ORDER BY %s DESC`, column, column)

	rows, err := r.pool.Query(ctx, query, minimum)
	if err != nil {
		return nil, fmt.Errorf("list sweep candidates: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan sweep candidate: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sweep candidates: %w", err)
	}
	return ids, nil
}
