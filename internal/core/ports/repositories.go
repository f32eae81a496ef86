package ports

import (
	"context"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepository defines persistence operations for wallet accounts.
// Methods accepting pgx.Tx run inside transaction blocks with the account row
// locked; every balance mutation goes through one of them.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByUserKey(ctx context.Context, userKey string) (*domain.Account, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Account, error)
	GetByWallet(ctx context.Context, wallet string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error)
	// UpdateBalances persists balances, pending balances, first-deposit
	// flags, token balances and last_active of a locked account.
	UpdateBalances(ctx context.Context, tx pgx.Tx, account *domain.Account) error
	LinkPhone(ctx context.Context, id uuid.UUID, phone string) error
	LinkWallet(ctx context.Context, id uuid.UUID, wallet string) error
	// ListSweepCandidates returns ids of accounts whose pending balance for
	// the currency has reached the minimum.
	ListSweepCandidates(ctx context.Context, currency domain.Currency, minimum float64) ([]uuid.UUID, error)
}

// OrderRepository defines persistence for deposit orders (pending DEPOSIT
// transactions).
type OrderRepository interface {
	Create(ctx context.Context, tx pgx.Tx, order *domain.Transaction) error
	// FindPending returns the newest pending order for (account, currency),
	// or nil.
	FindPending(ctx context.Context, accountID uuid.UUID, currency domain.Currency) (*domain.Transaction, error)
	// FindPendingForUpdate is FindPending with the order row locked; must be
	// called inside a transaction holding the account lock.
	FindPendingForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, currency domain.Currency) (*domain.Transaction, error)
	// Complete settles a pending order: records the credited amount, tokens,
	// external id and settlement method, and flips status to completed.
	Complete(ctx context.Context, tx pgx.Tx, id uuid.UUID, credited, tokens float64, externalID, method string) error
	Cancel(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
	// CancelStale cancels pending orders created before the cutoff and
	// returns how many were affected.
	CancelStale(ctx context.Context, cutoff time.Time) (int64, error)
}

// LedgerRepository defines persistence for settled ledger rows.
type LedgerRepository interface {
	// Append inserts one immutable completed ledger row.
	Append(ctx context.Context, tx pgx.Tx, entry *domain.Transaction) error
	// ExternalIDSettled reports whether a completed row with the external id
	// already exists. This is the authoritative duplicate guard and must run
	// inside the transaction that performs the eventual write.
	ExternalIDSettled(ctx context.Context, tx pgx.Tx, externalID string) (bool, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Transaction, error)
}

// UnmatchedRepository defines persistence for unmatched payments.
type UnmatchedRepository interface {
	Create(ctx context.Context, payment *domain.UnmatchedPayment) error
	// GetUnclaimedByExternalID returns the open payment with the external
	// id, or nil.
	GetUnclaimedByExternalID(ctx context.Context, externalID string) (*domain.UnmatchedPayment, error)
	MarkClaimed(ctx context.Context, id, accountID uuid.UUID) error
	ListUnclaimed(ctx context.Context, limit int) ([]domain.UnmatchedPayment, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
