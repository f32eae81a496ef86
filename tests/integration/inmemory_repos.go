package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.Account
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[uuid.UUID]*domain.Account)}
}

func (r *inMemoryAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.UserKey == a.UserKey {
			return fmt.Errorf("user key already exists")
		}
	}
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *inMemoryAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryAccountRepo) GetByUserKey(ctx context.Context, userKey string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.UserKey == userKey {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAccountRepo) GetByPhone(ctx context.Context, phone string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.Phone != nil && *a.Phone == phone {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAccountRepo) GetByWallet(ctx context.Context, wallet string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.WalletAddress != nil && *a.WalletAddress == wallet {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAccountRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryAccountRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[a.ID]; !ok {
		return fmt.Errorf("account not found")
	}
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *inMemoryAccountRepo) LinkPhone(ctx context.Context, id uuid.UUID, phone string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return fmt.Errorf("account not found")
	}
	a.Phone = &phone
	return nil
}

func (r *inMemoryAccountRepo) LinkWallet(ctx context.Context, id uuid.UUID, wallet string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return fmt.Errorf("account not found")
	}
	a.WalletAddress = &wallet
	return nil
}

func (r *inMemoryAccountRepo) ListSweepCandidates(ctx context.Context, currency domain.Currency, minimum float64) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []uuid.UUID
	for _, a := range r.accounts {
		if a.Pending(currency) >= minimum {
			ids = append(ids, a.ID)
		}
	}
	return ids, nil
}

// --- In-Memory Transactions Store ---

// inMemoryTxStore mirrors the single transactions table: pending DEPOSIT rows
// are orders, completed rows are the ledger. The order and ledger repos share
// it so the duplicate guard sees completed orders too.
type inMemoryTxStore struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]*domain.Transaction
}

func newInMemoryTxStore() *inMemoryTxStore {
	return &inMemoryTxStore{rows: make(map[uuid.UUID]*domain.Transaction)}
}

// --- In-Memory Order Repo ---

type inMemoryOrderRepo struct {
	store *inMemoryTxStore
}

func newInMemoryOrderRepo(store *inMemoryTxStore) *inMemoryOrderRepo {
	return &inMemoryOrderRepo{store: store}
}

func (r *inMemoryOrderRepo) Create(ctx context.Context, tx pgx.Tx, order *domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *order
	r.store.rows[order.ID] = &cp
	return nil
}

func (r *inMemoryOrderRepo) FindPending(ctx context.Context, accountID uuid.UUID, currency domain.Currency) (*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var newest *domain.Transaction
	for _, t := range r.store.rows {
		if t.AccountID != accountID || t.Currency != currency || !t.IsPending() {
			continue
		}
		if newest == nil || t.CreatedAt.After(newest.CreatedAt) {
			newest = t
		}
	}
	if newest == nil {
		return nil, nil
	}
	cp := *newest
	return &cp, nil
}

func (r *inMemoryOrderRepo) FindPendingForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, currency domain.Currency) (*domain.Transaction, error) {
	return r.FindPending(ctx, accountID, currency)
}

func (r *inMemoryOrderRepo) Complete(ctx context.Context, tx pgx.Tx, id uuid.UUID, credited, tokens float64, externalID, method string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	t, ok := r.store.rows[id]
	if !ok {
		return fmt.Errorf("order not found")
	}
	now := time.Now().UTC()
	t.Amount = credited
	t.TokensGenerated = tokens
	t.ExternalID = &externalID
	t.SettlementMethod = &method
	t.Status = domain.TransactionStatusCompleted
	t.CompletedAt = &now
	return nil
}

func (r *inMemoryOrderRepo) Cancel(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	t, ok := r.store.rows[id]
	if !ok {
		return fmt.Errorf("order not found")
	}
	t.Status = domain.TransactionStatusCanceled
	return nil
}

func (r *inMemoryOrderRepo) CancelStale(ctx context.Context, cutoff time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, t := range r.store.rows {
		if t.IsPending() && t.CreatedAt.Before(cutoff) {
			t.Status = domain.TransactionStatusCanceled
			n++
		}
	}
	return n, nil
}

// --- In-Memory Ledger Repo ---

type inMemoryLedgerRepo struct {
	store *inMemoryTxStore
}

func newInMemoryLedgerRepo(store *inMemoryTxStore) *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{store: store}
}

func (r *inMemoryLedgerRepo) Append(ctx context.Context, tx pgx.Tx, entry *domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *entry
	r.store.rows[entry.ID] = &cp
	return nil
}

func (r *inMemoryLedgerRepo) ExternalIDSettled(ctx context.Context, tx pgx.Tx, externalID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, t := range r.store.rows {
		if t.Status == domain.TransactionStatusCompleted && t.ExternalID != nil && *t.ExternalID == externalID {
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryLedgerRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var result []domain.Transaction
	for _, t := range r.store.rows {
		if t.AccountID == accountID {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// --- In-Memory Unmatched Repo ---

type inMemoryUnmatchedRepo struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]*domain.UnmatchedPayment
}

func newInMemoryUnmatchedRepo() *inMemoryUnmatchedRepo {
	return &inMemoryUnmatchedRepo{payments: make(map[uuid.UUID]*domain.UnmatchedPayment)}
}

func (r *inMemoryUnmatchedRepo) Create(ctx context.Context, p *domain.UnmatchedPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *inMemoryUnmatchedRepo) GetUnclaimedByExternalID(ctx context.Context, externalID string) (*domain.UnmatchedPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.payments {
		if !p.Claimed && p.ExternalID == externalID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUnmatchedRepo) MarkClaimed(ctx context.Context, id, accountID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok {
		return fmt.Errorf("payment not found")
	}
	now := time.Now().UTC()
	p.Claimed = true
	p.ClaimedBy = &accountID
	p.ClaimedAt = &now
	return nil
}

func (r *inMemoryUnmatchedRepo) ListUnclaimed(ctx context.Context, limit int) ([]domain.UnmatchedPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.UnmatchedPayment
	for _, p := range r.payments {
		if !p.Claimed {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
