package postgres

import (
	"context"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(accountID uuid.UUID) *domain.Transaction {
	return &domain.Transaction{
		ID:              uuid.New(),
		AccountID:       accountID,
		Type:            domain.TransactionTypeDeposit,
		Currency:        domain.CurrencyCUP,
		AmountRequested: 1000,
		EstimatedBonus:  100,
		Status:          domain.TransactionStatusPending,
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}
}

func txRowColumns() []string {
	return []string{
		"id", "account_id", "type", "currency", "amount", "amount_requested",
		"estimated_bonus", "estimated_tokens", "tokens_generated", "status",
		"external_id", "settlement_method", "admin_key", "created_at", "completed_at",
	}
}

func txRow(t *domain.Transaction) *pgxmock.Rows {
	return pgxmock.NewRows(txRowColumns()).AddRow(
		t.ID, t.AccountID, t.Type, t.Currency, t.Amount, t.AmountRequested,
		t.EstimatedBonus, t.EstimatedTokens, t.TokensGenerated, t.Status,
		t.ExternalID, t.SettlementMethod, t.AdminKey, t.CreatedAt, t.CompletedAt,
	)
}

func TestOrderRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	order := newTestOrder(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(order.ID, order.AccountID, order.Type, order.Currency, order.Amount,
			order.AmountRequested, order.EstimatedBonus, order.EstimatedTokens,
			order.TokensGenerated, order.Status, order.ExternalID,
			order.SettlementMethod, order.AdminKey, order.CreatedAt, order.CompletedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, order)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_FindPending(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	order := newTestOrder(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM transactions").
		WithArgs(order.AccountID, order.Currency,
			domain.TransactionTypeDeposit, domain.TransactionStatusPending).
		WillReturnRows(txRow(order))

	result, err := repo.FindPending(context.Background(), order.AccountID, order.Currency)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, order.ID, result.ID)
	assert.True(t, result.IsPending())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_FindPending_None(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	accountID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM transactions").
		WithArgs(accountID, domain.CurrencyUSDT,
			domain.TransactionTypeDeposit, domain.TransactionStatusPending).
		WillReturnRows(pgxmock.NewRows(txRowColumns()))

	result, err := repo.FindPending(context.Background(), accountID, domain.CurrencyUSDT)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_FindPendingForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	order := newTestOrder(uuid.New())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM transactions .+ FOR UPDATE").
		WithArgs(order.AccountID, order.Currency,
			domain.TransactionTypeDeposit, domain.TransactionStatusPending).
		WillReturnRows(txRow(order))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.FindPendingForUpdate(context.Background(), tx, order.AccountID, order.Currency)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, order.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_Complete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	orderID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE transactions SET").
		WithArgs(float64(1045), float64(0), "BPA123456", "sms_bank",
			domain.TransactionStatusCompleted, orderID, domain.TransactionStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Complete(context.Background(), tx, orderID, 1045, 0, "BPA123456", "sms_bank")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_Complete_NotPending(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	orderID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE transactions SET").
		WithArgs(float64(500), float64(0), "X1", "sms_bank",
			domain.TransactionStatusCompleted, orderID, domain.TransactionStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Complete(context.Background(), tx, orderID, 500, 0, "X1", "sms_bank")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "order not pending")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_Cancel(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	orderID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE transactions SET status").
		WithArgs(domain.TransactionStatusCanceled, orderID, domain.TransactionStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Cancel(context.Background(), tx, orderID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_CancelStale(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	cutoff := time.Now().UTC().Add(-time.Hour)

	mock.ExpectExec("UPDATE transactions SET status").
		WithArgs(domain.TransactionStatusCanceled, domain.TransactionTypeDeposit,
			domain.TransactionStatusPending, cutoff).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	n, err := repo.CancelStale(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
