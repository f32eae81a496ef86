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

func newLedgerEntry(accountID uuid.UUID) *domain.Transaction {
	extID := "BPA777"
	method := "sms_bank"
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Transaction{
		ID:               uuid.New(),
		AccountID:        accountID,
		Type:             domain.TransactionTypeAutoDeposit,
		Currency:         domain.CurrencyCUP,
		Amount:           1100,
		Status:           domain.TransactionStatusCompleted,
		ExternalID:       &extID,
		SettlementMethod: &method,
		CreatedAt:        now,
		CompletedAt:      &now,
	}
}

func TestLedgerRepo_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	entry := newLedgerEntry(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(entry.ID, entry.AccountID, entry.Type, entry.Currency, entry.Amount,
			entry.AmountRequested, entry.EstimatedBonus, entry.EstimatedTokens,
			entry.TokensGenerated, entry.Status, entry.ExternalID,
			entry.SettlementMethod, entry.AdminKey, entry.CreatedAt, entry.CompletedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Append(context.Background(), tx, entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ExternalIDSettled(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("BPA777", domain.TransactionStatusCompleted).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	settled, err := repo.ExternalIDSettled(context.Background(), tx, "BPA777")
	require.NoError(t, err)
	assert.True(t, settled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ExternalIDSettled_Fresh(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("NEW123", domain.TransactionStatusCompleted).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	settled, err := repo.ExternalIDSettled(context.Background(), tx, "NEW123")
	require.NoError(t, err)
	assert.False(t, settled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ListByAccount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	accountID := uuid.New()
	e1 := newLedgerEntry(accountID)
	e2 := newLedgerEntry(accountID)

	rows := pgxmock.NewRows(txRowColumns())
	for _, e := range []*domain.Transaction{e1, e2} {
		rows.AddRow(e.ID, e.AccountID, e.Type, e.Currency, e.Amount, e.AmountRequested,
			e.EstimatedBonus, e.EstimatedTokens, e.TokensGenerated, e.Status,
			e.ExternalID, e.SettlementMethod, e.AdminKey, e.CreatedAt, e.CompletedAt)
	}

	mock.ExpectQuery("SELECT .+ FROM transactions").
		WithArgs(accountID, 10).
		WillReturnRows(rows)

	entries, err := repo.ListByAccount(context.Background(), accountID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, e1.ID, entries[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
