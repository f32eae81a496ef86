package service

import (
	"context"
	"testing"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type adjustmentTestDeps struct {
	svc         *AdjustmentServiceImpl
	accountRepo *mocks.MockAccountRepository
	ledgerRepo  *mocks.MockLedgerRepository
	notifier    *mocks.MockNotifier
	transactor  *mocks.MockDBTransactor
	ctrl        *gomock.Controller
}

func setupAdjustmentService(t *testing.T) *adjustmentTestDeps {
	ctrl := gomock.NewController(t)
	d := &adjustmentTestDeps{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		ledgerRepo:  mocks.NewMockLedgerRepository(ctrl),
		notifier:    mocks.NewMockNotifier(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewAdjustmentService(
		d.accountRepo, d.ledgerRepo, d.notifier, d.transactor, zerolog.Nop(),
	)
	return d
}

func TestAdjustmentService_AddCurrency(t *testing.T) {
	d := setupAdjustmentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	account := domain.NewAccount("tg:42")
	account.BalanceCUP = 500

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, account.ID).Return(account, nil)
	d.ledgerRepo.EXPECT().Append(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ interface{}, entry *domain.Transaction) error {
			assert.Equal(t, domain.TransactionTypeAdminAdjustment, entry.Type)
			assert.Equal(t, float64(250), entry.Amount)
			require.NotNil(t, entry.AdminKey)
			assert.Equal(t, "admin-1", *entry.AdminKey)
			require.NotNil(t, entry.SettlementMethod)
			assert.Equal(t, string(domain.CurrencyCUP), *entry.SettlementMethod)
			return nil
		})
	d.accountRepo.EXPECT().UpdateBalances(ctx, tx, account).Return(nil)
	d.notifier.EXPECT().AdminAdjusted(ctx, gomock.Any())

	entry, err := d.svc.Adjust(ctx, ports.AdjustmentRequest{
		AccountID: account.ID,
		AdminKey:  "admin-1",
		Currency:  domain.CurrencyCUP,
		Amount:    250,
		Direction: ports.AdjustmentAdd,
	})
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, float64(750), account.BalanceCUP)
}

func TestAdjustmentService_RemoveClampsAtZero(t *testing.T) {
	d := setupAdjustmentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	account := domain.NewAccount("tg:42")
	account.BalanceSaldo = 300

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, account.ID).Return(account, nil)
	d.ledgerRepo.EXPECT().Append(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ interface{}, entry *domain.Transaction) error {
			assert.Equal(t, float64(-300), entry.Amount, "ledger records what was actually removed")
			return nil
		})
	d.accountRepo.EXPECT().UpdateBalances(ctx, tx, account).Return(nil)
	d.notifier.EXPECT().AdminAdjusted(ctx, gomock.Any()).
		Do(func(_ context.Context, ev ports.AdjustmentEvent) {
			assert.Equal(t, float64(-300), ev.Applied)
			assert.Equal(t, float64(0), ev.NewValue)
		})

	_, err := d.svc.Adjust(ctx, ports.AdjustmentRequest{
		AccountID: account.ID,
		AdminKey:  "admin-1",
		Currency:  domain.CurrencySaldo,
		Amount:    1000,
		Direction: ports.AdjustmentRemove,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(0), account.BalanceSaldo)
}

func TestAdjustmentService_AdjustTokens(t *testing.T) {
	d := setupAdjustmentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	account := domain.NewAccount("tg:42")
	account.TokensCWS = 20

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, account.ID).Return(account, nil)
	d.ledgerRepo.EXPECT().Append(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ interface{}, entry *domain.Transaction) error {
			// Token rows carry no currency, so the row itself must name
			// which token balance moved.
			assert.Empty(t, entry.Currency)
			require.NotNil(t, entry.SettlementMethod)
			assert.Equal(t, string(domain.TokenCWS), *entry.SettlementMethod)
			return nil
		})
	d.accountRepo.EXPECT().UpdateBalances(ctx, tx, account).Return(nil)
	d.notifier.EXPECT().AdminAdjusted(ctx, gomock.Any())

	entry, err := d.svc.Adjust(ctx, ports.AdjustmentRequest{
		AccountID: account.ID,
		AdminKey:  "admin-1",
		Token:     domain.TokenCWS,
		Amount:    5,
		Direction: ports.AdjustmentAdd,
	})
	require.NoError(t, err)
	require.NotNil(t, entry.SettlementMethod)
	assert.Equal(t, string(domain.TokenCWS), *entry.SettlementMethod)
	assert.Equal(t, float64(25), account.TokensCWS)
}

func TestAdjustmentService_Validation(t *testing.T) {
	d := setupAdjustmentService(t)
	defer d.ctrl.Finish()

	accountID := uuid.New()
	tests := []struct {
		name string
		req  ports.AdjustmentRequest
		code string
	}{
		{
			name: "zero amount",
			req:  ports.AdjustmentRequest{AccountID: accountID, Currency: domain.CurrencyCUP, Amount: 0, Direction: ports.AdjustmentAdd},
			code: "DEP_006",
		},
		{
			name: "bad direction",
			req:  ports.AdjustmentRequest{AccountID: accountID, Currency: domain.CurrencyCUP, Amount: 10, Direction: "set"},
			code: "DEP_006",
		},
		{
			name: "neither currency nor token",
			req:  ports.AdjustmentRequest{AccountID: accountID, Amount: 10, Direction: ports.AdjustmentAdd},
			code: "DEP_006",
		},
		{
			name: "both currency and token",
			req:  ports.AdjustmentRequest{AccountID: accountID, Currency: domain.CurrencyCUP, Token: domain.TokenCWS, Amount: 10, Direction: ports.AdjustmentAdd},
			code: "DEP_006",
		},
		{
			name: "unknown currency",
			req:  ports.AdjustmentRequest{AccountID: accountID, Currency: "eur", Amount: 10, Direction: ports.AdjustmentAdd},
			code: "DEP_007",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := d.svc.Adjust(context.Background(), tt.req)
			assert.Nil(t, entry)
			assertAppError(t, err, tt.code)
		})
	}
}

func TestAdjustmentService_AccountNotFound(t *testing.T) {
	d := setupAdjustmentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	id := uuid.New()

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(nil, nil)

	entry, err := d.svc.Adjust(ctx, ports.AdjustmentRequest{
		AccountID: id, AdminKey: "admin-1", Currency: domain.CurrencyCUP,
		Amount: 10, Direction: ports.AdjustmentAdd,
	})
	assert.Nil(t, entry)
	assertAppError(t, err, "DEP_002")
}
