package service

import (
	"context"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AdjustmentServiceImpl implements ports.AdjustmentService. Every adjustment
// writes an ADMIN_ADJUSTMENT ledger row naming the admin who made it;
// removals clamp at zero rather than going negative.
type AdjustmentServiceImpl struct {
	accountRepo ports.AccountRepository
	ledgerRepo  ports.LedgerRepository
	notifier    ports.Notifier
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewAdjustmentService creates a new AdjustmentServiceImpl.
func NewAdjustmentService(
	accountRepo ports.AccountRepository,
	ledgerRepo ports.LedgerRepository,
	notifier ports.Notifier,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *AdjustmentServiceImpl {
	return &AdjustmentServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		notifier:    notifier,
		transactor:  transactor,
		log:         log,
	}
}

// Adjust applies a manual balance mutation to a currency or token balance.
func (s *AdjustmentServiceImpl) Adjust(ctx context.Context, req ports.AdjustmentRequest) (*domain.Transaction, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount("adjustment amount must be positive")
	}
	if req.Direction != ports.AdjustmentAdd && req.Direction != ports.AdjustmentRemove {
		return nil, apperror.Validation("direction must be add or remove")
	}
	haveCurrency := req.Currency != ""
	haveToken := req.Token != domain.TokenNone
	if haveCurrency == haveToken {
		return nil, apperror.Validation("exactly one of currency or token must be set")
	}
	if haveCurrency && !req.Currency.Valid() {
		return nil, apperror.ErrUnsupportedCurrency(string(req.Currency))
	}
	if haveToken && req.Token != domain.TokenCWS && req.Token != domain.TokenCWT {
		return nil, apperror.Validation("unknown token kind")
	}

	delta := req.Amount
	if req.Direction == ports.AdjustmentRemove {
		delta = -req.Amount
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, req.AccountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}

	// Removals clamp at zero, so record the amount actually applied.
	var field string
	var applied, newValue float64
	if haveCurrency {
		field = string(req.Currency)
		before := account.Balance(req.Currency)
		account.AddBalance(req.Currency, delta)
		newValue = account.Balance(req.Currency)
		applied = newValue - before
	} else {
		field = string(req.Token)
		before := account.Tokens(req.Token)
		account.AddTokens(req.Token, delta)
		newValue = account.Tokens(req.Token)
		applied = newValue - before
	}

	now := time.Now().UTC()
	adminKey := req.AdminKey
	// The row records which balance field was adjusted. Token adjustments
	// have no currency, so the field name is the only durable trace of
	// whether CWS or CWT moved.
	adjusted := field
	entry := &domain.Transaction{
		ID:               uuid.New(),
		AccountID:        account.ID,
		Type:             domain.TransactionTypeAdminAdjustment,
		Currency:         req.Currency,
		Amount:           applied,
		Status:           domain.TransactionStatusCompleted,
		SettlementMethod: &adjusted,
		AdminKey:         &adminKey,
		CreatedAt:        now,
		CompletedAt:      &now,
	}
	if err := s.ledgerRepo.Append(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append adjustment: %w", err))
	}

	account.Touch()
	if err := s.accountRepo.UpdateBalances(ctx, dbTx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("apply adjustment: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit adjustment: %w", err))
	}

	s.log.Info().
		Str("account_id", account.ID.String()).
		Str("admin", req.AdminKey).
		Str("field", field).
		Float64("applied", applied).
		Float64("new_value", newValue).
		Msg("admin adjustment applied")

	s.notifier.AdminAdjusted(ctx, ports.AdjustmentEvent{
		AccountID: account.ID,
		AdminKey:  req.AdminKey,
		Field:     field,
		Applied:   applied,
		NewValue:  newValue,
	})
	return entry, nil
}
