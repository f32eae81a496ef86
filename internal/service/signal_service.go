package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// SettlementMethodSweep marks ledger rows produced by the accumulation sweep.
const SettlementMethodSweep = "sweep"

// SignalServiceImpl implements ports.SignalService: it resolves each external
// payment signal into exactly one outcome, crediting at most once per
// external id.
type SignalServiceImpl struct {
	accountRepo   ports.AccountRepository
	orderRepo     ports.OrderRepository
	ledgerRepo    ports.LedgerRepository
	unmatchedRepo ports.UnmatchedRepository
	settledCache  ports.SettledCache
	notifier      ports.Notifier
	transactor    ports.DBTransactor
	currencies    domain.Currencies
	settledTTL    time.Duration
	log           zerolog.Logger
}

// NewSignalService creates a new SignalServiceImpl.
func NewSignalService(
	accountRepo ports.AccountRepository,
	orderRepo ports.OrderRepository,
	ledgerRepo ports.LedgerRepository,
	unmatchedRepo ports.UnmatchedRepository,
	settledCache ports.SettledCache,
	notifier ports.Notifier,
	transactor ports.DBTransactor,
	currencies domain.Currencies,
	settledTTL time.Duration,
	log zerolog.Logger,
) *SignalServiceImpl {
	return &SignalServiceImpl{
		accountRepo:   accountRepo,
		orderRepo:     orderRepo,
		ledgerRepo:    ledgerRepo,
		unmatchedRepo: unmatchedRepo,
		settledCache:  settledCache,
		notifier:      notifier,
		transactor:    transactor,
		currencies:    currencies,
		settledTTL:    settledTTL,
		log:           log,
	}
}

// NormalizePhone strips formatting characters so SMS sender numbers compare
// equal regardless of how the provider renders them.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))
}

// NormalizeWallet lowercases a chain address for comparison.
func NormalizeWallet(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// Process resolves one external payment signal.
func (s *SignalServiceImpl) Process(ctx context.Context, sig domain.Signal) (*domain.SettlementResult, error) {
	if err := s.validate(sig); err != nil {
		return nil, err
	}

	// Layer 1: cache duplicate check. Errors fall through to the ledger.
	settled, err := s.settledCache.IsSettled(ctx, sig.ExternalID)
	if err != nil {
		s.log.Warn().Err(err).Str("external_id", sig.ExternalID).
			Msg("settled cache check failed, falling through to ledger")
	}
	if settled {
		return s.duplicateResult(sig), nil
	}

	account, err := s.resolveAccount(ctx, sig)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return s.RecordUnmatched(ctx, sig, false)
	}

	return s.settle(ctx, account, sig)
}

// RecordUnmatched stores a signal that could not be tied to an account for a
// later claim. needsVerification marks signals without sender identity.
func (s *SignalServiceImpl) RecordUnmatched(ctx context.Context, sig domain.Signal, needsVerification bool) (*domain.SettlementResult, error) {
	if err := s.validate(sig); err != nil {
		return nil, err
	}

	// Layer 1: cache duplicate check. A parked payment that was claimed and
	// settled leaves no unclaimed row, so the settled guards run here too.
	settled, err := s.settledCache.IsSettled(ctx, sig.ExternalID)
	if err != nil {
		s.log.Warn().Err(err).Str("external_id", sig.ExternalID).
			Msg("settled cache check failed, falling through to ledger")
	}
	if settled {
		return s.duplicateResult(sig), nil
	}

	// A payment already recorded for this external id is a replayed signal.
	existing, err := s.unmatchedRepo.GetUnclaimedByExternalID(ctx, sig.ExternalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check unmatched: %w", err))
	}
	if existing != nil {
		return s.duplicateResult(sig), nil
	}

	// Layer 2: authoritative ledger check, covering claimed-then-settled
	// payments whose cache entry has expired.
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	settledInLedger, err := s.ledgerRepo.ExternalIDSettled(ctx, dbTx, sig.ExternalID)
	dbTx.Rollback(ctx) //nolint:errcheck
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check duplicate: %w", err))
	}
	if settledInLedger {
		s.markSettled(ctx, sig.ExternalID)
		return s.duplicateResult(sig), nil
	}

	p := &domain.UnmatchedPayment{
		ID:                uuid.New(),
		Amount:            sig.Amount,
		Currency:          sig.Currency,
		ExternalID:        sig.ExternalID,
		SettlementMethod:  sig.SettlementMethod,
		NeedsVerification: needsVerification,
		CreatedAt:         time.Now().UTC(),
	}
	if phone := NormalizePhone(sig.Phone); phone != "" {
		p.Phone = &phone
	}

	if err := s.unmatchedRepo.Create(ctx, p); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record unmatched payment: %w", err))
	}

	s.log.Info().
		Str("payment_id", p.ID.String()).
		Str("external_id", p.ExternalID).
		Str("currency", string(p.Currency)).
		Float64("amount", p.Amount).
		Bool("needs_verification", needsVerification).
		Msg("unmatched payment recorded")

	s.notifier.UnmatchedRecorded(ctx, ports.UnmatchedEvent{
		PaymentID:         p.ID,
		Phone:             p.Phone,
		Currency:          p.Currency,
		Amount:            p.Amount,
		ExternalID:        p.ExternalID,
		NeedsVerification: needsVerification,
	})

	return &domain.SettlementResult{
		Outcome:        domain.OutcomeUnmatched,
		Currency:       sig.Currency,
		ExternalID:     sig.ExternalID,
		AmountReceived: sig.Amount,
	}, nil
}

// Claim resolves an open unmatched payment to the claiming account and
// settles it like a direct signal.
func (s *SignalServiceImpl) Claim(ctx context.Context, accountID uuid.UUID, externalID string) (*domain.SettlementResult, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}

	payment, err := s.unmatchedRepo.GetUnclaimedByExternalID(ctx, externalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load unmatched payment: %w", err))
	}
	if payment == nil || !payment.ClaimableBy(account) {
		return nil, apperror.ErrPaymentNotClaimable()
	}

	sig := domain.Signal{
		Amount:           payment.Amount,
		Currency:         payment.Currency,
		ExternalID:       payment.ExternalID,
		SettlementMethod: payment.SettlementMethod,
	}
	result, err := s.settle(ctx, account, sig)
	if err != nil {
		return nil, err
	}

	if result.Outcome == domain.OutcomeSettled || result.Outcome == domain.OutcomeAccumulated {
		if err := s.unmatchedRepo.MarkClaimed(ctx, payment.ID, account.ID); err != nil {
			// The credit is already committed; losing the claim mark only
			// leaves a stale open payment that a replay cannot re-settle.
			s.log.Error().Err(err).
				Str("payment_id", payment.ID.String()).
				Msg("failed to mark payment claimed after settlement")
		}
	}
	return result, nil
}

// ListUnclaimed returns open unmatched payments for admin review.
func (s *SignalServiceImpl) ListUnclaimed(ctx context.Context, limit int) ([]*domain.UnmatchedPayment, error) {
	payments, err := s.unmatchedRepo.ListUnclaimed(ctx, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list unmatched payments: %w", err))
	}
	result := make([]*domain.UnmatchedPayment, len(payments))
	for i := range payments {
		result[i] = &payments[i]
	}
	return result, nil
}

// settle runs the settlement transaction: lock the account, re-check the
// duplicate guard, then either complete a pending order, accumulate, or
// credit directly.
func (s *SignalServiceImpl) settle(ctx context.Context, account *domain.Account, sig domain.Signal) (*domain.SettlementResult, error) {
	cfg, ok := s.currencies[sig.Currency]
	if !ok {
		return nil, apperror.ErrUnsupportedCurrency(string(sig.Currency))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	locked, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, account.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if locked == nil {
		return nil, apperror.ErrAccountNotFound()
	}

	// Layer 2: authoritative duplicate check, atomic with the write.
	settled, err := s.ledgerRepo.ExternalIDSettled(ctx, dbTx, sig.ExternalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check duplicate: %w", err))
	}
	if settled {
		s.markSettled(ctx, sig.ExternalID)
		return s.duplicateResult(sig), nil
	}

	order, err := s.orderRepo.FindPendingForUpdate(ctx, dbTx, locked.ID, sig.Currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find pending order: %w", err))
	}

	var result *domain.SettlementResult
	switch {
	case order != nil && !order.WithinTolerance(sig.Amount):
		// Order stays pending; the payment is not consumed.
		s.notifier.AmountMismatch(ctx, ports.MismatchEvent{
			AccountID:       locked.ID,
			OrderID:         order.ID,
			Currency:        sig.Currency,
			AmountRequested: order.AmountRequested,
			AmountReceived:  sig.Amount,
			ExternalID:      sig.ExternalID,
		})
		s.log.Warn().
			Str("order_id", order.ID.String()).
			Float64("requested", order.AmountRequested).
			Float64("received", sig.Amount).
			Msg("signal amount outside order tolerance")
		return &domain.SettlementResult{
			Outcome:         domain.OutcomeMismatch,
			AccountID:       locked.ID,
			OrderID:         &order.ID,
			Currency:        sig.Currency,
			ExternalID:      sig.ExternalID,
			AmountReceived:  sig.Amount,
			AmountRequested: order.AmountRequested,
		}, nil

	case order != nil:
		result, err = s.settleOrder(ctx, dbTx, locked, order, cfg, sig)

	case cfg.Accumulates && sig.Amount < cfg.Minimum:
		result, err = s.accumulate(ctx, dbTx, locked, sig)

	default:
		result, err = s.autoDeposit(ctx, dbTx, locked, cfg, sig)
	}
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit settlement: %w", err))
	}

	s.markSettled(ctx, sig.ExternalID)
	s.notifyResult(ctx, locked, result)
	return result, nil
}

// settleOrder completes a pending order matched within tolerance. The credit
// is based on the received amount, not the requested one.
func (s *SignalServiceImpl) settleOrder(ctx context.Context, dbTx pgx.Tx, account *domain.Account, order *domain.Transaction, cfg domain.CurrencyConfig, sig domain.Signal) (*domain.SettlementResult, error) {
	var bonus float64
	if account.FirstDeposit(sig.Currency) {
		bonus = cfg.Bonus(sig.Amount)
		account.ClearFirstDeposit(sig.Currency)
	}
	tokens := cfg.Tokens(sig.Amount)
	credited := sig.Amount + bonus

	if err := s.orderRepo.Complete(ctx, dbTx, order.ID, credited, tokens, sig.ExternalID, sig.SettlementMethod); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("complete order: %w", err))
	}

	account.AddBalance(sig.Currency, credited)
	if cfg.Token != domain.TokenNone {
		account.AddTokens(cfg.Token, tokens)
	}
	account.Touch()
	if err := s.accountRepo.UpdateBalances(ctx, dbTx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit balance: %w", err))
	}

	return &domain.SettlementResult{
		Outcome:         domain.OutcomeSettled,
		AccountID:       account.ID,
		OrderID:         &order.ID,
		Currency:        sig.Currency,
		ExternalID:      sig.ExternalID,
		AmountReceived:  sig.Amount,
		Bonus:           bonus,
		TokensGenerated: tokens,
		Credited:        credited,
		NewBalance:      account.Balance(sig.Currency),
	}, nil
}

// accumulate rolls a sub-minimum contribution into the pending balance. The
// ledger row keeps the external id settled so a replay cannot accumulate
// twice; no bonus or tokens accrue until the sweep credits the total.
func (s *SignalServiceImpl) accumulate(ctx context.Context, dbTx pgx.Tx, account *domain.Account, sig domain.Signal) (*domain.SettlementResult, error) {
	now := time.Now().UTC()
	method := sig.SettlementMethod
	extID := sig.ExternalID
	entry := &domain.Transaction{
		ID:               uuid.New(),
		AccountID:        account.ID,
		Type:             domain.TransactionTypeAccumulated,
		Currency:         sig.Currency,
		Amount:           sig.Amount,
		Status:           domain.TransactionStatusCompleted,
		ExternalID:       &extID,
		SettlementMethod: &method,
		CreatedAt:        now,
		CompletedAt:      &now,
	}
	if err := s.ledgerRepo.Append(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append accumulation: %w", err))
	}

	account.SetPending(sig.Currency, account.Pending(sig.Currency)+sig.Amount)
	account.Touch()
	if err := s.accountRepo.UpdateBalances(ctx, dbTx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update pending balance: %w", err))
	}

	return &domain.SettlementResult{
		Outcome:        domain.OutcomeAccumulated,
		AccountID:      account.ID,
		Currency:       sig.Currency,
		ExternalID:     sig.ExternalID,
		AmountReceived: sig.Amount,
		PendingBalance: account.Pending(sig.Currency),
	}, nil
}

// autoDeposit credits a payment that had no order to satisfy.
func (s *SignalServiceImpl) autoDeposit(ctx context.Context, dbTx pgx.Tx, account *domain.Account, cfg domain.CurrencyConfig, sig domain.Signal) (*domain.SettlementResult, error) {
	var bonus float64
	if account.FirstDeposit(sig.Currency) {
		bonus = cfg.Bonus(sig.Amount)
		account.ClearFirstDeposit(sig.Currency)
	}
	tokens := cfg.Tokens(sig.Amount)
	credited := sig.Amount + bonus

	now := time.Now().UTC()
	method := sig.SettlementMethod
	extID := sig.ExternalID
	entry := &domain.Transaction{
		ID:               uuid.New(),
		AccountID:        account.ID,
		Type:             domain.TransactionTypeAutoDeposit,
		Currency:         sig.Currency,
		Amount:           credited,
		EstimatedBonus:   bonus,
		TokensGenerated:  tokens,
		Status:           domain.TransactionStatusCompleted,
		ExternalID:       &extID,
		SettlementMethod: &method,
		CreatedAt:        now,
		CompletedAt:      &now,
	}
	if err := s.ledgerRepo.Append(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append auto deposit: %w", err))
	}

	account.AddBalance(sig.Currency, credited)
	if cfg.Token != domain.TokenNone {
		account.AddTokens(cfg.Token, tokens)
	}
	account.Touch()
	if err := s.accountRepo.UpdateBalances(ctx, dbTx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit balance: %w", err))
	}

	return &domain.SettlementResult{
		Outcome:         domain.OutcomeSettled,
		AccountID:       account.ID,
		Currency:        sig.Currency,
		ExternalID:      sig.ExternalID,
		AmountReceived:  sig.Amount,
		Bonus:           bonus,
		TokensGenerated: tokens,
		Credited:        credited,
		NewBalance:      account.Balance(sig.Currency),
	}, nil
}

func (s *SignalServiceImpl) resolveAccount(ctx context.Context, sig domain.Signal) (*domain.Account, error) {
	if phone := NormalizePhone(sig.Phone); phone != "" {
		account, err := s.accountRepo.GetByPhone(ctx, phone)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("resolve by phone: %w", err))
		}
		return account, nil
	}
	if wallet := NormalizeWallet(sig.WalletAddress); wallet != "" {
		account, err := s.accountRepo.GetByWallet(ctx, wallet)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("resolve by wallet: %w", err))
		}
		return account, nil
	}
	return nil, nil
}

func (s *SignalServiceImpl) validate(sig domain.Signal) error {
	if sig.Amount <= 0 {
		return apperror.ErrInvalidAmount("amount must be positive")
	}
	if !sig.Currency.Valid() {
		return apperror.ErrUnsupportedCurrency(string(sig.Currency))
	}
	if strings.TrimSpace(sig.ExternalID) == "" {
		return apperror.Validation("external id is required")
	}
	return nil
}

func (s *SignalServiceImpl) duplicateResult(sig domain.Signal) *domain.SettlementResult {
	s.log.Info().
		Str("external_id", sig.ExternalID).
		Str("currency", string(sig.Currency)).
		Msg("duplicate signal ignored")
	return &domain.SettlementResult{
		Outcome:        domain.OutcomeDuplicate,
		Currency:       sig.Currency,
		ExternalID:     sig.ExternalID,
		AmountReceived: sig.Amount,
	}
}

// markSettled records the external id in the cache. Best-effort; the ledger
// check stays authoritative.
func (s *SignalServiceImpl) markSettled(ctx context.Context, externalID string) {
	if err := s.settledCache.MarkSettled(ctx, externalID, s.settledTTL); err != nil {
		s.log.Warn().Err(err).Str("external_id", externalID).Msg("failed to cache settled id")
	}
}

func (s *SignalServiceImpl) notifyResult(ctx context.Context, account *domain.Account, result *domain.SettlementResult) {
	switch result.Outcome {
	case domain.OutcomeSettled:
		s.log.Info().
			Str("account_id", account.ID.String()).
			Str("external_id", result.ExternalID).
			Str("currency", string(result.Currency)).
			Float64("credited", result.Credited).
			Float64("bonus", result.Bonus).
			Msg("settlement completed")
		s.notifier.SettlementCompleted(ctx, ports.SettlementEvent{
			AccountID:       account.ID,
			UserKey:         account.UserKey,
			Currency:        result.Currency,
			AmountReceived:  result.AmountReceived,
			Bonus:           result.Bonus,
			TokensGenerated: result.TokensGenerated,
			Credited:        result.Credited,
			NewBalance:      result.NewBalance,
			ExternalID:      result.ExternalID,
		})
	case domain.OutcomeAccumulated:
		s.log.Info().
			Str("account_id", account.ID.String()).
			Str("external_id", result.ExternalID).
			Float64("pending", result.PendingBalance).
			Msg("contribution accumulated")
	}
}
