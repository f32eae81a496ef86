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

// SweepServiceImpl implements ports.SweepService.
type SweepServiceImpl struct {
	accountRepo ports.AccountRepository
	orderRepo   ports.OrderRepository
	ledgerRepo  ports.LedgerRepository
	notifier    ports.Notifier
	transactor  ports.DBTransactor
	currencies  domain.Currencies
	orderTTL    time.Duration
	log         zerolog.Logger
}

// NewSweepService creates a new SweepServiceImpl.
func NewSweepService(
	accountRepo ports.AccountRepository,
	orderRepo ports.OrderRepository,
	ledgerRepo ports.LedgerRepository,
	notifier ports.Notifier,
	transactor ports.DBTransactor,
	currencies domain.Currencies,
	orderTTL time.Duration,
	log zerolog.Logger,
) *SweepServiceImpl {
	return &SweepServiceImpl{
		accountRepo: accountRepo,
		orderRepo:   orderRepo,
		ledgerRepo:  ledgerRepo,
		notifier:    notifier,
		transactor:  transactor,
		currencies:  currencies,
		orderTTL:    orderTTL,
		log:         log,
	}
}

// SweepAccumulated credits accounts whose pending balance cleared the
// minimum. Each account is swept in its own transaction so one failure never
// aborts the rest of the run.
func (s *SweepServiceImpl) SweepAccumulated(ctx context.Context) (ports.SweepReport, error) {
	var report ports.SweepReport
	for _, cfg := range s.currencies {
		if !cfg.Accumulates {
			continue
		}
		ids, err := s.accountRepo.ListSweepCandidates(ctx, cfg.Currency, cfg.Minimum)
		if err != nil {
			return report, apperror.InternalError(fmt.Errorf("list candidates: %w", err))
		}
		for _, id := range ids {
			report.Scanned++
			if err := s.sweepAccount(ctx, id, cfg); err != nil {
				report.Failed++
				s.log.Error().Err(err).
					Str("account_id", id.String()).
					Str("currency", string(cfg.Currency)).
					Msg("sweep failed for account")
				continue
			}
			report.Swept++
		}
	}
	s.log.Info().
		Int("scanned", report.Scanned).
		Int("swept", report.Swept).
		Int("failed", report.Failed).
		Msg("accumulation sweep finished")
	return report, nil
}

// sweepAccount converts one account's pending balance into a single credit.
// The threshold is re-checked under the lock because a concurrent settlement
// may have swept it already.
func (s *SweepServiceImpl) sweepAccount(ctx context.Context, id uuid.UUID, cfg domain.CurrencyConfig) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return fmt.Errorf("lock account: %w", err)
	}
	if account == nil {
		return fmt.Errorf("account vanished: %s", id)
	}

	total := account.Pending(cfg.Currency)
	if total < cfg.Minimum {
		return nil
	}

	var bonus float64
	if account.FirstDeposit(cfg.Currency) {
		bonus = cfg.Bonus(total)
		account.ClearFirstDeposit(cfg.Currency)
	}
	tokens := cfg.Tokens(total)
	credited := total + bonus

	now := time.Now().UTC()
	method := SettlementMethodSweep
	entry := &domain.Transaction{
		ID:               uuid.New(),
		AccountID:        account.ID,
		Type:             domain.TransactionTypeAccumulated,
		Currency:         cfg.Currency,
		Amount:           credited,
		EstimatedBonus:   bonus,
		TokensGenerated:  tokens,
		Status:           domain.TransactionStatusCompleted,
		SettlementMethod: &method,
		CreatedAt:        now,
		CompletedAt:      &now,
	}
	if err := s.ledgerRepo.Append(ctx, dbTx, entry); err != nil {
		return fmt.Errorf("append sweep credit: %w", err)
	}

	account.SetPending(cfg.Currency, 0)
	account.AddBalance(cfg.Currency, credited)
	if cfg.Token != domain.TokenNone {
		account.AddTokens(cfg.Token, tokens)
	}
	account.Touch()
	if err := s.accountRepo.UpdateBalances(ctx, dbTx, account); err != nil {
		return fmt.Errorf("credit swept balance: %w", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit sweep: %w", err)
	}

	s.log.Info().
		Str("account_id", account.ID.String()).
		Str("currency", string(cfg.Currency)).
		Float64("total", total).
		Float64("credited", credited).
		Msg("pending balance swept")

	s.notifier.SettlementCompleted(ctx, ports.SettlementEvent{
		AccountID:       account.ID,
		UserKey:         account.UserKey,
		Currency:        cfg.Currency,
		AmountReceived:  total,
		Bonus:           bonus,
		TokensGenerated: tokens,
		Credited:        credited,
		NewBalance:      account.Balance(cfg.Currency),
		Accumulated:     true,
	})
	return nil
}

// ExpireStaleOrders cancels pending orders older than the configured TTL.
func (s *SweepServiceImpl) ExpireStaleOrders(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-s.orderTTL)
	n, err := s.orderRepo.CancelStale(ctx, cutoff)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("expire stale orders: %w", err))
	}
	if n > 0 {
		s.log.Info().Int64("canceled", n).Time("cutoff", cutoff).Msg("stale orders expired")
	}
	return n, nil
}
