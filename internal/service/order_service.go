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

// OrderServiceImpl implements ports.OrderService. At most one pending order
// exists per (account, currency); the check runs under the account lock so
// two concurrent creates cannot both pass it.
type OrderServiceImpl struct {
	accountRepo ports.AccountRepository
	orderRepo   ports.OrderRepository
	notifier    ports.Notifier
	transactor  ports.DBTransactor
	currencies  domain.Currencies
	log         zerolog.Logger
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(
	accountRepo ports.AccountRepository,
	orderRepo ports.OrderRepository,
	notifier ports.Notifier,
	transactor ports.DBTransactor,
	currencies domain.Currencies,
	log zerolog.Logger,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		accountRepo: accountRepo,
		orderRepo:   orderRepo,
		notifier:    notifier,
		transactor:  transactor,
		currencies:  currencies,
		log:         log,
	}
}

// Create opens a new pending deposit order.
func (s *OrderServiceImpl) Create(ctx context.Context, req ports.OrderRequest) (*domain.Transaction, error) {
	cfg, ok := s.currencies[req.Currency]
	if !ok {
		return nil, apperror.ErrUnsupportedCurrency(string(req.Currency))
	}
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount("amount must be positive")
	}
	if req.Amount < cfg.Minimum {
		return nil, apperror.ErrInvalidAmount(
			fmt.Sprintf("minimum deposit for %s is %.2f", cfg.Currency, cfg.Minimum))
	}
	if cfg.Maximum > 0 && req.Amount > cfg.Maximum {
		return nil, apperror.ErrInvalidAmount(
			fmt.Sprintf("maximum deposit for %s is %.2f", cfg.Currency, cfg.Maximum))
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
	// Chain deposits are matched by sender address, so one must be linked
	// before the order can ever settle.
	if req.Currency == domain.CurrencyUSDT && account.WalletAddress == nil {
		return nil, apperror.ErrWalletNotLinked()
	}

	existing, err := s.orderRepo.FindPendingForUpdate(ctx, dbTx, account.ID, req.Currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check pending order: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrOrderAlreadyPending()
	}

	var estBonus float64
	if account.FirstDeposit(req.Currency) {
		estBonus = cfg.Bonus(req.Amount)
	}
	order := &domain.Transaction{
		ID:              uuid.New(),
		AccountID:       account.ID,
		Type:            domain.TransactionTypeDeposit,
		Currency:        req.Currency,
		AmountRequested: req.Amount,
		EstimatedBonus:  estBonus,
		EstimatedTokens: cfg.Tokens(req.Amount),
		Status:          domain.TransactionStatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.orderRepo.Create(ctx, dbTx, order); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create order: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit order: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("account_id", account.ID.String()).
		Str("currency", string(order.Currency)).
		Float64("amount", order.AmountRequested).
		Msg("deposit order created")

	s.notifier.OrderCreated(ctx, ports.OrderEvent{
		OrderID:         order.ID,
		AccountID:       account.ID,
		UserKey:         account.UserKey,
		Currency:        order.Currency,
		AmountRequested: order.AmountRequested,
		EstimatedBonus:  order.EstimatedBonus,
	})
	return order, nil
}

// Cancel cancels the account's pending order for the currency.
func (s *OrderServiceImpl) Cancel(ctx context.Context, accountID uuid.UUID, currency domain.Currency) error {
	if !currency.Valid() {
		return apperror.ErrUnsupportedCurrency(string(currency))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, accountID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return apperror.ErrAccountNotFound()
	}

	order, err := s.orderRepo.FindPendingForUpdate(ctx, dbTx, accountID, currency)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("find pending order: %w", err))
	}
	if order == nil {
		return apperror.ErrNoPendingOrder()
	}

	if err := s.orderRepo.Cancel(ctx, dbTx, order.ID); err != nil {
		return apperror.InternalError(fmt.Errorf("cancel order: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit cancel: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("account_id", accountID.String()).
		Msg("deposit order canceled")
	return nil
}

// FindPending returns the account's open order for the currency.
func (s *OrderServiceImpl) FindPending(ctx context.Context, accountID uuid.UUID, currency domain.Currency) (*domain.Transaction, error) {
	if !currency.Valid() {
		return nil, apperror.ErrUnsupportedCurrency(string(currency))
	}
	order, err := s.orderRepo.FindPending(ctx, accountID, currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find pending order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNoPendingOrder()
	}
	return order, nil
}
