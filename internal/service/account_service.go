package service

import (
	"context"
	"fmt"
	"strings"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// AccountServiceImpl implements ports.AccountService.
type AccountServiceImpl struct {
	accountRepo ports.AccountRepository
	ledgerRepo  ports.LedgerRepository
	log         zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(accountRepo ports.AccountRepository, ledgerRepo ports.LedgerRepository, log zerolog.Logger) *AccountServiceImpl {
	return &AccountServiceImpl{accountRepo: accountRepo, ledgerRepo: ledgerRepo, log: log}
}

// Ensure returns the account for the storefront user key, creating it on
// first interaction.
func (s *AccountServiceImpl) Ensure(ctx context.Context, userKey string) (*domain.Account, error) {
	userKey = strings.TrimSpace(userKey)
	if userKey == "" {
		return nil, apperror.Validation("user key is required")
	}

	account, err := s.accountRepo.GetByUserKey(ctx, userKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if account != nil {
		return account, nil
	}

	account = domain.NewAccount(userKey)
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create account: %w", err))
	}
	s.log.Info().
		Str("account_id", account.ID.String()).
		Str("user_key", userKey).
		Msg("account created")
	return account, nil
}

// Get returns the account for the user key, or a not-found error.
func (s *AccountServiceImpl) Get(ctx context.Context, userKey string) (*domain.Account, error) {
	account, err := s.accountRepo.GetByUserKey(ctx, userKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}
	return account, nil
}

// LinkPhone attaches a sender phone to the account. The phone must not
// already belong to another account.
func (s *AccountServiceImpl) LinkPhone(ctx context.Context, userKey, phone string) (*domain.Account, error) {
	phone = NormalizePhone(phone)
	if phone == "" {
		return nil, apperror.Validation("phone is required")
	}

	account, err := s.Get(ctx, userKey)
	if err != nil {
		return nil, err
	}

	owner, err := s.accountRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check phone owner: %w", err))
	}
	if owner != nil && owner.ID != account.ID {
		return nil, apperror.Validation("phone already linked to another account")
	}

	if err := s.accountRepo.LinkPhone(ctx, account.ID, phone); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("link phone: %w", err))
	}
	account.Phone = &phone
	s.log.Info().
		Str("account_id", account.ID.String()).
		Str("phone", phone).
		Msg("phone linked")
	return account, nil
}

// LinkWallet attaches a chain wallet address to the account.
func (s *AccountServiceImpl) LinkWallet(ctx context.Context, userKey, wallet string) (*domain.Account, error) {
	wallet = NormalizeWallet(wallet)
	if wallet == "" {
		return nil, apperror.Validation("wallet address is required")
	}

	account, err := s.Get(ctx, userKey)
	if err != nil {
		return nil, err
	}

	owner, err := s.accountRepo.GetByWallet(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check wallet owner: %w", err))
	}
	if owner != nil && owner.ID != account.ID {
		return nil, apperror.Validation("wallet already linked to another account")
	}

	if err := s.accountRepo.LinkWallet(ctx, account.ID, wallet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("link wallet: %w", err))
	}
	account.WalletAddress = &wallet
	s.log.Info().
		Str("account_id", account.ID.String()).
		Str("wallet", wallet).
		Msg("wallet linked")
	return account, nil
}

// Ledger returns the account's most recent ledger entries, newest first.
func (s *AccountServiceImpl) Ledger(ctx context.Context, userKey string, limit int) ([]*domain.Transaction, error) {
	account, err := s.Get(ctx, userKey)
	if err != nil {
		return nil, err
	}
	entries, err := s.ledgerRepo.ListByAccount(ctx, account.ID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list ledger: %w", err))
	}
	result := make([]*domain.Transaction, len(entries))
	for i := range entries {
		result[i] = &entries[i]
	}
	return result, nil
}
