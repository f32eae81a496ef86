package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a custodial wallet: one balance per currency, a per-currency
// first-deposit flag, sub-minimum pending balances and two loyalty token
// balances. Balances never go negative.
type Account struct {
	ID            uuid.UUID `json:"id"`
	UserKey       string    `json:"user_key"` // Opaque storefront user id
	BalanceCUP    float64   `json:"balance_cup"`
	BalanceSaldo  float64   `json:"balance_saldo"`
	BalanceUSDT   float64   `json:"balance_usdt"`
	PendingCUP    float64   `json:"pending_cup"`
	PendingSaldo  float64   `json:"pending_saldo"`
	PendingUSDT   float64   `json:"pending_usdt"`
	FirstDepCUP   bool      `json:"-"`
	FirstDepSaldo bool      `json:"-"`
	FirstDepUSDT  bool      `json:"-"`
	TokensCWS     float64   `json:"tokens_cws"`
	TokensCWT     float64   `json:"tokens_cwt"`
	Phone         *string   `json:"phone,omitempty"`          // Unique across accounts
	WalletAddress *string   `json:"wallet_address,omitempty"` // Unique across accounts
	LastActive    time.Time `json:"last_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewAccount creates an account with all first-deposit bonuses still
// available and zero balances.
func NewAccount(userKey string) *Account {
	now := time.Now().UTC()
	return &Account{
		ID:            uuid.New(),
		UserKey:       userKey,
		FirstDepCUP:   true,
		FirstDepSaldo: true,
		FirstDepUSDT:  true,
		LastActive:    now,
		CreatedAt:     now,
	}
}

// Balance returns the main balance for the given currency.
func (a *Account) Balance(c Currency) float64 {
	switch c {
	case CurrencyCUP:
		return a.BalanceCUP
	case CurrencySaldo:
		return a.BalanceSaldo
	case CurrencyUSDT:
		return a.BalanceUSDT
	}
	return 0
}

// SetBalance overwrites the main balance for the given currency, clamping at
// zero.
func (a *Account) SetBalance(c Currency, v float64) {
	if v < 0 {
		v = 0
	}
	switch c {
	case CurrencyCUP:
		a.BalanceCUP = v
	case CurrencySaldo:
		a.BalanceSaldo = v
	case CurrencyUSDT:
		a.BalanceUSDT = v
	}
}

// AddBalance credits the main balance for the given currency.
func (a *Account) AddBalance(c Currency, v float64) {
	a.SetBalance(c, a.Balance(c)+v)
}

// Pending returns the accumulated sub-minimum balance for the currency.
func (a *Account) Pending(c Currency) float64 {
	switch c {
	case CurrencyCUP:
		return a.PendingCUP
	case CurrencySaldo:
		return a.PendingSaldo
	case CurrencyUSDT:
		return a.PendingUSDT
	}
	return 0
}

// SetPending overwrites the accumulated sub-minimum balance for the currency.
func (a *Account) SetPending(c Currency, v float64) {
	if v < 0 {
		v = 0
	}
	switch c {
	case CurrencyCUP:
		a.PendingCUP = v
	case CurrencySaldo:
		a.PendingSaldo = v
	case CurrencyUSDT:
		a.PendingUSDT = v
	}
}

// FirstDeposit reports whether the first-deposit bonus is still available for
// the currency.
func (a *Account) FirstDeposit(c Currency) bool {
	switch c {
	case CurrencyCUP:
		return a.FirstDepCUP
	case CurrencySaldo:
		return a.FirstDepSaldo
	case CurrencyUSDT:
		return a.FirstDepUSDT
	}
	return false
}

// ClearFirstDeposit marks the first-deposit bonus for the currency as used.
func (a *Account) ClearFirstDeposit(c Currency) {
	switch c {
	case CurrencyCUP:
		a.FirstDepCUP = false
	case CurrencySaldo:
		a.FirstDepSaldo = false
	case CurrencyUSDT:
		a.FirstDepUSDT = false
	}
}

// Tokens returns the balance of the given loyalty token.
func (a *Account) Tokens(k TokenKind) float64 {
	switch k {
	case TokenCWS:
		return a.TokensCWS
	case TokenCWT:
		return a.TokensCWT
	}
	return 0
}

// AddTokens credits the given loyalty token balance, clamping at zero.
func (a *Account) AddTokens(k TokenKind, v float64) {
	switch k {
	case TokenCWS:
		a.TokensCWS += v
		if a.TokensCWS < 0 {
			a.TokensCWS = 0
		}
	case TokenCWT:
		a.TokensCWT += v
		if a.TokensCWT < 0 {
			a.TokensCWT = 0
		}
	}
}

// Touch records account activity.
func (a *Account) Touch() {
	a.LastActive = time.Now().UTC()
}
