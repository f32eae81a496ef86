package domain

import "math"

// Currency identifies one of the wallet currencies.
type Currency string

const (
	CurrencyCUP   Currency = "cup"   // Cuban peso, bank card transfers
	CurrencySaldo Currency = "saldo" // Mobile airtime credit
	CurrencyUSDT  Currency = "usdt"  // USDT over BEP20
)

// TokenKind identifies a loyalty token type.
type TokenKind string

const (
	TokenNone TokenKind = ""
	TokenCWS  TokenKind = "cws" // Accrued by saldo deposits
	TokenCWT  TokenKind = "cwt" // Accrued by USDT deposits
)

// DepositTolerance is the allowed relative deviation between a requested and
// a received amount that still counts as a match. The band is always computed
// against the requested amount.
const DepositTolerance = 0.10

// CurrencyConfig holds the per-currency deposit rules: bonus rate, deposit
// bounds, token accrual formula and whether sub-minimum deposits accumulate.
type CurrencyConfig struct {
	Currency    Currency
	BonusRate   float64 // First-deposit bonus rate
	Minimum     float64 // Smallest amount that settles on its own
	Maximum     float64 // 0 = no cap
	Token       TokenKind
	Accumulates bool // Sub-minimum deposits roll into the pending balance
}

// Bonus returns the first-deposit bonus for the given amount. Whether the
// bonus applies at all (the once-per-currency flag) is the caller's concern.
func (c CurrencyConfig) Bonus(amount float64) float64 {
	return amount * c.BonusRate
}

// Tokens returns the loyalty tokens accrued by a deposit of the given amount.
// CWS is granted in whole steps of 10 per full 100 deposited; CWT accrues
// fractionally at 0.5 per 10 USDT.
func (c CurrencyConfig) Tokens(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	switch c.Token {
	case TokenCWS:
		return math.Floor(amount/100) * 10
	case TokenCWT:
		return amount / 10 * 0.5
	default:
		return 0
	}
}

// WithinBounds reports whether the amount is inside the currency's deposit
// limits.
func (c CurrencyConfig) WithinBounds(amount float64) bool {
	if amount < c.Minimum {
		return false
	}
	if c.Maximum > 0 && amount > c.Maximum {
		return false
	}
	return true
}

// Currencies is the closed set of currency configurations keyed by currency.
type Currencies map[Currency]CurrencyConfig

// DefaultCurrencies returns the standard configuration: 10% bonus for CUP and
// saldo, 5% for USDT; only CUP accumulates sub-minimum deposits.
func DefaultCurrencies() Currencies {
	return Currencies{
		CurrencyCUP: {
			Currency:    CurrencyCUP,
			BonusRate:   0.10,
			Minimum:     1000,
			Maximum:     50000,
			Token:       TokenNone,
			Accumulates: true,
		},
		CurrencySaldo: {
			Currency:  CurrencySaldo,
			BonusRate: 0.10,
			Minimum:   500,
			Token:     TokenCWS,
		},
		CurrencyUSDT: {
			Currency:  CurrencyUSDT,
			BonusRate: 0.05,
			Minimum:   10,
			Token:     TokenCWT,
		},
	}
}

// Valid reports whether the currency is one of the known currencies.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyCUP, CurrencySaldo, CurrencyUSDT:
		return true
	}
	return false
}
