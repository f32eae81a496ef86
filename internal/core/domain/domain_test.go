package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyConfig_Bonus(t *testing.T) {
	cfgs := DefaultCurrencies()

	assert.Equal(t, 100.0, cfgs[CurrencyCUP].Bonus(1000))
	assert.Equal(t, 50.0, cfgs[CurrencySaldo].Bonus(500))
	assert.Equal(t, 1.0, cfgs[CurrencyUSDT].Bonus(20))
}

func TestCurrencyConfig_Tokens(t *testing.T) {
	cfgs := DefaultCurrencies()

	tests := []struct {
		name     string
		currency Currency
		amount   float64
		want     float64
	}{
		{"cup accrues nothing", CurrencyCUP, 5000, 0},
		{"saldo 10 per full 100", CurrencySaldo, 500, 50},
		{"saldo rounds toward zero", CurrencySaldo, 199, 10},
		{"saldo below a full step", CurrencySaldo, 99, 0},
		{"usdt half token per 10", CurrencyUSDT, 20, 1},
		{"usdt fractional", CurrencyUSDT, 15, 0.75},
		{"zero amount", CurrencySaldo, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfgs[tt.currency].Tokens(tt.amount))
		})
	}
}

func TestCurrencyConfig_WithinBounds(t *testing.T) {
	cup := DefaultCurrencies()[CurrencyCUP]

	assert.False(t, cup.WithinBounds(999))
	assert.True(t, cup.WithinBounds(1000))
	assert.True(t, cup.WithinBounds(50000))
	assert.False(t, cup.WithinBounds(50001))

	// No cap configured
	usdt := DefaultCurrencies()[CurrencyUSDT]
	assert.True(t, usdt.WithinBounds(1e9))
}

func TestTransaction_WithinTolerance(t *testing.T) {
	order := &Transaction{Type: TransactionTypeDeposit, AmountRequested: 1000}

	assert.True(t, order.WithinTolerance(950), "5%% under settles")
	assert.True(t, order.WithinTolerance(1100), "exactly +10%% settles")
	assert.True(t, order.WithinTolerance(900), "exactly -10%% settles")
	assert.False(t, order.WithinTolerance(1200), "20%% over does not")
	assert.False(t, order.WithinTolerance(899.99))
}

func TestTransaction_WithinTolerance_BandOnRequested(t *testing.T) {
	// A manipulated small order must not be satisfiable by an arbitrarily
	// larger payment: the band is relative to the requested amount.
	order := &Transaction{Type: TransactionTypeDeposit, AmountRequested: 100}

	assert.True(t, order.WithinTolerance(110))
	assert.False(t, order.WithinTolerance(111))
	assert.False(t, order.WithinTolerance(1000))
}

func TestAccount_BalanceClampsAtZero(t *testing.T) {
	a := NewAccount("user-1")
	a.AddBalance(CurrencyCUP, 500)
	a.AddBalance(CurrencyCUP, -800)

	assert.Equal(t, 0.0, a.Balance(CurrencyCUP))
}

func TestAccount_FirstDepositFlags(t *testing.T) {
	a := NewAccount("user-1")

	assert.True(t, a.FirstDeposit(CurrencyCUP))
	a.ClearFirstDeposit(CurrencyCUP)
	assert.False(t, a.FirstDeposit(CurrencyCUP))
	// Other currencies untouched
	assert.True(t, a.FirstDeposit(CurrencySaldo))
	assert.True(t, a.FirstDeposit(CurrencyUSDT))
}

func TestUnmatchedPayment_ClaimableBy(t *testing.T) {
	phone := "53512345678"
	other := "53598765432"

	owner := NewAccount("owner")
	owner.Phone = &phone
	stranger := NewAccount("stranger")
	stranger.Phone = &other

	withPhone := &UnmatchedPayment{Phone: &phone}
	assert.True(t, withPhone.ClaimableBy(owner))
	assert.False(t, withPhone.ClaimableBy(stranger))

	anonymous := &UnmatchedPayment{NeedsVerification: true}
	assert.True(t, anonymous.ClaimableBy(stranger), "anonymous payments are claimable by external id")

	claimed := &UnmatchedPayment{Phone: &phone, Claimed: true}
	assert.False(t, claimed.ClaimableBy(owner))
}
