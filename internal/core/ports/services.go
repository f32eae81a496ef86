package ports

import (
	"context"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// SettledCache is the fast-path duplicate guard in front of the
// authoritative ledger check. Best-effort: a cache error never blocks a
// signal, and a miss always falls through to the store.
type SettledCache interface {
	IsSettled(ctx context.Context, externalID string) (bool, error)
	MarkSettled(ctx context.Context, externalID string, ttl time.Duration) error
}

// Notifier delivers settlement outcomes to users and admins. Delivery is
// fire-and-forget: implementations log failures and never propagate them, so
// a notification can never roll back a ledger write.
type Notifier interface {
	SettlementCompleted(ctx context.Context, ev SettlementEvent)
	OrderCreated(ctx context.Context, ev OrderEvent)
	AmountMismatch(ctx context.Context, ev MismatchEvent)
	UnmatchedRecorded(ctx context.Context, ev UnmatchedEvent)
	AdminAdjusted(ctx context.Context, ev AdjustmentEvent)
}

// SettlementEvent describes a completed settlement.
type SettlementEvent struct {
	AccountID       uuid.UUID       `json:"account_id"`
	UserKey         string          `json:"user_key"`
	Currency        domain.Currency `json:"currency"`
	AmountReceived  float64         `json:"amount_received"`
	Bonus           float64         `json:"bonus"`
	TokensGenerated float64         `json:"tokens_generated"`
	Credited        float64         `json:"credited"`
	NewBalance      float64         `json:"new_balance"`
	ExternalID      string          `json:"external_id"`
	Accumulated     bool            `json:"accumulated"` // Swept from the pending balance
}

// OrderEvent describes a newly created deposit order.
type OrderEvent struct {
	OrderID         uuid.UUID       `json:"order_id"`
	AccountID       uuid.UUID       `json:"account_id"`
	UserKey         string          `json:"user_key"`
	Currency        domain.Currency `json:"currency"`
	AmountRequested float64         `json:"amount_requested"`
	EstimatedBonus  float64         `json:"estimated_bonus"`
}

// MismatchEvent describes a signal rejected by the tolerance band.
type MismatchEvent struct {
	AccountID       uuid.UUID       `json:"account_id"`
	OrderID         uuid.UUID       `json:"order_id"`
	Currency        domain.Currency `json:"currency"`
	AmountRequested float64         `json:"amount_requested"`
	AmountReceived  float64         `json:"amount_received"`
	ExternalID      string          `json:"external_id"`
}

// UnmatchedEvent describes a payment recorded for later claiming.
type UnmatchedEvent struct {
	PaymentID         uuid.UUID       `json:"payment_id"`
	Phone             *string         `json:"phone,omitempty"`
	Currency          domain.Currency `json:"currency"`
	Amount            float64         `json:"amount"`
	ExternalID        string          `json:"external_id"`
	NeedsVerification bool            `json:"needs_verification"`
}

// AdjustmentEvent describes a manual balance adjustment.
type AdjustmentEvent struct {
	AccountID uuid.UUID `json:"account_id"`
	AdminKey  string    `json:"admin_key"`
	Field     string    `json:"field"` // Currency or token kind
	Applied   float64   `json:"applied"`
	NewValue  float64   `json:"new_value"`
}

// --- Service Ports (Business Logic) ---

// SignalService is the reconciliation core: it resolves each external signal
// into exactly one outcome.
type SignalService interface {
	Process(ctx context.Context, sig domain.Signal) (*domain.SettlementResult, error)
	// RecordUnmatched stores a signal whose destination could not be
	// verified (masked receptor, unknown card) for a later claim.
	RecordUnmatched(ctx context.Context, sig domain.Signal, needsVerification bool) (*domain.SettlementResult, error)
	// Claim resolves an open unmatched payment to the claiming account and
	// processes it like a direct signal.
	Claim(ctx context.Context, accountID uuid.UUID, externalID string) (*domain.SettlementResult, error)
	// ListUnclaimed returns open unmatched payments for admin review.
	ListUnclaimed(ctx context.Context, limit int) ([]*domain.UnmatchedPayment, error)
}

// OrderService manages the deposit order lifecycle.
type OrderService interface {
	Create(ctx context.Context, req OrderRequest) (*domain.Transaction, error)
	Cancel(ctx context.Context, accountID uuid.UUID, currency domain.Currency) error
	FindPending(ctx context.Context, accountID uuid.UUID, currency domain.Currency) (*domain.Transaction, error)
}

// OrderRequest holds validated input for order creation.
type OrderRequest struct {
	AccountID uuid.UUID
	Currency  domain.Currency
	Amount    float64
}

// AccountService manages account identity: creation on first interaction and
// phone/wallet linking.
type AccountService interface {
	Ensure(ctx context.Context, userKey string) (*domain.Account, error)
	Get(ctx context.Context, userKey string) (*domain.Account, error)
	LinkPhone(ctx context.Context, userKey, phone string) (*domain.Account, error)
	LinkWallet(ctx context.Context, userKey, wallet string) (*domain.Account, error)
	// Ledger returns the account's most recent ledger entries.
	Ledger(ctx context.Context, userKey string, limit int) ([]*domain.Transaction, error)
}

// AdjustmentService performs audited manual balance mutations.
type AdjustmentService interface {
	Adjust(ctx context.Context, req AdjustmentRequest) (*domain.Transaction, error)
}

// AdjustmentDirection indicates whether an adjustment adds or removes funds.
type AdjustmentDirection string

const (
	AdjustmentAdd    AdjustmentDirection = "add"
	AdjustmentRemove AdjustmentDirection = "remove"
)

// AdjustmentRequest holds validated input for a manual adjustment. Exactly
// one of Currency or Token is set.
type AdjustmentRequest struct {
	AccountID uuid.UUID
	Currency  domain.Currency
	Token     domain.TokenKind
	Amount    float64
	Direction AdjustmentDirection
	AdminKey  string
}

// SweepService runs the periodic reconciliation jobs.
type SweepService interface {
	// SweepAccumulated credits accounts whose pending balance cleared the
	// minimum. Failure for one account never aborts the rest.
	SweepAccumulated(ctx context.Context) (SweepReport, error)
	// ExpireStaleOrders cancels pending orders older than the configured
	// TTL and returns how many were canceled.
	ExpireStaleOrders(ctx context.Context) (int64, error)
}

// SweepReport summarizes one accumulation sweep run.
type SweepReport struct {
	Scanned int
	Swept   int
	Failed  int
}

// TokenService issues and validates admin bearer tokens.
type TokenService interface {
	Generate(subject, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed token claims.
type TokenClaims struct {
	Subject string
	Role    string
}
