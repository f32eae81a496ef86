package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the kind of ledger record.
type TransactionType string

const (
	// TransactionTypeDeposit is a user-initiated deposit order. While
	// pending it is the order the matcher settles signals against; once
	// completed it is the ledger record of that settlement.
	TransactionTypeDeposit TransactionType = "DEPOSIT"
	// TransactionTypeAutoDeposit is a direct credit from an external signal
	// that had no order to satisfy.
	TransactionTypeAutoDeposit TransactionType = "AUTO_DEPOSIT"
	// TransactionTypeAccumulated covers the accumulation flow: a
	// sub-minimum contribution rolled into the pending balance (carries
	// the signal's external id so replays cannot accumulate twice), and
	// the sweep credit of the accumulated total (settlement method
	// "sweep", no external id).
	TransactionTypeAccumulated TransactionType = "ACCUMULATED"
	// TransactionTypeAdminAdjustment is a manual, audited balance mutation.
	TransactionTypeAdminAdjustment TransactionType = "ADMIN_ADJUSTMENT"
)

// TransactionStatus represents the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusRejected  TransactionStatus = "rejected"
	TransactionStatusCanceled  TransactionStatus = "canceled"
)

// Transaction is a row of the ledger. Completed rows are immutable; the pair
// (external id, status=completed) is the idempotency key for settlements.
type Transaction struct {
	ID               uuid.UUID         `json:"id"`
	AccountID        uuid.UUID         `json:"account_id"`
	Type             TransactionType   `json:"type"`
	Currency         Currency          `json:"currency"`
	Amount           float64           `json:"amount"` // Signed credited amount, bonus included
	AmountRequested  float64           `json:"amount_requested,omitempty"`
	EstimatedBonus   float64           `json:"estimated_bonus,omitempty"`
	EstimatedTokens  float64           `json:"estimated_tokens,omitempty"`
	TokensGenerated  float64           `json:"tokens_generated,omitempty"`
	Status           TransactionStatus `json:"status"`
	ExternalID       *string           `json:"external_id,omitempty"`
	SettlementMethod *string           `json:"settlement_method,omitempty"` // Settlement channel; on adjustments, the adjusted balance field
	AdminKey         *string           `json:"admin_key,omitempty"` // Set on admin adjustments
	CreatedAt        time.Time         `json:"created_at"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty"`
}

// IsPending reports whether the transaction is an open deposit order.
func (t *Transaction) IsPending() bool {
	return t.Type == TransactionTypeDeposit && t.Status == TransactionStatusPending
}

// WithinTolerance reports whether a received amount matches this order. The
// band is computed against the requested amount, never the received one, so a
// small order cannot be widened by sending more.
func (t *Transaction) WithinTolerance(received float64) bool {
	return math.Abs(received-t.AmountRequested) <= t.AmountRequested*DepositTolerance
}
