package domain

import "github.com/google/uuid"

// Signal is one externally observed payment: an SMS-derived transfer report
// or a blockchain-scan result, normalized by the HTTP layer. Exactly one of
// Phone or WalletAddress identifies the sender; both empty means the sender
// is anonymized and the payment can only be claimed by external id.
type Signal struct {
	Phone            string
	WalletAddress    string
	Amount           float64
	Currency         Currency
	ExternalID       string
	SettlementMethod string
}

// Outcome is the single resolution of a processed signal. Every signal ends
// in exactly one outcome; none silently drops a real payment.
type Outcome string

const (
	// OutcomeSettled: balance credited, one ledger row written.
	OutcomeSettled Outcome = "settled"
	// OutcomeAccumulated: amount rolled into the pending balance, one
	// ACCUMULATED ledger row written.
	OutcomeAccumulated Outcome = "accumulated"
	// OutcomeDuplicate: external id already settled, no state change.
	OutcomeDuplicate Outcome = "duplicate"
	// OutcomeUnmatched: no resolvable account, recorded for later claim.
	OutcomeUnmatched Outcome = "unmatched"
	// OutcomeMismatch: amount outside the order's tolerance band, order
	// stays pending.
	OutcomeMismatch Outcome = "mismatch"
)

// SettlementResult describes how a signal was resolved.
type SettlementResult struct {
	Outcome         Outcome    `json:"outcome"`
	AccountID       uuid.UUID  `json:"account_id,omitempty"`
	OrderID         *uuid.UUID `json:"order_id,omitempty"`
	Currency        Currency   `json:"currency"`
	ExternalID      string     `json:"external_id"`
	AmountReceived  float64    `json:"amount_received"`
	AmountRequested float64    `json:"amount_requested,omitempty"` // Mismatch only
	Bonus           float64    `json:"bonus,omitempty"`
	TokensGenerated float64    `json:"tokens_generated,omitempty"`
	Credited        float64    `json:"credited,omitempty"`
	NewBalance      float64    `json:"new_balance,omitempty"`
	PendingBalance  float64    `json:"pending_balance,omitempty"` // Accumulated only
}
