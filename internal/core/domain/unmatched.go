package domain

import (
	"time"

	"github.com/google/uuid"
)

// UnmatchedPayment is an externally observed payment that could not be tied
// to an account or order at signal time. It stays open until a user or admin
// claims it, after which it is processed exactly like a direct signal.
type UnmatchedPayment struct {
	ID               uuid.UUID `json:"id"`
	Phone            *string   `json:"phone,omitempty"` // nil for anonymized senders
	Amount           float64   `json:"amount"`
	Currency         Currency  `json:"currency"`
	ExternalID       string    `json:"external_id"`
	SettlementMethod string    `json:"settlement_method"`
	// NeedsVerification marks payments whose signal carried no sender
	// identity; claiming them requires quoting the external id.
	NeedsVerification bool       `json:"needs_verification"`
	Claimed           bool       `json:"claimed"`
	ClaimedBy         *uuid.UUID `json:"claimed_by,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	ClaimedAt         *time.Time `json:"claimed_at,omitempty"`
}

// ClaimableBy reports whether the given account may claim this payment. A
// payment with a known sender phone belongs to the account linked to that
// phone; payments without sender identity are claimable by whoever quotes the
// external id.
func (p *UnmatchedPayment) ClaimableBy(acct *Account) bool {
	if p.Claimed {
		return false
	}
	if p.Phone == nil {
		return true
	}
	return acct.Phone != nil && *acct.Phone == *p.Phone
}
