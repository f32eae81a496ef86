package notify

import (
	"context"

	"wallet-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// LogNotifier writes events to the structured log. Used when no broker is
// configured, typically in development.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) SettlementCompleted(_ context.Context, ev ports.SettlementEvent) {
	n.log.Info().
		Str("event", keySettlementCompleted).
		Str("account_id", ev.AccountID.String()).
		Str("currency", string(ev.Currency)).
		Float64("credited", ev.Credited).
		Float64("bonus", ev.Bonus).
		Bool("accumulated", ev.Accumulated).
		Msg("settlement completed")
}

func (n *LogNotifier) OrderCreated(_ context.Context, ev ports.OrderEvent) {
	n.log.Info().
		Str("event", keyOrderCreated).
		Str("order_id", ev.OrderID.String()).
		Str("currency", string(ev.Currency)).
		Float64("amount", ev.AmountRequested).
		Msg("order created")
}

func (n *LogNotifier) AmountMismatch(_ context.Context, ev ports.MismatchEvent) {
	n.log.Warn().
		Str("event", keySettlementMismatch).
		Str("order_id", ev.OrderID.String()).
		Float64("requested", ev.AmountRequested).
		Float64("received", ev.AmountReceived).
		Str("external_id", ev.ExternalID).
		Msg("amount mismatch")
}

func (n *LogNotifier) UnmatchedRecorded(_ context.Context, ev ports.UnmatchedEvent) {
	n.log.Warn().
		Str("event", keyUnmatchedRecorded).
		Str("payment_id", ev.PaymentID.String()).
		Str("currency", string(ev.Currency)).
		Float64("amount", ev.Amount).
		Str("external_id", ev.ExternalID).
		Bool("needs_verification", ev.NeedsVerification).
		Msg("unmatched payment recorded")
}

func (n *LogNotifier) AdminAdjusted(_ context.Context, ev ports.AdjustmentEvent) {
	n.log.Info().
		Str("event", keyAdminAdjusted).
		Str("account_id", ev.AccountID.String()).
		Str("admin", ev.AdminKey).
		Str("field", ev.Field).
		Float64("applied", ev.Applied).
		Msg("admin adjustment")
}
