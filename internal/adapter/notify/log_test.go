package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"wallet-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier_EmitsStructuredEvents(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))

	n.SettlementCompleted(context.Background(), ports.SettlementEvent{
		AccountID: uuid.New(),
		Currency:  "cup",
		Credited:  1045,
		Bonus:     95,
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ledger.settlement.completed", entry["event"])
	assert.Equal(t, float64(1045), entry["credited"])
}

func TestLogNotifier_MismatchIsWarning(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))

	n.AmountMismatch(context.Background(), ports.MismatchEvent{
		OrderID:         uuid.New(),
		AmountRequested: 1000,
		AmountReceived:  1200,
		ExternalID:      "BNC-001",
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "BNC-001", entry["external_id"])
}
