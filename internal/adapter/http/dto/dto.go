package dto

// SMSSignalRequest is the webhook body for a parsed provider SMS.
type SMSSignalRequest struct {
	Proveedor       string  `json:"proveedor" binding:"required"`
	TipoTransaccion string  `json:"tipo_transaccion"`
	Monto           float64 `json:"monto" binding:"required,gt=0"`
	Remitente       string  `json:"remitente"`
	Receptor        string  `json:"receptor" binding:"required"`
	TransaccionID   string  `json:"transaccion_id" binding:"required,max=100"`
	Valid           bool    `json:"valid"`
}

// ChainSignalRequest is the webhook body for an observed chain transfer.
type ChainSignalRequest struct {
	TxHash string  `json:"tx_hash" binding:"required,max=100"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	From   string  `json:"from" binding:"required"`
	To     string  `json:"to" binding:"required"`
}

// SignalResponse reports how a signal was resolved.
type SignalResponse struct {
	Outcome         string  `json:"outcome"`
	Currency        string  `json:"currency,omitempty"`
	ExternalID      string  `json:"external_id,omitempty"`
	OrderID         *string `json:"order_id,omitempty"`
	AmountReceived  float64 `json:"amount_received,omitempty"`
	AmountRequested float64 `json:"amount_requested,omitempty"`
	Bonus           float64 `json:"bonus,omitempty"`
	Tokens          float64 `json:"tokens,omitempty"`
	Credited        float64 `json:"credited,omitempty"`
	NewBalance      float64 `json:"new_balance,omitempty"`
	PendingBalance  float64 `json:"pending_balance,omitempty"`
}

// CreateOrderRequest is the request body for opening a deposit order.
type CreateOrderRequest struct {
	Currency string  `json:"currency" binding:"required,oneof=cup saldo usdt"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

// OrderResponse is the response body for an order.
type OrderResponse struct {
	ID              string  `json:"id"`
	Currency        string  `json:"currency"`
	AmountRequested float64 `json:"amount_requested"`
	EstimatedBonus  float64 `json:"estimated_bonus"`
	EstimatedTokens float64 `json:"estimated_tokens"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

// ClaimRequest is the request body for claiming an unmatched payment.
type ClaimRequest struct {
	ExternalID string `json:"external_id" binding:"required,max=100"`
}

// LinkPhoneRequest is the request body for linking a sender phone.
type LinkPhoneRequest struct {
	Phone string `json:"phone" binding:"required,max=20"`
}

// LinkWalletRequest is the request body for linking a chain wallet.
type LinkWalletRequest struct {
	Address string `json:"address" binding:"required,max=100"`
}

// AccountResponse is the response body for account state.
type AccountResponse struct {
	ID            string  `json:"id"`
	UserKey       string  `json:"user_key"`
	BalanceCUP    float64 `json:"balance_cup"`
	BalanceSaldo  float64 `json:"balance_saldo"`
	BalanceUSDT   float64 `json:"balance_usdt"`
	PendingCUP    float64 `json:"pending_cup"`
	PendingSaldo  float64 `json:"pending_saldo"`
	PendingUSDT   float64 `json:"pending_usdt"`
	TokensCWS     float64 `json:"tokens_cws"`
	TokensCWT     float64 `json:"tokens_cwt"`
	Phone         *string `json:"phone,omitempty"`
	WalletAddress *string `json:"wallet_address,omitempty"`
}

// LedgerEntryResponse is one ledger row in a history listing.
type LedgerEntryResponse struct {
	ID               string  `json:"id"`
	Type             string  `json:"type"`
	Currency         string  `json:"currency,omitempty"`
	Amount           float64 `json:"amount"`
	Bonus            float64 `json:"bonus,omitempty"`
	TokensGenerated  float64 `json:"tokens_generated,omitempty"`
	Status           string  `json:"status"`
	ExternalID       *string `json:"external_id,omitempty"`
	SettlementMethod *string `json:"settlement_method,omitempty"`
	CreatedAt        string  `json:"created_at"`
	CompletedAt      *string `json:"completed_at,omitempty"`
}

// AdjustmentRequest is the admin request body for a manual balance change.
type AdjustmentRequest struct {
	AccountID string  `json:"account_id" binding:"required,uuid"`
	Currency  string  `json:"currency" binding:"omitempty,oneof=cup saldo usdt"`
	Token     string  `json:"token" binding:"omitempty,oneof=cws cwt"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Direction string  `json:"direction" binding:"required,oneof=add remove"`
}

// UnmatchedPaymentResponse is one open unmatched payment.
type UnmatchedPaymentResponse struct {
	ID                string  `json:"id"`
	Phone             *string `json:"phone,omitempty"`
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	ExternalID        string  `json:"external_id"`
	NeedsVerification bool    `json:"needs_verification"`
	CreatedAt         string  `json:"created_at"`
}

// TokenRequest is the request body for issuing an admin token.
type TokenRequest struct {
	Subject string `json:"subject" binding:"required,safe_id,max=50"`
	Role    string `json:"role" binding:"required,oneof=admin viewer"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}
