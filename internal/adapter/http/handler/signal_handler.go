package handler

import (
	"strings"

	"wallet-ledger/config"
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/internal/service"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SignalHandler ingests payment signals from the SMS parser and the chain
// watcher.
type SignalHandler struct {
	signalSvc ports.SignalService
	ledger    config.LedgerConfig
	log       zerolog.Logger
}

// NewSignalHandler creates a new SignalHandler.
func NewSignalHandler(signalSvc ports.SignalService, ledger config.LedgerConfig, log zerolog.Logger) *SignalHandler {
	return &SignalHandler{signalSvc: signalSvc, ledger: ledger, log: log}
}

// IngestSMS handles POST /api/v1/signals/sms.
func (h *SignalHandler) IngestSMS(c *gin.Context) {
	var req dto.SMSSignalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if !req.Valid {
		h.log.Debug().Str("external_id", req.TransaccionID).Msg("discarding signal flagged invalid by parser")
		response.OK(c, dto.SignalResponse{Outcome: "ignored", ExternalID: req.TransaccionID})
		return
	}

	sig := domain.Signal{
		Phone:            service.NormalizePhone(req.Remitente),
		Amount:           req.Monto,
		ExternalID:       req.TransaccionID,
		SettlementMethod: strings.ToLower(strings.TrimSpace(req.Proveedor)),
	}

	currency, known := h.matchReceptor(req.Receptor)
	sig.Currency = currency
	if !known {
		// The destination cannot be verified, so the payment is parked
		// until someone claims it by external id.
		result, err := h.signalSvc.RecordUnmatched(c.Request.Context(), sig, true)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, toSignalResponse(result))
		return
	}

	result, err := h.signalSvc.Process(c.Request.Context(), sig)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toSignalResponse(result))
}

// IngestChain handles POST /api/v1/signals/chain.
func (h *SignalHandler) IngestChain(c *gin.Context) {
	var req dto.ChainSignalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if !strings.EqualFold(strings.TrimSpace(req.To), h.ledger.USDTAddress) {
		h.log.Debug().Str("tx_hash", req.TxHash).Str("to", req.To).Msg("discarding transfer to foreign address")
		response.OK(c, dto.SignalResponse{Outcome: "ignored", ExternalID: req.TxHash})
		return
	}

	result, err := h.signalSvc.Process(c.Request.Context(), domain.Signal{
		WalletAddress:    req.From,
		Amount:           req.Amount,
		Currency:         domain.CurrencyUSDT,
		ExternalID:       req.TxHash,
		SettlementMethod: "chain",
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toSignalResponse(result))
}

// matchReceptor resolves the destination of an SMS transfer to a currency.
// Masked receptors are matched by their trailing digits when that suffix
// identifies exactly one configured destination.
func (h *SignalHandler) matchReceptor(receptor string) (domain.Currency, bool) {
	r := service.NormalizePhone(receptor)
	if r == "" {
		return domain.CurrencyCUP, false
	}

	for _, card := range h.ledger.Cards {
		if r == service.NormalizePhone(card) {
			return domain.CurrencyCUP, true
		}
	}
	for _, num := range h.ledger.SaldoNumbers {
		if r == service.NormalizePhone(num) {
			return domain.CurrencySaldo, true
		}
	}

	// Masked receptor, e.g. "9224******1234". Match by the visible tail.
	if tail := visibleTail(r); len(tail) >= 4 {
		var match domain.Currency
		count := 0
		for _, card := range h.ledger.Cards {
			if strings.HasSuffix(service.NormalizePhone(card), tail) {
				match = domain.CurrencyCUP
				count++
			}
		}
		for _, num := range h.ledger.SaldoNumbers {
			if strings.HasSuffix(service.NormalizePhone(num), tail) {
				match = domain.CurrencySaldo
				count++
			}
		}
		if count == 1 {
			return match, true
		}
	}
	// Unverifiable destination. CUP is recorded as the working currency for
	// the claim flow; bank transfers dominate this rail.
	return domain.CurrencyCUP, false
}

// visibleTail returns the digits after the last mask character.
func visibleTail(s string) string {
	if i := strings.LastIndexAny(s, "*xX#"); i >= 0 {
		return s[i+1:]
	}
	return ""
}

// toSignalResponse converts a domain.SettlementResult to its DTO.
func toSignalResponse(r *domain.SettlementResult) dto.SignalResponse {
	resp := dto.SignalResponse{
		Outcome:         string(r.Outcome),
		Currency:        string(r.Currency),
		ExternalID:      r.ExternalID,
		AmountReceived:  r.AmountReceived,
		AmountRequested: r.AmountRequested,
		Bonus:           r.Bonus,
		Tokens:          r.TokensGenerated,
		Credited:        r.Credited,
		NewBalance:      r.NewBalance,
		PendingBalance:  r.PendingBalance,
	}
	if r.OrderID != nil {
		s := r.OrderID.String()
		resp.OrderID = &s
	}
	return resp
}
