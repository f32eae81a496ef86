package handler

import (
	"strconv"

	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/adapter/http/middleware"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles account identity, balances, and claims.
type AccountHandler struct {
	accountSvc ports.AccountService
	signalSvc  ports.SignalService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc ports.AccountService, signalSvc ports.SignalService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc, signalSvc: signalSvc}
}

// Ensure handles POST /api/v1/accounts. Creates the account on first
// interaction, returns the existing one otherwise.
func (h *AccountHandler) Ensure(c *gin.Context) {
	account, err := h.accountSvc.Ensure(c.Request.Context(), c.GetString(middleware.CtxUserKey))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAccountResponse(account))
}

// Me handles GET /api/v1/accounts/me.
func (h *AccountHandler) Me(c *gin.Context) {
	account, err := h.accountSvc.Get(c.Request.Context(), c.GetString(middleware.CtxUserKey))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAccountResponse(account))
}

// LinkPhone handles POST /api/v1/accounts/phone.
func (h *AccountHandler) LinkPhone(c *gin.Context) {
	var req dto.LinkPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := h.accountSvc.LinkPhone(c.Request.Context(), c.GetString(middleware.CtxUserKey), req.Phone)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAccountResponse(account))
}

// LinkWallet handles POST /api/v1/accounts/wallet.
func (h *AccountHandler) LinkWallet(c *gin.Context) {
	var req dto.LinkWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := h.accountSvc.LinkWallet(c.Request.Context(), c.GetString(middleware.CtxUserKey), req.Address)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAccountResponse(account))
}

// Ledger handles GET /api/v1/accounts/ledger?limit=20.
func (h *AccountHandler) Ledger(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, err := h.accountSvc.Ledger(c.Request.Context(), c.GetString(middleware.CtxUserKey), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, toLedgerEntryResponse(e))
	}
	response.OK(c, items)
}

// Claim handles POST /api/v1/claims.
func (h *AccountHandler) Claim(c *gin.Context) {
	var req dto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := h.accountSvc.Get(c.Request.Context(), c.GetString(middleware.CtxUserKey))
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.signalSvc.Claim(c.Request.Context(), account.ID, req.ExternalID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toSignalResponse(result))
}

// toAccountResponse converts a domain.Account to its DTO.
func toAccountResponse(a *domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:            a.ID.String(),
		UserKey:       a.UserKey,
		BalanceCUP:    a.BalanceCUP,
		BalanceSaldo:  a.BalanceSaldo,
		BalanceUSDT:   a.BalanceUSDT,
		PendingCUP:    a.PendingCUP,
		PendingSaldo:  a.PendingSaldo,
		PendingUSDT:   a.PendingUSDT,
		TokensCWS:     a.TokensCWS,
		TokensCWT:     a.TokensCWT,
		Phone:         a.Phone,
		WalletAddress: a.WalletAddress,
	}
}

// toLedgerEntryResponse converts a ledger row to its DTO.
func toLedgerEntryResponse(tx *domain.Transaction) dto.LedgerEntryResponse {
	resp := dto.LedgerEntryResponse{
		ID:               tx.ID.String(),
		Type:             string(tx.Type),
		Currency:         string(tx.Currency),
		Amount:           tx.Amount,
		Bonus:            tx.EstimatedBonus,
		TokensGenerated:  tx.TokensGenerated,
		Status:           string(tx.Status),
		ExternalID:       tx.ExternalID,
		SettlementMethod: tx.SettlementMethod,
		CreatedAt:        tx.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if tx.CompletedAt != nil {
		s := tx.CompletedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.CompletedAt = &s
	}
	return resp
}
