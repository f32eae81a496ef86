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
	"github.com/google/uuid"
)

// AdminHandler handles the operator endpoints.
type AdminHandler struct {
	adjustmentSvc ports.AdjustmentService
	signalSvc     ports.SignalService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adjustmentSvc ports.AdjustmentService, signalSvc ports.SignalService) *AdminHandler {
	return &AdminHandler{adjustmentSvc: adjustmentSvc, signalSvc: signalSvc}
}

// Adjust handles POST /api/v1/admin/adjustments.
func (h *AdminHandler) Adjust(c *gin.Context) {
	var req dto.AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	entry, err := h.adjustmentSvc.Adjust(c.Request.Context(), ports.AdjustmentRequest{
		AccountID: accountID,
		Currency:  domain.Currency(req.Currency),
		Token:     domain.TokenKind(req.Token),
		Amount:    req.Amount,
		Direction: ports.AdjustmentDirection(req.Direction),
		AdminKey:  c.GetString(middleware.CtxAdminSubject),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toLedgerEntryResponse(entry))
}

// ListUnmatched handles GET /api/v1/admin/unmatched?limit=100.
func (h *AdminHandler) ListUnmatched(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	payments, err := h.signalSvc.ListUnclaimed(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.UnmatchedPaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, dto.UnmatchedPaymentResponse{
			ID:                p.ID.String(),
			Phone:             p.Phone,
			Amount:            p.Amount,
			Currency:          string(p.Currency),
			ExternalID:        p.ExternalID,
			NeedsVerification: p.NeedsVerification,
			CreatedAt:         p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	response.OK(c, items)
}
