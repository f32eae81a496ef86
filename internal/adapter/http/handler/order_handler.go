package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/adapter/http/middleware"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles the deposit order lifecycle.
type OrderHandler struct {
	orderSvc   ports.OrderService
	accountSvc ports.AccountService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderSvc ports.OrderService, accountSvc ports.AccountService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc, accountSvc: accountSvc}
}

// Create handles POST /api/v1/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := h.accountSvc.Ensure(c.Request.Context(), c.GetString(middleware.CtxUserKey))
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderSvc.Create(c.Request.Context(), ports.OrderRequest{
		AccountID: account.ID,
		Currency:  domain.Currency(req.Currency),
		Amount:    req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toOrderResponse(order))
}

// Cancel handles DELETE /api/v1/orders/:currency.
func (h *OrderHandler) Cancel(c *gin.Context) {
	account, err := h.accountSvc.Get(c.Request.Context(), c.GetString(middleware.CtxUserKey))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.orderSvc.Cancel(c.Request.Context(), account.ID, domain.Currency(c.Param("currency"))); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"canceled": true})
}

// GetPending handles GET /api/v1/orders/pending?currency=cup.
func (h *OrderHandler) GetPending(c *gin.Context) {
	account, err := h.accountSvc.Get(c.Request.Context(), c.GetString(middleware.CtxUserKey))
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderSvc.FindPending(c.Request.Context(), account.ID, domain.Currency(c.Query("currency")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toOrderResponse(order))
}

// toOrderResponse converts a domain.Transaction order to its DTO.
func toOrderResponse(tx *domain.Transaction) dto.OrderResponse {
	return dto.OrderResponse{
		ID:              tx.ID.String(),
		Currency:        string(tx.Currency),
		AmountRequested: tx.AmountRequested,
		EstimatedBonus:  tx.EstimatedBonus,
		EstimatedTokens: tx.EstimatedTokens,
		Status:          string(tx.Status),
		CreatedAt:       tx.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
