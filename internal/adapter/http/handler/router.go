package handler

import (
	"wallet-ledger/config"
	"wallet-ledger/internal/adapter/http/middleware"
	"wallet-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SignalSvc      ports.SignalService
	OrderSvc       ports.OrderService
	AccountSvc     ports.AccountService
	AdjustmentSvc  ports.AdjustmentService
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Ledger         config.LedgerConfig
	SharedSecret   string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep verification of PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	v1 := r.Group("/api/v1")

	shared := middleware.SharedSecret(deps.SharedSecret)
	userKey := middleware.UserKey()

	// --- Signal ingestion (SMS parser, chain watcher) ---
	signalHandler := NewSignalHandler(deps.SignalSvc, deps.Ledger, deps.Logger)
	signals := v1.Group("/signals", shared)
	{
		signals.POST("/sms", signalHandler.IngestSMS)
		signals.POST("/chain", signalHandler.IngestChain)
	}

	// --- Bot routes (shared secret + user key header) ---
	orderHandler := NewOrderHandler(deps.OrderSvc, deps.AccountSvc)
	orders := v1.Group("/orders", shared, userKey)
	{
		orders.POST("", orderHandler.Create)
		orders.DELETE("/:currency", orderHandler.Cancel)
		orders.GET("/pending", orderHandler.GetPending)
	}

	accountHandler := NewAccountHandler(deps.AccountSvc, deps.SignalSvc)
	accounts := v1.Group("/accounts", shared, userKey)
	{
		accounts.POST("", accountHandler.Ensure)
		accounts.GET("/me", accountHandler.Me)
		accounts.POST("/phone", accountHandler.LinkPhone)
		accounts.POST("/wallet", accountHandler.LinkWallet)
		accounts.GET("/ledger", accountHandler.Ledger)
	}
	v1.POST("/claims", shared, userKey, accountHandler.Claim)

	// --- Token issuance (shared secret only) ---
	authHandler := NewAuthHandler(deps.TokenSvc)
	v1.POST("/auth/token", shared, authHandler.IssueToken)

	// --- Admin routes (JWT bearer, admin role) ---
	adminHandler := NewAdminHandler(deps.AdjustmentSvc, deps.SignalSvc)
	admin := v1.Group("/admin", middleware.JWTAuth(deps.TokenSvc), middleware.RequireRole(middleware.RoleAdmin))
	{
		admin.POST("/adjustments", adminHandler.Adjust)
		admin.GET("/unmatched", adminHandler.ListUnmatched)
	}

	return r
}
