package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// HeaderSharedSecret authenticates signal webhooks and bot traffic.
	HeaderSharedSecret = "X-Auth-Token"
	// HeaderUserKey identifies the storefront user on bot routes.
	HeaderUserKey = "X-User-Key"

	// Context keys
	CtxUserKey      = "user_key"
	CtxAdminSubject = "admin_subject"
	CtxAdminRole    = "admin_role"

	// RoleAdmin is required for mutating admin endpoints.
	RoleAdmin = "admin"
)

// SharedSecret verifies the shared-secret header on webhook and bot routes.
func SharedSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(HeaderSharedSecret)
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			response.Error(c, apperror.ErrInvalidSecret())
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserKey extracts the storefront user key header and stores it in the
// request context.
func UserKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderUserKey)
		if key == "" {
			response.Error(c, apperror.Validation("missing user key header"))
			c.Abort()
			return
		}
		c.Set(CtxUserKey, key)
		c.Next()
	}
}

// JWTAuth validates admin bearer tokens.
func JWTAuth(tokenSvc ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(authHeader[7:])
		if err != nil {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set(CtxAdminSubject, claims.Subject)
		c.Set(CtxAdminRole, claims.Role)
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose token carries a
// different role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxAdminRole) != role {
			response.Error(c, apperror.ErrForbidden())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the reader returns an error and the
// request is rejected with 413 Payload Too Large.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
