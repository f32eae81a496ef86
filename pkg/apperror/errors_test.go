package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("DEP_001", "Transaction already settled", http.StatusConflict),
			expected: "[DEP_001] Transaction already settled",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("DEP_006", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestDepositErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"DuplicateTransaction", ErrDuplicateTransaction(), "DEP_001", 409},
		{"AccountNotFound", ErrAccountNotFound(), "DEP_002", 404},
		{"OrderAlreadyPending", ErrOrderAlreadyPending(), "DEP_003", 409},
		{"AmountMismatch", ErrAmountMismatch(1000, 1200), "DEP_004", 422},
		{"NoPendingOrder", ErrNoPendingOrder(), "DEP_005", 404},
		{"InvalidAmount", ErrInvalidAmount("amount below minimum"), "DEP_006", 400},
		{"UnsupportedCurrency", ErrUnsupportedCurrency("doge"), "DEP_007", 400},
		{"PaymentNotClaimable", ErrPaymentNotClaimable(), "DEP_008", 404},
		{"WalletNotLinked", ErrWalletNotLinked(), "DEP_009", 412},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSecurityErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidSecret", ErrInvalidSecret(), "SEC_001", 401},
		{"InvalidToken", ErrInvalidToken(), "SEC_002", 401},
		{"Forbidden", ErrForbidden(), "SEC_003", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))
}

func TestMismatchMessage(t *testing.T) {
	err := ErrAmountMismatch(1000, 1200)
	assert.Contains(t, err.Message, "1200.00")
	assert.Contains(t, err.Message, "1000.00")
}
