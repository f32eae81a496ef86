package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Deposit & Reconciliation (DEP) ----

func ErrDuplicateTransaction() *AppError {
	return New("DEP_001", "Transaction already settled", http.StatusConflict)
}

func ErrAccountNotFound() *AppError {
	return New("DEP_002", "Account not found", http.StatusNotFound)
}

func ErrOrderAlreadyPending() *AppError {
	return New("DEP_003", "A pending deposit order already exists for this currency", http.StatusConflict)
}

func ErrAmountMismatch(requested, received float64) *AppError {
	return New("DEP_004",
		fmt.Sprintf("Received amount %.2f outside tolerance of requested %.2f", received, requested),
		http.StatusUnprocessableEntity)
}

func ErrNoPendingOrder() *AppError {
	return New("DEP_005", "No pending deposit order for this currency", http.StatusNotFound)
}

func ErrInvalidAmount(message string) *AppError {
	return New("DEP_006", message, http.StatusBadRequest)
}

func ErrUnsupportedCurrency(currency string) *AppError {
	return New("DEP_007", fmt.Sprintf("Unsupported currency %q", currency), http.StatusBadRequest)
}

func ErrPaymentNotClaimable() *AppError {
	return New("DEP_008", "Payment not found or not claimable by this account", http.StatusNotFound)
}

func ErrWalletNotLinked() *AppError {
	return New("DEP_009", "A wallet address must be linked before ordering this currency", http.StatusPreconditionFailed)
}

// ---- Security & Authentication (SEC) ----

func ErrInvalidSecret() *AppError {
	return New("SEC_001", "Invalid authentication secret", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("SEC_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("SEC_003", "Insufficient privileges", http.StatusForbidden)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a DEP_006-style validation error.
func Validation(message string) *AppError {
	return New("DEP_006", message, http.StatusBadRequest)
}
