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

// ---- Request input (REQ) ----

func ErrAPIKeyRequired() *AppError {
	return New("REQ_001", "API key is required", http.StatusUnauthorized)
}

func ErrTransactionIDRequired() *AppError {
	return New("REQ_002", "Transaction ID is required", http.StatusBadRequest)
}

// Validation returns a REQ_003 validation error with a caller-supplied message.
func Validation(message string) *AppError {
	return New("REQ_003", message, http.StatusBadRequest)
}

func ErrPayloadTooLarge() *AppError {
	return New("REQ_004", "Request body too large", http.StatusRequestEntityTooLarge)
}

// ---- Merchant authorization (AUTH) ----

func ErrInvalidAPIKey() *AppError {
	return New("AUTH_001", "Invalid API key", http.StatusForbidden)
}

func ErrMerchantInactive() *AppError {
	return New("AUTH_002", "Merchant account is inactive", http.StatusForbidden)
}

func ErrTransactionNotOwned() *AppError {
	return New("AUTH_003", "Transaction does not belong to this merchant", http.StatusForbidden)
}

// ---- Rewards (RWD) ----

func ErrNotFound(entity string) *AppError {
	return New("RWD_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrRewardNotFound() *AppError {
	return New("RWD_002", "No reward found for this transaction", http.StatusNotFound)
}

func ErrRewardInProgress() *AppError {
	return New("RWD_003", "Reward for this transaction is already being processed", http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error. The wrapped error
// is logged, never rendered.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
