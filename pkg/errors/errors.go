package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// AuthRequired marks actions attempted without an authenticated user so the
// client can map them to a login prompt instead of a generic failure.
func AuthRequired(message string, err error) *AppError {
	return &AppError{
		Code:    "AUTH_REQUIRED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

// SelfContact rejects a user attempting to open a conversation with
// themselves. Raised before any network write.
func SelfContact(err error) *AppError {
	return &AppError{
		Code:    "SELF_CONTACT",
		Message: "You cannot start a conversation with yourself",
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// SendFailed wraps transport or storage failures while appending a message.
// The write is all-or-nothing; retries are up to the caller.
func SendFailed(message string, err error) *AppError {
	return &AppError{
		Code:    "SEND_FAILED",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

func FetchFailed(message string, err error) *AppError {
	return &AppError{
		Code:    "FETCH_FAILED",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

func ValidationFailed(message string, err error) *AppError {
	return &AppError{
		Code:    "VALIDATION_FAILED",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
