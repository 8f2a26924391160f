package utils

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindStore
	KindCache
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStore:
		return "store"
	case KindCache:
		return "cache"
	default:
		return "internal"
	}
}

type AppError struct {
	Kind    ErrorKind
	Message string
	Details ValidationErrors
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string, details ValidationErrors) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Details: details}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewStoreError(op string, err error) *AppError {
	return &AppError{Kind: KindStore, Message: op, Err: err}
}

func NewCacheError(op string, err error) *AppError {
	return &AppError{Kind: KindCache, Message: op, Err: err}
}

func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

func GetHTTPStatusFromError(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Success   bool             `json:"success"`
	Error     string           `json:"error"`
	Details   ValidationErrors `json:"details,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

func NewErrorResponse(message string, details ValidationErrors) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		Error:     message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// PublicMessage hides store and internal failure detail from clients.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case KindValidation, KindNotFound:
			return appErr.Message
		}
	}
	return "Internal server error"
}
