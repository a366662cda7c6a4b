package client

import (
	"errors"
	"fmt"
)

// ErrorCode classifies request failures.
type ErrorCode int

const (
	// ErrCodeInvalidResponse indicates the transport reply could not be
	// translated into a canonical response.
	ErrCodeInvalidResponse ErrorCode = iota
	// ErrCodeTimeout indicates no transport reply arrived within the
	// configured duration.
	ErrCodeTimeout
	// ErrCodeInternal indicates the transport reply was not of the
	// expected shape, signalling a wiring mismatch.
	ErrCodeInternal
	// ErrCodeTransport indicates a transport-level fault (connection
	// refused, DNS failure, protocol error).
	ErrCodeTransport
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeInvalidResponse:
		return "invalid_response"
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeInternal:
		return "internal"
	case ErrCodeTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is a structured request failure with classification.
type Error struct {
	// Code classifies the failure.
	Code ErrorCode
	// StatusCode is the offending transport status code, 0 when the
	// failure is not status-related.
	StatusCode int
	// Message describes the failure.
	Message string
	// Retryable indicates whether the request can be retried. The
	// client performs no retries itself.
	Retryable bool
	// Err is the underlying cause, preserved for diagnostics.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("client: %s (status %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("client: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewInvalidResponseError creates a failure for a transport reply that
// could not be translated.
func NewInvalidResponseError(statusCode int, reason string) *Error {
	return &Error{
		Code:       ErrCodeInvalidResponse,
		StatusCode: statusCode,
		Message:    reason,
		Retryable:  false,
	}
}

// NewTimeoutError creates a failure for a reply that never arrived.
func NewTimeoutError(err error) *Error {
	msg := "no transport reply within the configured timeout"
	if err != nil {
		msg = err.Error()
	}
	return &Error{
		Code:      ErrCodeTimeout,
		Message:   msg,
		Retryable: true,
		Err:       err,
	}
}

// NewInternalError creates a failure for an unexpected reply shape.
func NewInternalError(msg string) *Error {
	return &Error{
		Code:      ErrCodeInternal,
		Message:   msg,
		Retryable: false,
	}
}

// NewTransportError creates a failure wrapping a transport-level fault.
func NewTransportError(err error) *Error {
	return &Error{
		Code:      ErrCodeTransport,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// IsInvalidResponse checks if an error is an invalid-response failure.
func IsInvalidResponse(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInvalidResponse
}

// IsTimeout checks if an error is a timeout failure.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsInternal checks if an error is an internal failure.
func IsInternal(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInternal
}

// IsTransport checks if an error is a transport failure.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTransport
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}
