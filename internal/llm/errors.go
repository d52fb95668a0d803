package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode classifies backend failures.
type ErrorCode string

const (
	ErrTimeout       ErrorCode = "timeout"
	ErrUnauthorized  ErrorCode = "unauthorized"
	ErrRateLimited   ErrorCode = "rate_limited"
	ErrUpstream      ErrorCode = "upstream"
	ErrEmptyResponse ErrorCode = "empty_response"
)

// Error is returned by every Model implementation.
type Error struct {
	Code     ErrorCode
	Provider string
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Provider, e.Code)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsCode reports whether err is an *Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// classify maps a raw client error to an *Error. status is the HTTP status
// when the SDK exposes one, otherwise 0.
func classify(provider string, status int, err error) *Error {
	code := ErrUpstream
	msg := strings.ToLower(err.Error())

	switch {
	case errors.Is(err, context.DeadlineExceeded) || strings.Contains(msg, "timeout"):
		code = ErrTimeout
	case status == http.StatusUnauthorized || status == http.StatusForbidden ||
		strings.Contains(msg, "api_key") || strings.Contains(msg, "api key"):
		code = ErrUnauthorized
	case status == http.StatusTooManyRequests || strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") || strings.Contains(msg, "resource_exhausted"):
		code = ErrRateLimited
	}

	return &Error{Code: code, Provider: provider, Err: err}
}
