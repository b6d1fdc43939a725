// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package archive

import (
	"errors"
	"fmt"
	"time"
)

// NetworkError is a transport level failure -- DNS, connect, TLS handshake.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure fetching %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a remote response with status >= 400.
type HTTPError struct {
	Endpoint string
	Status   int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Endpoint, e.Status)
}

// TimeoutError is raised when no complete response arrives within the
// configured timeout. The in-flight request is aborted.
type TimeoutError struct {
	Endpoint string
	After    time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no response from %s within %s", e.Endpoint, e.After)
}

// ParseError is a response body that is not valid JSON.
type ParseError struct {
	Endpoint string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON from %s: %v", e.Endpoint, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrorContext carries enough detail about a failed operation to build a
// message a human can act on.
type ErrorContext struct {
	Endpoint  string
	Operation string
}

// Friendly wraps a client error with operation context. The taxonomy types
// above remain reachable through errors.As.
func Friendly(err error, ctxErr ErrorContext) error {
	if err == nil {
		return nil
	}

	var (
		netErr     *NetworkError
		httpErr    *HTTPError
		timeoutErr *TimeoutError
		parseErr   *ParseError
	)

	switch {
	case errors.As(err, &timeoutErr):
		return fmt.Errorf("%s: the archive did not answer in time (%s): %w",
			ctxErr.Operation, ctxErr.Endpoint, err)
	case errors.As(err, &httpErr):
		if httpErr.Status == 404 {
			return fmt.Errorf("%s: no such record (%s): %w",
				ctxErr.Operation, ctxErr.Endpoint, err)
		}
		return fmt.Errorf("%s: the archive rejected the request (%s): %w",
			ctxErr.Operation, ctxErr.Endpoint, err)
	case errors.As(err, &parseErr):
		return fmt.Errorf("%s: the archive sent something unreadable (%s): %w",
			ctxErr.Operation, ctxErr.Endpoint, err)
	case errors.As(err, &netErr):
		return fmt.Errorf("%s: could not reach the archive (%s): %w",
			ctxErr.Operation, ctxErr.Endpoint, err)
	default:
		return fmt.Errorf("%s (%s): %w", ctxErr.Operation, ctxErr.Endpoint, err)
	}
}
