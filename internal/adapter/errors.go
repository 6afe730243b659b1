// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels. An [*ApplicationError] unwraps to the one matching its
// status code so callers can use errors.Is without inspecting numbers.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// Transport errors: the request did not produce a usable answer.
var (
	// ErrRequestFailed wraps failures to send the request or read the
	// response (connection refused, DNS, cancelled context, timeout).
	ErrRequestFailed = errors.New("request failed")

	// ErrDecodeResponse is returned when the response body does not decode
	// into the shape expected for its status class.
	ErrDecodeResponse = errors.New("decode response")
)

// ApplicationError is returned when the server answered with a non-2xx status
// and a decodable error body. Detail is the server's message verbatim.
type ApplicationError struct {
	StatusCode int
	Detail     string
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Detail)
}

// Unwrap returns the status sentinel matching StatusCode.
func (e *ApplicationError) Unwrap() error {
	return statusSentinel(e.StatusCode)
}
