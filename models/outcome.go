// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OutcomeKind discriminates the terminal result of a registration attempt.
type OutcomeKind int

const (
	// OutcomeSuccess means the server answered with a 2xx status and a
	// decodable [RegistrationResponse].
	OutcomeSuccess OutcomeKind = iota

	// OutcomeApplicationError means the server answered with a non-2xx status
	// and a decodable [ErrorResponse].
	OutcomeApplicationError

	// OutcomeTransportError means the request never completed or the response
	// body could not be decoded.
	OutcomeTransportError
)

// String returns the lower-case name of the kind, used in log fields.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeApplicationError:
		return "application_error"
	case OutcomeTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Outcome is the result of exactly one registration attempt. Only the fields
// belonging to Kind are populated.
type Outcome struct {
	Kind OutcomeKind

	// Message is set for OutcomeSuccess.
	Message string

	// Detail and StatusCode are set for OutcomeApplicationError.
	Detail     string
	StatusCode int
}

// SuccessOutcome builds an [OutcomeSuccess] from the server response.
func SuccessOutcome(resp RegistrationResponse) Outcome {
	return Outcome{Kind: OutcomeSuccess, Message: resp.Message}
}

// ApplicationErrorOutcome builds an [OutcomeApplicationError].
func ApplicationErrorOutcome(statusCode int, detail string) Outcome {
	return Outcome{Kind: OutcomeApplicationError, Detail: detail, StatusCode: statusCode}
}

// TransportErrorOutcome builds an [OutcomeTransportError].
func TransportErrorOutcome() Outcome {
	return Outcome{Kind: OutcomeTransportError}
}

// IsError reports whether the outcome should be displayed as an error.
func (o Outcome) IsError() bool {
	return o.Kind != OutcomeSuccess
}
