// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegistrationRequest is the body of POST /register.
// Values are forwarded exactly as typed; the server owns validation.
type RegistrationRequest struct {
	// Login is the requested username.
	Login string `json:"login"`

	// Password is the plaintext password chosen by the user.
	Password string `json:"password"`
}

// RegistrationResponse is the body the server returns with a 2xx status.
type RegistrationResponse struct {
	// Message is a human-readable confirmation, e.g. "user created successfully".
	Message string `json:"message"`
}

// ErrorResponse is the body the server returns with a non-2xx status.
type ErrorResponse struct {
	// Detail explains why the registration was rejected.
	Detail string `json:"detail"`
}
