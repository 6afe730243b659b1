// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing strings shared by the registration
// form and its terminal UI.
package app

const (
	// SuccessPrefix is prepended to the server's confirmation message.
	SuccessPrefix = "✅ "

	// ErrorPrefix is prepended to every error shown to the user.
	ErrorPrefix = "❌ "

	// MsgConnectionError replaces any transport-level failure. The underlying
	// cause is written to the log only.
	MsgConnectionError = "Connection error"

	// MsgRequiredField is shown next to an empty input when submission is
	// refused.
	MsgRequiredField = "Please fill out this field."
)

const (
	// HintUsername describes the username rules enforced by the server.
	HintUsername = "Username: 3-32 chars, a-z 0-9 ._-"

	// HintPassword describes the password rules enforced by the server.
	HintPassword = "Password: 8+ chars, A-Z a-z 0-9 special"
)

const (
	// LabelTitle is the heading of the registration screen.
	LabelTitle = "Register"

	// LabelUsername is the placeholder of the login input.
	LabelUsername = "Username"

	// LabelPassword is the placeholder of the password input.
	LabelPassword = "Password"

	// LabelSubmit is the submit button text while idle.
	LabelSubmit = "Register"

	// LabelSubmitting is the submit button text while a request is in flight.
	LabelSubmitting = "..."
)
