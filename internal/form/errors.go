// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import "errors"

var (
	// ErrRequiredField is returned when login or password is empty.
	ErrRequiredField = errors.New("required field is empty")

	// ErrSubmitInProgress is returned when a submission is already in flight.
	ErrSubmitInProgress = errors.New("submission already in progress")
)

// RequiredFieldError names the first empty input so the renderer can move
// focus to it.
type RequiredFieldError struct {
	Field Field
}

func (e *RequiredFieldError) Error() string {
	return e.Field.String() + ": " + ErrRequiredField.Error()
}

func (e *RequiredFieldError) Unwrap() error {
	return ErrRequiredField
}
