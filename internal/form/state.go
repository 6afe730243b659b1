// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

// Field identifies one input of the registration form.
type Field int

const (
	FieldLogin Field = iota
	FieldPassword
)

func (f Field) String() string {
	switch f {
	case FieldLogin:
		return "login"
	case FieldPassword:
		return "password"
	default:
		return "unknown"
	}
}

// FormState is the complete observable state of one registration form.
type FormState struct {
	Login     string
	Password  string
	Message   string
	IsError   bool
	IsLoading bool
}
