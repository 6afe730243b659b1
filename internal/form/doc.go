// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form holds the state of the registration form and the submit
// operation that drives it from idle through submitting back to idle.
//
// The form does not know how it is rendered. The terminal UI reads its state
// after every transition and writes user input back through the setters.
package form
