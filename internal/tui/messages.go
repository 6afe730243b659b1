// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-register/models"

// registerResultMsg carries the outcome of the registration request back to
// the event loop.
type registerResultMsg struct {
	outcome models.Outcome
}
