// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-register/internal/adapter"
	"github.com/MKhiriev/go-register/models"
)

// mapAdapterError translates the adapter's error into the outcome shown to
// the user. Only a server-provided detail survives; every other failure
// collapses into a transport outcome.
func mapAdapterError(err error) models.Outcome {
	var appErr *adapter.ApplicationError
	if errors.As(err, &appErr) {
		return models.ApplicationErrorOutcome(appErr.StatusCode, appErr.Detail)
	}

	return models.TransportErrorOutcome()
}
