// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-register/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientRegistrationService defines the client-side contract for creating an
// account on the registration server.
type ClientRegistrationService interface {
	// Register submits login and password exactly as given and reports the
	// terminal result of that single attempt. It never returns an error: every
	// failure is folded into the returned [models.Outcome].
	Register(ctx context.Context, login, password string) models.Outcome
}
