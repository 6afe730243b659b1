// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction for talking to the
// registration server.
//
// The abstraction is [ServerAdapter], which decouples the service layer from
// the underlying protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Errors fall in two groups: [*ApplicationError] for non-2xx answers with a
// decodable body (it unwraps to a status sentinel such as [ErrConflict]), and
// transport errors wrapping [ErrRequestFailed] or [ErrDecodeResponse].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-register/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// registration server.
type ServerAdapter interface {
	// Register sends the credentials to the registration endpoint exactly
	// once. It returns the decoded confirmation on a 2xx status, an
	// [*ApplicationError] on a non-2xx status with a decodable body, and a
	// transport error otherwise.
	Register(ctx context.Context, req models.RegistrationRequest) (models.RegistrationResponse, error)
}
