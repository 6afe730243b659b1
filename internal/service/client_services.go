// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-register/internal/adapter"
	"github.com/MKhiriev/go-register/internal/logger"
)

// ErrNilAdapter is returned when the services are built without a transport.
var ErrNilAdapter = errors.New("server adapter is nil")

type ClientServices struct {
	RegistrationService ClientRegistrationService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, log *logger.Logger) (*ClientServices, error) {
	if serverAdapter == nil {
		return nil, ErrNilAdapter
	}

	return &ClientServices{
		RegistrationService: NewClientRegistrationService(serverAdapter, log),
	}, nil
}
