// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-register/internal/logger"
)

// ErrNilUI is returned by [NewApp] when no UI is given.
var ErrNilUI = errors.New("ui is nil")

// UI is the screen the application runs.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNilUI
	}

	return &App{ui: ui, logger: log.GetChildLogger("app")}, nil
}

// Run blocks until the user quits. Cancelling ctx is a normal shutdown.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("client interrupted")
	default:
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
