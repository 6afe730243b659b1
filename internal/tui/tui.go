// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-register/internal/form"
	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/internal/service"
	"github.com/MKhiriev/go-register/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNilServices is returned by [New] when no services are given.
var ErrNilServices = errors.New("client services are nil")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// programOptions are appended to the defaults; tests use them to run
	// without a terminal.
	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...tea.ProgramOption) (*TUI, error) {
	if services == nil || services.RegistrationService == nil {
		return nil, ErrNilServices
	}

	return &TUI{
		services:       services,
		buildInfo:      buildInfo,
		logger:         log.GetChildLogger("tui"),
		programOptions: opts,
	}, nil
}

// Run shows a fresh registration form and blocks until the user quits or ctx
// is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	registrationForm := form.NewRegistrationForm(t.services.RegistrationService, t.logger)
	model := NewRegisterModel(ctx, registrationForm, t.buildInfo)

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.programOptions...)

	t.logger.Debug().Msg("starting registration screen")
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run registration screen: %w", err)
	}

	return nil
}
