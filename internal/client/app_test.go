// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUI struct {
	err    error
	called bool
}

func (s *stubUI) Run(context.Context) error {
	s.called = true
	return s.err
}

func TestNewApp_NilUI(t *testing.T) {
	app, err := NewApp(nil, logger.Nop())

	require.ErrorIs(t, err, ErrNilUI)
	assert.Nil(t, app)
}

func TestApp_Run(t *testing.T) {
	uiErr := errors.New("terminal gone")

	tests := []struct {
		name    string
		uiErr   error
		wantErr error
	}{
		{name: "user quit", uiErr: nil, wantErr: nil},
		{name: "interrupted", uiErr: fmt.Errorf("run: %w", context.Canceled), wantErr: nil},
		{name: "ui failure", uiErr: uiErr, wantErr: uiErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ui := &stubUI{err: tt.uiErr}
			app, err := NewApp(ui, logger.Nop())
			require.NoError(t, err)

			// Act
			err = app.Run(context.Background())

			// Assert
			assert.True(t, ui.called)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
