// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-register/internal/adapter"
	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/internal/mock"
	"github.com/MKhiriev/go-register/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRegistrationService(t *testing.T) (ClientRegistrationService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientRegistrationService(serverAdapter, logger.Nop()), serverAdapter
}

func TestClientRegistrationService_Register_Success(t *testing.T) {
	// Arrange
	svc, serverAdapter := newTestRegistrationService(t)
	ctx := context.Background()
	serverAdapter.EXPECT().
		Register(ctx, models.RegistrationRequest{Login: "alice", Password: "Secret1!"}).
		Return(models.RegistrationResponse{Message: "User created"}, nil)

	// Act
	got := svc.Register(ctx, "alice", "Secret1!")

	// Assert
	assert.Equal(t, models.OutcomeSuccess, got.Kind)
	assert.Equal(t, "User created", got.Message)
	assert.False(t, got.IsError())
}

func TestClientRegistrationService_Register_ForwardsRawValues(t *testing.T) {
	// Arrange
	svc, serverAdapter := newTestRegistrationService(t)
	serverAdapter.EXPECT().
		Register(gomock.Any(), models.RegistrationRequest{Login: " bob ", Password: "  "}).
		Return(models.RegistrationResponse{Message: "ok"}, nil)

	// Act
	got := svc.Register(context.Background(), " bob ", "  ")

	// Assert
	assert.Equal(t, models.OutcomeSuccess, got.Kind)
}

func TestClientRegistrationService_Register_ApplicationError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		detail string
	}{
		{name: "too short", status: http.StatusBadRequest, detail: "Username too short"},
		{name: "duplicate", status: http.StatusConflict, detail: "Login already exists"},
		{name: "server failure", status: http.StatusInternalServerError, detail: "Internal server error - check logs"},
		{name: "empty detail", status: http.StatusBadRequest, detail: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			svc, serverAdapter := newTestRegistrationService(t)
			appErr := &adapter.ApplicationError{StatusCode: tt.status, Detail: tt.detail}
			serverAdapter.EXPECT().
				Register(gomock.Any(), gomock.Any()).
				Return(models.RegistrationResponse{}, appErr)

			// Act
			got := svc.Register(context.Background(), "ab", "x")

			// Assert
			assert.Equal(t, models.OutcomeApplicationError, got.Kind)
			assert.Equal(t, tt.detail, got.Detail)
			assert.Equal(t, tt.status, got.StatusCode)
			assert.True(t, got.IsError())
		})
	}
}

func TestClientRegistrationService_Register_WrappedApplicationError(t *testing.T) {
	// Arrange
	svc, serverAdapter := newTestRegistrationService(t)
	wrapped := fmt.Errorf("outer: %w", &adapter.ApplicationError{StatusCode: http.StatusConflict, Detail: "Login already exists"})
	serverAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.RegistrationResponse{}, wrapped)

	// Act
	got := svc.Register(context.Background(), "alice", "Secret1!")

	// Assert
	assert.Equal(t, models.OutcomeApplicationError, got.Kind)
	assert.Equal(t, "Login already exists", got.Detail)
}

func TestClientRegistrationService_Register_TransportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "request failed", err: fmt.Errorf("%w: register request: %w", adapter.ErrRequestFailed, errors.New("connection refused"))},
		{name: "decode failed", err: fmt.Errorf("%w: register response: %w", adapter.ErrDecodeResponse, errors.New("invalid character '<'"))},
		{name: "cancelled", err: fmt.Errorf("%w: register request: %w", adapter.ErrRequestFailed, context.Canceled)},
		{name: "unknown", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			svc, serverAdapter := newTestRegistrationService(t)
			serverAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.RegistrationResponse{}, tt.err)

			// Act
			got := svc.Register(context.Background(), "alice", "Secret1!")

			// Assert
			assert.Equal(t, models.OutcomeTransportError, got.Kind)
			assert.Empty(t, got.Detail)
			assert.Zero(t, got.StatusCode)
			assert.NotContains(t, got.Message, "connection refused")
		})
	}
}

func TestNewClientServices(t *testing.T) {
	t.Run("nil adapter", func(t *testing.T) {
		services, err := NewClientServices(nil, logger.Nop())

		require.ErrorIs(t, err, ErrNilAdapter)
		assert.Nil(t, services)
	})

	t.Run("wires registration service", func(t *testing.T) {
		serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))

		services, err := NewClientServices(serverAdapter, logger.Nop())

		require.NoError(t, err)
		require.NotNil(t, services)
		assert.NotNil(t, services.RegistrationService)
	})
}
