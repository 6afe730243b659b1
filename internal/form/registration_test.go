// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/internal/mock"
	"github.com/MKhiriev/go-register/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestForm(t *testing.T) (*RegistrationForm, *mock.MockClientRegistrationService) {
	t.Helper()
	svc := mock.NewMockClientRegistrationService(gomock.NewController(t))
	return NewRegistrationForm(svc, logger.Nop()), svc
}

func filledForm(t *testing.T, login, password string) (*RegistrationForm, *mock.MockClientRegistrationService) {
	t.Helper()
	f, svc := newTestForm(t)
	f.SetLogin(login)
	f.SetPassword(password)
	return f, svc
}

func TestNewRegistrationForm_Idle(t *testing.T) {
	f, _ := newTestForm(t)

	assert.Equal(t, FormState{}, f.State())
}

func TestSubmit_Success(t *testing.T) {
	// Arrange
	f, svc := filledForm(t, "alice", "Secret1!")
	svc.EXPECT().Register(gomock.Any(), "alice", "Secret1!").
		Return(models.SuccessOutcome(models.RegistrationResponse{Message: "User created"}))

	// Act
	outcome, err := f.Submit(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSuccess, outcome.Kind)
	assert.Equal(t, FormState{Message: "✅ User created"}, f.State())
}

func TestSubmit_ApplicationError(t *testing.T) {
	// Arrange
	f, svc := filledForm(t, "ab", "x")
	svc.EXPECT().Register(gomock.Any(), "ab", "x").
		Return(models.ApplicationErrorOutcome(http.StatusBadRequest, "Username too short"))

	// Act
	_, err := f.Submit(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, FormState{
		Login:    "ab",
		Password: "x",
		Message:  "❌ Username too short",
		IsError:  true,
	}, f.State())
}

func TestSubmit_TransportError(t *testing.T) {
	// Arrange
	f, svc := filledForm(t, "alice", "Secret1!")
	svc.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.TransportErrorOutcome())

	// Act
	_, err := f.Submit(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "❌ Connection error", f.Message())
	assert.True(t, f.IsError())
	assert.False(t, f.IsLoading())
	assert.Equal(t, "alice", f.Login())
	assert.Equal(t, "Secret1!", f.Password())
}

func TestSubmit_LoadingOnlyWhileInFlight(t *testing.T) {
	// Arrange
	f, svc := filledForm(t, "alice", "Secret1!")
	f.state.Message = "❌ previous"
	f.state.IsError = true
	svc.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string) models.Outcome {
			assert.True(t, f.IsLoading())
			assert.Empty(t, f.Message())
			return models.SuccessOutcome(models.RegistrationResponse{Message: "ok"})
		})

	// Act
	require.False(t, f.IsLoading())
	_, err := f.Submit(context.Background())

	// Assert
	require.NoError(t, err)
	assert.False(t, f.IsLoading())
	assert.False(t, f.IsError())
}

func TestSubmit_PanicInServiceIsTransportError(t *testing.T) {
	// Arrange
	f, svc := filledForm(t, "alice", "Secret1!")
	svc.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string) models.Outcome { panic("boom") })

	// Act
	var (
		outcome models.Outcome
		err     error
	)
	require.NotPanics(t, func() { outcome, err = f.Submit(context.Background()) })

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeTransportError, outcome.Kind)
	assert.Equal(t, "❌ Connection error", f.Message())
	assert.False(t, f.IsLoading())
}

func TestSubmit_RequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		login     string
		password  string
		wantField Field
	}{
		{name: "both empty", login: "", password: "", wantField: FieldLogin},
		{name: "login empty", login: "", password: "Secret1!", wantField: FieldLogin},
		{name: "password empty", login: "alice", password: "", wantField: FieldPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f, _ := filledForm(t, tt.login, tt.password)
			before := f.State()

			// Act
			_, err := f.Submit(context.Background())

			// Assert
			require.ErrorIs(t, err, ErrRequiredField)
			var fieldErr *RequiredFieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field)
			assert.Equal(t, before, f.State())
		})
	}
}

func TestSubmit_WhitespaceIsAValue(t *testing.T) {
	// Arrange
	f, svc := filledForm(t, " ", "  ")
	svc.EXPECT().Register(gomock.Any(), " ", "  ").
		Return(models.ApplicationErrorOutcome(http.StatusUnprocessableEntity, "Invalid login"))

	// Act
	_, err := f.Submit(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "❌ Invalid login", f.Message())
}

func TestBegin_RefusesWhileLoading(t *testing.T) {
	// Arrange
	f, _ := filledForm(t, "alice", "Secret1!")
	_, err := f.Begin()
	require.NoError(t, err)

	// Act
	_, err = f.Begin()

	// Assert
	require.ErrorIs(t, err, ErrSubmitInProgress)
	assert.True(t, f.IsLoading())
}

func TestBeginSendFinish(t *testing.T) {
	// Arrange
	f, svc := filledForm(t, "alice", "Secret1!")
	svc.EXPECT().Register(gomock.Any(), "alice", "Secret1!").
		Return(models.ApplicationErrorOutcome(http.StatusConflict, "Login already exists"))

	// Act
	req, err := f.Begin()
	require.NoError(t, err)
	assert.True(t, f.IsLoading())
	outcome := f.Send(context.Background(), req)
	f.Finish(outcome)

	// Assert
	assert.Equal(t, models.RegistrationRequest{Login: "alice", Password: "Secret1!"}, req)
	assert.Equal(t, "❌ Login already exists", f.Message())
	assert.False(t, f.IsLoading())
}

func TestFinish_SuccessAfterError(t *testing.T) {
	f, _ := filledForm(t, "alice", "Secret1!")
	f.Finish(models.TransportErrorOutcome())
	require.True(t, f.IsError())

	f.Finish(models.SuccessOutcome(models.RegistrationResponse{Message: "User created"}))

	assert.False(t, f.IsError())
	assert.Equal(t, "✅ User created", f.Message())
	assert.Empty(t, f.Login())
	assert.Empty(t, f.Password())
}

func TestRequiredFieldError_Error(t *testing.T) {
	err := &RequiredFieldError{Field: FieldPassword}

	assert.Equal(t, "password: required field is empty", err.Error())
}
