// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-register/internal/app"
	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/internal/service"
	"github.com/MKhiriev/go-register/models"
)

// RegistrationForm owns a [FormState] and mutates it only through its own
// methods. It is not safe for concurrent use: a single event loop is expected
// to call every method except [RegistrationForm.Send].
type RegistrationForm struct {
	state FormState

	service service.ClientRegistrationService
	logger  *logger.Logger
}

// NewRegistrationForm returns an idle form with empty fields.
func NewRegistrationForm(registrationService service.ClientRegistrationService, log *logger.Logger) *RegistrationForm {
	return &RegistrationForm{
		service: registrationService,
		logger:  log.GetChildLogger("form"),
	}
}

func (f *RegistrationForm) SetLogin(login string) {
	f.state.Login = login
}

func (f *RegistrationForm) SetPassword(password string) {
	f.state.Password = password
}

func (f *RegistrationForm) Login() string    { return f.state.Login }
func (f *RegistrationForm) Password() string { return f.state.Password }
func (f *RegistrationForm) Message() string  { return f.state.Message }
func (f *RegistrationForm) IsError() bool    { return f.state.IsError }
func (f *RegistrationForm) IsLoading() bool  { return f.state.IsLoading }

// State returns a copy of the current state.
func (f *RegistrationForm) State() FormState {
	return f.state
}

// Begin moves the form into the submitting state and returns the request to
// send. Values are taken as typed: whitespace counts as input and nothing is
// trimmed. On error the state is left untouched.
func (f *RegistrationForm) Begin() (models.RegistrationRequest, error) {
	if f.state.IsLoading {
		return models.RegistrationRequest{}, ErrSubmitInProgress
	}
	if f.state.Login == "" {
		return models.RegistrationRequest{}, &RequiredFieldError{Field: FieldLogin}
	}
	if f.state.Password == "" {
		return models.RegistrationRequest{}, &RequiredFieldError{Field: FieldPassword}
	}

	f.state.IsLoading = true
	f.state.Message = ""

	return models.RegistrationRequest{Login: f.state.Login, Password: f.state.Password}, nil
}

// Send performs the network call for req and returns its outcome. It reads
// no form state, so it may run off the event loop. A panic in the service is
// recovered and reported as a transport failure.
func (f *RegistrationForm) Send(ctx context.Context, req models.RegistrationRequest) (outcome models.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error().Str("panic", fmt.Sprint(r)).Msg("registration call panicked")
			outcome = models.TransportErrorOutcome()
		}
	}()

	return f.service.Register(ctx, req.Login, req.Password)
}

// Finish applies the outcome of the submission started by Begin and returns
// the form to idle.
func (f *RegistrationForm) Finish(outcome models.Outcome) {
	defer func() { f.state.IsLoading = false }()

	switch outcome.Kind {
	case models.OutcomeSuccess:
		f.state.Message = app.SuccessPrefix + outcome.Message
		f.state.IsError = false
		f.state.Login = ""
		f.state.Password = ""
	case models.OutcomeApplicationError:
		f.state.Message = app.ErrorPrefix + outcome.Detail
		f.state.IsError = true
	default:
		f.state.Message = app.ErrorPrefix + app.MsgConnectionError
		f.state.IsError = true
	}

	f.logger.Debug().Str("outcome", outcome.Kind.String()).Msg("submission finished")
}

// Submit runs a whole submission synchronously: Begin, Send and Finish. The
// form is idle again when Submit returns, whatever the outcome. An error is
// returned only when the submission was refused before any request was sent.
func (f *RegistrationForm) Submit(ctx context.Context) (models.Outcome, error) {
	req, err := f.Begin()
	if err != nil {
		return models.Outcome{}, err
	}

	outcome := models.TransportErrorOutcome()
	defer func() { f.Finish(outcome) }()

	outcome = f.Send(ctx, req)
	return outcome, nil
}
