// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-register/internal/adapter"
	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/models"
)

type clientRegistrationService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientRegistrationService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientRegistrationService {
	return &clientRegistrationService{adapter: serverAdapter, logger: log.GetChildLogger("registration")}
}

func (s *clientRegistrationService) Register(ctx context.Context, login, password string) models.Outcome {
	s.logger.Info().Str("login", login).Msg("registration attempt")

	resp, err := s.adapter.Register(ctx, models.RegistrationRequest{Login: login, Password: password})
	if err != nil {
		outcome := mapAdapterError(err)
		s.logOutcome(login, outcome, err)
		return outcome
	}

	outcome := models.SuccessOutcome(resp)
	s.logOutcome(login, outcome, nil)
	return outcome
}

func (s *clientRegistrationService) logOutcome(login string, outcome models.Outcome, cause error) {
	switch outcome.Kind {
	case models.OutcomeSuccess:
		s.logger.Info().Str("login", login).Msg("user registered")
	case models.OutcomeApplicationError:
		s.logger.Info().
			Str("login", login).
			Int("status", outcome.StatusCode).
			Str("detail", outcome.Detail).
			Msg("registration rejected by server")
	default:
		s.logger.Warn().Err(cause).Str("login", login).Msg("registration transport failure")
	}
}
