// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-register/internal/config"
	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/internal/utils"
	"github.com/MKhiriev/go-register/models"
)

type httpServerAdapter struct {
	client       *utils.HTTPClient
	registerPath string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, the
// optional request timeout and request logging.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	registerPath := adapterCfg.RegisterPath
	if registerPath == "" {
		registerPath = config.DefaultRegisterPath
	}

	adapterLog := log.GetChildLogger("adapter")
	client := utils.NewHTTPClient().
		WithTimeout(adapterCfg.RequestTimeout).
		WithRequestLogging(adapterLog)
	client.SetBaseURL(baseURL)

	return &httpServerAdapter{client: client, registerPath: registerPath, logger: adapterLog}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerAdapter]. It POSTs req as JSON to the
// registration path. The body is decoded regardless of the response
// Content-Type; a body that is not a JSON object is [ErrDecodeResponse].
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegistrationRequest) (models.RegistrationResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(h.registerPath)
	if err != nil {
		return models.RegistrationResponse{}, fmt.Errorf("%w: register request: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegistrationResponse{}, err
	}

	var result models.RegistrationResponse
	if err = decodeObject(resp.Body(), &result); err != nil {
		return models.RegistrationResponse{}, fmt.Errorf("%w: register response: %w", ErrDecodeResponse, err)
	}

	h.logger.Debug().Int("status", resp.StatusCode()).Msg("registration accepted")
	return result, nil
}
