// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// field-level invariants: a non-negative timeout and a known log level.
// Empty values are accepted here; defaults fill them before the client view
// is validated.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout %s", ErrInvalidAdapterConfigs, cfg.Adapter.RequestTimeout)
	}

	if cfg.Logger.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Logger.Level); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidLoggerConfigs, err)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validateHTTPAddress(cfg.Adapter.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}

	if !strings.HasPrefix(cfg.Adapter.RegisterPath, "/") {
		return fmt.Errorf("%w: register path %q must start with /", ErrInvalidAdapterConfigs, cfg.Adapter.RegisterPath)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Logger.Level); err != nil || cfg.Logger.Level == "" {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidLoggerConfigs, cfg.Logger.Level)
	}

	return nil
}

func validateHTTPAddress(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Host == "" {
		return fmt.Errorf("address %q has no host", raw)
	}

	return nil
}
