// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the registration server.
	HTTPAddress string
	// RegisterPath is the registration endpoint path.
	RegisterPath string
	// RequestTimeout is the timeout for outbound requests, zero disables it.
	RequestTimeout time.Duration
}

// ClientLogger holds settings of the client log sink.
type ClientLogger struct {
	// Level is a zerolog level name.
	Level string
	// FilePath is the log file; empty selects the default location.
	FilePath string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the registration server address and timeouts.
	Adapter ClientAdapter
	// Logger contains the log level and destination.
	Logger ClientLogger
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RegisterPath:   cfg.Adapter.RegisterPath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Logger: ClientLogger{
			Level:    cfg.Logger.Level,
			FilePath: cfg.Logger.FilePath,
		},
	}
}
