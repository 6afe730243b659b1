// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied to fields left empty by every configuration source.
const (
	DefaultHTTPAddress  = "http://localhost:8000"
	DefaultRegisterPath = "/register"
	DefaultLogLevel     = "debug"
)

// StructuredConfig is the top-level configuration container for the
// registration client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the address and timeout of the registration server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Logger holds the client log level and destination.
	Logger Logger `envPrefix:"LOGGER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings of the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the registration server
	// (e.g. "http://localhost:8000"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RegisterPath is the path of the registration endpoint, relative to
	// HTTPAddress.
	// Env: ADAPTER_REGISTER_PATH
	RegisterPath string `env:"REGISTER_PATH"`

	// RequestTimeout bounds a single registration request (e.g. "30s").
	// Zero means the request runs until it completes or fails.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Logger holds settings of the client log sink.
type Logger struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOGGER_LEVEL
	Level string `env:"LEVEL"`

	// FilePath is the file log entries are appended to. Empty means a "logs"
	// file next to the executable.
	// Env: LOGGER_FILE
	FilePath string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (args, without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields still empty afterwards receive the package defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:  DefaultHTTPAddress,
			RegisterPath: DefaultRegisterPath,
		},
		Logger: Logger{
			Level: DefaultLogLevel,
		},
	}
}
