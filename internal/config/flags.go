// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses all configuration flags from args (program name
// excluded).
//
// Flags:
//
//	-a registration server address, e.g. http://localhost:8000
//	-register-path registration endpoint path
//	-request-timeout request timeout (e.g., "30s", "1m"), 0 disables it
//	-log-level zerolog level name
//	-log-file log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress string
	var registerPath string
	var requestTimeout time.Duration
	var logLevel string
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&serverAddress, "a", "", "Registration server address")
	fs.StringVar(&registerPath, "register-path", "", "Registration endpoint path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RegisterPath:   registerPath,
			RequestTimeout: requestTimeout,
		},
		Logger: Logger{
			Level:    logLevel,
			FilePath: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
