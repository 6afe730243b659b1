// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the client
// packages. Currently it hosts the resty-based HTTP client wrapper.
package utils

import (
	"time"

	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client. Retries are disabled:
// every request is sent exactly once.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetRetryCount(0)}
}

// WithTimeout bounds every request made by the client. A zero or negative
// timeout leaves requests unbounded.
func (c *HTTPClient) WithTimeout(timeout time.Duration) *HTTPClient {
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}

// WithRequestLogging registers resty hooks that write one debug entry per
// completed response and one warn entry per failed request. Request bodies
// are never logged because they carry passwords.
func (c *HTTPClient) WithRequestLogging(log *logger.Logger) *HTTPClient {
	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("http response received")
		return nil
	})
	c.OnError(func(req *resty.Request, err error) {
		log.Warn().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request failed")
	})
	return c
}
