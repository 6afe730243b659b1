// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_NoRetries(t *testing.T) {
	client := NewHTTPClient()

	assert.Equal(t, 0, client.RetryCount)
}

func TestHTTPClient_WithTimeout(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{name: "positive timeout applied", timeout: 3 * time.Second, want: 3 * time.Second},
		{name: "zero leaves client unbounded", timeout: 0, want: 0},
		{name: "negative leaves client unbounded", timeout: -time.Second, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewHTTPClient().WithTimeout(tt.timeout)

			assert.Equal(t, tt.want, client.GetClient().Timeout)
		})
	}
}

func TestHTTPClient_WithRequestLogging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	client := NewHTTPClient().WithRequestLogging(logger.NewLogger("test", &buf, "debug"))

	resp, err := client.R().SetBody(map[string]string{"password": "Secret1!"}).Post(srv.URL + "/register")
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http response received", entry["message"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.NotContains(t, buf.String(), "Secret1!")
}
