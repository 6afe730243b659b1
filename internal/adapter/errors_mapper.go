// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-register/models"
	"github.com/go-resty/resty/v2"
)

func isSuccess(resp *resty.Response) bool {
	return resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices
}

// mapHTTPError turns a non-2xx response into an [*ApplicationError]. A body
// that is not a JSON object is a transport failure, not an application error.
// A non-string "detail" (FastAPI reports validation failures as a list) is
// kept as its compact JSON text.
func mapHTTPError(resp *resty.Response) error {
	if isSuccess(resp) {
		return nil
	}

	var body map[string]json.RawMessage
	if err := decodeObject(resp.Body(), &body); err != nil {
		return fmt.Errorf("%w: http %d error body: %v", ErrDecodeResponse, resp.StatusCode(), err)
	}

	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err != nil {
		errResp.Detail = compactJSON(body["detail"])
	}

	return &ApplicationError{StatusCode: resp.StatusCode(), Detail: errResp.Detail}
}

// decodeObject decodes body into v and rejects anything that is not a JSON
// object, including null.
func decodeObject(body []byte, v any) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return err
	}
	if probe == nil {
		return errors.New("json body is not an object")
	}

	return json.Unmarshal(body, v)
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

func statusSentinel(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessableEntity
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return ErrUnexpectedStatus
	}
}
