// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-mesto/internal/errs"
	"github.com/MKhiriev/go-mesto/models"
)

var statusKinds = map[int]errs.Kind{
	http.StatusBadRequest:   errs.KindInvalidData,
	http.StatusUnauthorized: errs.KindInvalidCredential,
	http.StatusForbidden:    errs.KindForbidden,
	http.StatusNotFound:     errs.KindNotFound,
	http.StatusConflict:     errs.KindConflict,
}

// mapHTTPError returns nil for 2xx responses. Any other status becomes an
// [errs.Error] whose kind matches the status and whose message is the one
// the server sent.
func mapHTTPError(resp *resty.Response) error {
	const op = "adapter.mapHTTPError"

	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	kind, ok := statusKinds[status]
	if !ok {
		kind = errs.KindInternal
	}

	return errs.Errorf(kind, op, "http %d: %s", status, responseMessage(resp))
}

func responseMessage(resp *resty.Response) string {
	var msg models.MessageResponse
	if err := json.Unmarshal(resp.Body(), &msg); err == nil && msg.Message != "" {
		return msg.Message
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}
