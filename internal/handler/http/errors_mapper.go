// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-mesto/internal/app"
	"github.com/MKhiriev/go-mesto/internal/errs"
	"github.com/MKhiriev/go-mesto/internal/logger"
	"github.com/MKhiriev/go-mesto/internal/utils"
	"github.com/MKhiriev/go-mesto/models"
)

// errorRule maps a set of error kinds to a response.
type errorRule struct {
	kinds   []errs.Kind
	status  int
	message string
}

// errorRules are checked in order and the first rule with a kind anywhere
// in the error tree wins. Errors matching no rule are internal.
var errorRules = []errorRule{
	{
		kinds:   []errs.Kind{errs.KindMissingCredential, errs.KindInvalidCredential},
		status:  http.StatusUnauthorized,
		message: app.MsgAuthorizationRequired,
	},
	{kinds: []errs.Kind{errs.KindForbidden}, status: http.StatusForbidden, message: app.MsgForbidden},
	{kinds: []errs.Kind{errs.KindNotFound}, status: http.StatusNotFound, message: app.MsgNotFound},
	{kinds: []errs.Kind{errs.KindInvalidData}, status: http.StatusBadRequest, message: app.MsgInvalidData},
	{kinds: []errs.Kind{errs.KindConflict}, status: http.StatusConflict, message: app.MsgConflict},
}

// normalizeError returns the status code and client message for err.
func normalizeError(err error) (int, string) {
	for _, rule := range errorRules {
		for _, kind := range rule.kinds {
			if errs.Is(err, kind) {
				return rule.status, rule.message
			}
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError is the only place error responses are written. Internal
// failures are logged at error level, everything else at debug level; the
// cause never reaches the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := normalizeError(err)

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
