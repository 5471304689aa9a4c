// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-mesto/internal/errs"
	"github.com/MKhiriev/go-mesto/internal/logger"
	"github.com/MKhiriev/go-mesto/internal/utils"
)

// auth is the gate in front of every protected route.
//
// The session token is read from the `jwt` cookie and verified via
// [service.AuthService.ParseToken]. On success the user id is stored in the
// request context under [utils.UserIDCtxKey]. Otherwise the request is
// rejected with 401:
//   - no cookie, or an empty one, is [errs.KindMissingCredential];
//   - a token that fails verification for any reason is
//     [errs.KindInvalidCredential]. The exact cause is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const op = "http.auth"
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(tokenCookieName)
		if err != nil || cookie.Value == "" {
			h.writeError(w, r, errs.E(errs.KindMissingCredential, op, ErrMissingTokenCookie))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err != nil {
			log.Debug().Err(err).Msg("session token rejected")
			h.writeError(w, r, errs.E(errs.KindInvalidCredential, op, err))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
