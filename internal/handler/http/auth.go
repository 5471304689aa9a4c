// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-mesto/internal/app"
	"github.com/MKhiriev/go-mesto/internal/logger"
	"github.com/MKhiriev/go-mesto/internal/utils"
	"github.com/MKhiriev/go-mesto/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.SignUp(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user registered")
	utils.WriteJSON(w, user, http.StatusCreated)
}

// signIn exchanges credentials for a session token delivered only as an
// HttpOnly cookie.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.SignIn(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", token.UserID).Msg("user successfully logged in")

	http.SetCookie(w, h.sessionCookie(token.SignedString, int(h.tokenDuration.Seconds())))
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgSignedIn}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgSignedOut}, http.StatusOK)
}
