// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-mesto/internal/config"
	"github.com/MKhiriev/go-mesto/internal/errs"
	"github.com/MKhiriev/go-mesto/internal/logger"
	"github.com/MKhiriev/go-mesto/internal/service"
	"github.com/MKhiriev/go-mesto/internal/utils"
)

// tokenCookieName is the cookie that carries the session token.
const tokenCookieName = "jwt"

type Handler struct {
	services *service.Services

	server        config.Server
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		server:        cfg.Server,
		tokenDuration: cfg.App.TokenDuration,
		logger:        logger,
	}
}

// sessionCookie builds the `jwt` cookie. A negative maxAge clears it.
func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     tokenCookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.server.CookieDomain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

func decodeJSON(r *http.Request, v any) error {
	const op = "http.decodeJSON"
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errs.E(errs.KindInvalidData, op, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
	}
	return nil
}

func userIDFromRequest(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", errs.E(errs.KindMissingCredential, "http.userIDFromRequest", ErrNoUserIDInContext)
	}
	return userID, nil
}
