// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mesto/internal/app"
	"github.com/MKhiriev/go-mesto/internal/errs"
	"github.com/MKhiriev/go-mesto/internal/service"
	"github.com/MKhiriev/go-mesto/internal/utils"
	"github.com/MKhiriev/go-mesto/models"
)

func executeAuth(h *Handler, cookie *http.Cookie, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		cookie   *http.Cookie
		parseErr error
	}{
		{name: "no cookie"},
		{name: "empty cookie", cookie: &http.Cookie{Name: tokenCookieName, Value: ""}},
		{name: "other cookie only", cookie: &http.Cookie{Name: "session", Value: "abc"}},
		{
			name:     "expired token",
			cookie:   &http.Cookie{Name: tokenCookieName, Value: "expired"},
			parseErr: errs.E(errs.KindInvalidCredential, "tokenService.Verify", service.ErrTokenIsExpired),
		},
		{
			name:     "bad signature",
			cookie:   &http.Cookie{Name: tokenCookieName, Value: "forged"},
			parseErr: errs.E(errs.KindInvalidCredential, "tokenService.Verify", service.ErrTokenIsInvalid),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.parseErr != nil {
				m.auth.EXPECT().ParseToken(gomock.Any(), tt.cookie.Value).Return(models.Token{}, tt.parseErr)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

			rr := executeAuth(h, tt.cookie, next)

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, app.MsgAuthorizationRequired, decodeMessage(t, rr))
		})
	}
}

func TestAuth_ValidTokenStoresUserID(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthenticated()

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		gotUserID, ok = utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, &http.Cookie{Name: tokenCookieName, Value: validCookie}, next)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testUserID, gotUserID)
}

func TestAuth_UnclassifiedParseErrorIsStill401(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), "weird").Return(models.Token{}, assert.AnError)

	rr := executeAuth(h, &http.Cookie{Name: tokenCookieName, Value: "weird"}, http.NotFoundHandler())

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
