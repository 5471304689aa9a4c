// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mesto/internal/config"
	"github.com/MKhiriev/go-mesto/internal/logger"
	"github.com/MKhiriev/go-mesto/internal/mock"
	"github.com/MKhiriev/go-mesto/internal/service"
	"github.com/MKhiriev/go-mesto/internal/utils"
	"github.com/MKhiriev/go-mesto/models"
)

const (
	testUserID  = "65f1c0de8a1b2c3d4e5f6a7b"
	testCardID  = "65f1c0de8a1b2c3d4e5f6a00"
	testOrigin  = "https://mesto.example.com"
	validCookie = "valid-token"
)

// testMocks bundles the service mocks behind a test Handler.
type testMocks struct {
	auth  *mock.MockAuthService
	users *mock.MockUserService
	cards *mock.MockCardService
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{TokenDuration: 7 * 24 * time.Hour},
		Server: config.Server{
			AllowedOrigins: []string{testOrigin},
			CookieDomain:   "mesto.example.com",
		},
	}
}

// newTestHandler builds a Handler whose services are gomock mocks.
func newTestHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		auth:  mock.NewMockAuthService(ctrl),
		users: mock.NewMockUserService(ctrl),
		cards: mock.NewMockCardService(ctrl),
	}
	services := &service.Services{
		AuthService: m.auth,
		UserService: m.users,
		CardService: m.cards,
	}

	return NewHandler(services, testConfig(), logger.Nop()), m
}

// expectAuthenticated makes the auth gate accept validCookie as testUserID.
func (m testMocks) expectAuthenticated() {
	m.auth.EXPECT().ParseToken(gomock.Any(), validCookie).Return(models.Token{UserID: testUserID}, nil)
}

// serve sends a request through the full router.
func serve(h *Handler, method, path, body string, withCookie bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if withCookie {
		req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: validCookie})
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// withUser returns a request that already passed the auth gate.
func withUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(utils.WithUserID(r.Context(), userID))
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Message
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
