// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-mesto/internal/config"
	"github.com/MKhiriev/go-mesto/internal/logger"
	"github.com/MKhiriev/go-mesto/internal/utils"
	"github.com/MKhiriev/go-mesto/models"
)

const tokenCookieName = "jwt"

type httpMestoAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPMestoAdapter constructs an HTTP implementation of [MestoAdapter].
// The base URL is taken from cfg.HTTPAddress; a missing scheme defaults to
// http.
//
// The session cookie is attached by hand rather than through a cookie jar:
// the server marks it Secure, and a jar would drop it on plain-http
// development servers.
func NewHTTPMestoAdapter(cfg config.ClientAdapter, logger *logger.Logger) (MestoAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpMestoAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpMestoAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpMestoAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpMestoAdapter) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	var user models.User
	if err := h.do(h.client.R().SetContext(ctx).SetBody(req).SetResult(&user), http.MethodPost, "/signup"); err != nil {
		return models.User{}, fmt.Errorf("sign up: %w", err)
	}
	return user, nil
}

// SignIn POSTs the credentials to /signin and keeps the token from the
// `jwt` cookie of the response.
func (h *httpMestoAdapter) SignIn(ctx context.Context, req models.SignInRequest) error {
	resp, err := h.client.R().SetContext(ctx).SetBody(req).Post("/signin")
	if err != nil {
		return fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	for _, c := range resp.Cookies() {
		if c.Name == tokenCookieName && c.Value != "" {
			h.SetToken(c.Value)
			h.logger.Debug().Msg("session token received")
			return nil
		}
	}

	return ErrNoTokenInResponse
}

func (h *httpMestoAdapter) Logout(ctx context.Context) error {
	if err := h.do(h.authedRequest(ctx), http.MethodDelete, "/logout"); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	h.SetToken("")
	return nil
}

func (h *httpMestoAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := h.do(h.authedRequest(ctx).SetResult(&users), http.MethodGet, "/users"); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (h *httpMestoAdapter) GetMe(ctx context.Context) (models.User, error) {
	return h.userRequest(ctx, http.MethodGet, "/users/me", nil)
}

func (h *httpMestoAdapter) GetUser(ctx context.Context, userID string) (models.User, error) {
	return h.userRequest(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil)
}

func (h *httpMestoAdapter) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.User, error) {
	return h.userRequest(ctx, http.MethodPatch, "/users/me", req)
}

func (h *httpMestoAdapter) UpdateAvatar(ctx context.Context, req models.AvatarUpdateRequest) (models.User, error) {
	return h.userRequest(ctx, http.MethodPatch, "/users/me/avatar", req)
}

func (h *httpMestoAdapter) ListCards(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	if err := h.do(h.authedRequest(ctx).SetResult(&cards), http.MethodGet, "/cards"); err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

func (h *httpMestoAdapter) CreateCard(ctx context.Context, req models.CardCreateRequest) (models.Card, error) {
	return h.cardRequest(ctx, http.MethodPost, "/cards", req)
}

func (h *httpMestoAdapter) DeleteCard(ctx context.Context, cardID string) (models.Card, error) {
	return h.cardRequest(ctx, http.MethodDelete, "/cards/"+url.PathEscape(cardID), nil)
}

func (h *httpMestoAdapter) LikeCard(ctx context.Context, cardID string) (models.Card, error) {
	return h.cardRequest(ctx, http.MethodPut, "/cards/"+url.PathEscape(cardID)+"/likes", nil)
}

func (h *httpMestoAdapter) UnlikeCard(ctx context.Context, cardID string) (models.Card, error) {
	return h.cardRequest(ctx, http.MethodDelete, "/cards/"+url.PathEscape(cardID)+"/likes", nil)
}

func (h *httpMestoAdapter) userRequest(ctx context.Context, method, path string, body any) (models.User, error) {
	var user models.User
	req := h.authedRequest(ctx).SetResult(&user)
	if body != nil {
		req.SetBody(body)
	}
	if err := h.do(req, method, path); err != nil {
		return models.User{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return user, nil
}

func (h *httpMestoAdapter) cardRequest(ctx context.Context, method, path string, body any) (models.Card, error) {
	var card models.Card
	req := h.authedRequest(ctx).SetResult(&card)
	if body != nil {
		req.SetBody(body)
	}
	if err := h.do(req, method, path); err != nil {
		return models.Card{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return card, nil
}

// do executes req and maps a non-2xx status to an errs kind.
func (h *httpMestoAdapter) do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("api call")

	return mapHTTPError(resp)
}

func (h *httpMestoAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetCookie(&http.Cookie{Name: tokenCookieName, Value: token})
	}
	return req
}
