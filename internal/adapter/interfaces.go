// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the Mesto API.
//
// The primary abstraction is [MestoAdapter], which hides the HTTP transport
// from the command-line client. Non-2xx responses are mapped back to the
// [errs.Kind] the server reported, so callers branch on errs.Is instead of
// status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-mesto/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MestoAdapter talks to a Mesto API server on behalf of one user.
type MestoAdapter interface {
	// SetToken stores the session token sent as the `jwt` cookie with every
	// subsequent request.
	SetToken(token string)

	// Token returns the stored session token, or an empty string.
	Token() string

	// SignUp registers a new account.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)

	// SignIn exchanges credentials for a session token and stores it.
	SignIn(ctx context.Context, req models.SignInRequest) error

	// Logout asks the server to clear the session cookie and forgets the
	// stored token.
	Logout(ctx context.Context) error

	ListUsers(ctx context.Context) ([]models.User, error)
	GetMe(ctx context.Context) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.User, error)
	UpdateAvatar(ctx context.Context, req models.AvatarUpdateRequest) (models.User, error)

	ListCards(ctx context.Context) ([]models.Card, error)
	CreateCard(ctx context.Context, req models.CardCreateRequest) (models.Card, error)
	DeleteCard(ctx context.Context, cardID string) (models.Card, error)
	LikeCard(ctx context.Context, cardID string) (models.Card, error)
	UnlikeCard(ctx context.Context, cardID string) (models.Card, error)
}
