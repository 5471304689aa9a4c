// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-mesto/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper,UserServiceWrapper,CardServiceWrapper

// TokenService issues and verifies signed, time-limited session tokens.
type TokenService interface {
	// Issue signs a token whose subject is userID.
	Issue(ctx context.Context, userID string) (models.Token, error)
	// Verify checks the signature, algorithm, issuer and expiry of token and
	// returns its decoded form. Failures wrap [ErrTokenIsExpired] or
	// [ErrTokenIsInvalid] inside an [errs.KindInvalidCredential] error.
	Verify(ctx context.Context, token string) (models.Token, error)
}

// AuthService registers users and exchanges credentials for session tokens.
type AuthService interface {
	// SignUp creates an account. Missing name, about and avatar get the
	// Mesto defaults.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)
	// SignIn checks the credentials and issues a session token. An unknown
	// email and a wrong password are the same [errs.KindInvalidCredential].
	SignIn(ctx context.Context, req models.SignInRequest) (models.Token, error)
	// ParseToken verifies a session token taken from a request.
	ParseToken(ctx context.Context, token string) (models.Token, error)
}

// UserService reads and edits user profiles.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID models.ObjectID) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdateRequest) (models.User, error)
	UpdateAvatar(ctx context.Context, userID string, req models.AvatarUpdateRequest) (models.User, error)
}

// CardService manages cards and their likes on behalf of an authenticated
// user.
type CardService interface {
	ListCards(ctx context.Context) ([]models.Card, error)
	CreateCard(ctx context.Context, ownerID string, req models.CardCreateRequest) (models.Card, error)
	// DeleteCard removes a card owned by userID and returns it. Another
	// user's card is [errs.KindForbidden].
	DeleteCard(ctx context.Context, userID string, cardID models.ObjectID) (models.Card, error)
	LikeCard(ctx context.Context, userID string, cardID models.ObjectID) (models.Card, error)
	UnlikeCard(ctx context.Context, userID string, cardID models.ObjectID) (models.Card, error)
}

// AuthServiceWrapper decorates an AuthService with additional behavior such
// as validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// UserServiceWrapper decorates a UserService.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// CardServiceWrapper decorates a CardService.
type CardServiceWrapper interface {
	Wrap(CardService) CardService
}
