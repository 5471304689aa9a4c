// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-mesto/internal/errs"
	"github.com/MKhiriev/go-mesto/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
//
// Every failure is an [*errs.Error]: a missing row is [errs.KindNotFound],
// a duplicate email is [errs.KindConflict], anything else is
// [errs.KindInternal].
type UserRepository interface {
	// CreateUser assigns a new id and creation time to user and stores it.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the user with the given (lower-cased) email,
	// including its password hash.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns the user with the given id.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// ListUsers returns every user, oldest first.
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateProfile replaces the name and about fields and returns the
	// updated user.
	UpdateProfile(ctx context.Context, userID, name, about string) (models.User, error)
	// UpdateAvatar replaces the avatar link and returns the updated user.
	UpdateAvatar(ctx context.Context, userID, avatar string) (models.User, error)
}

// CardRepository persists cards in the "cards" table and their likes in
// "card_likes".
type CardRepository interface {
	// CreateCard assigns a new id and creation time to card and stores it.
	// An unknown owner is [errs.KindNotFound].
	CreateCard(ctx context.Context, card models.Card) (models.Card, error)
	// ListCards returns every card with its likes, newest first.
	ListCards(ctx context.Context) ([]models.Card, error)
	// FindCardByID returns the card with its likes.
	FindCardByID(ctx context.Context, cardID string) (models.Card, error)
	// DeleteCard removes the card only if it belongs to ownerID. When no
	// row matches, the result is [errs.KindNotFound].
	DeleteCard(ctx context.Context, cardID, ownerID string) error
	// AddLike records that userID likes the card. Repeated calls leave a
	// single like.
	AddLike(ctx context.Context, cardID, userID string) error
	// RemoveLike removes the like of userID. Removing an absent like is not
	// an error.
	RemoveLike(ctx context.Context, cardID, userID string) error
}

// ErrorClassifier maps a driver error to a failure kind.
type ErrorClassifier interface {
	Classify(err error) errs.Kind
}
