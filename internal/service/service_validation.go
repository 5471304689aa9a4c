// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mesto/internal/validators"
	"github.com/MKhiriev/go-mesto/models"
)

// AuthValidationService checks sign-up and sign-in bodies before they reach
// the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during sign up request validation: %w", err)
	}
	return v.inner.SignUp(ctx, req)
}

func (v *AuthValidationService) SignIn(ctx context.Context, req models.SignInRequest) (models.Token, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Token{}, fmt.Errorf("error during sign in request validation: %w", err)
	}
	return v.inner.SignIn(ctx, req)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	return v.inner.ParseToken(ctx, token)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// UserValidationService checks path ids and profile bodies before they
// reach the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) GetUser(ctx context.Context, userID models.ObjectID) (models.User, error) {
	if err := v.validator.Validate(ctx, userID); err != nil {
		return models.User{}, fmt.Errorf("error during user id validation: %w", err)
	}
	return v.inner.GetUser(ctx, userID)
}

func (v *UserValidationService) UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdateRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during profile validation: %w", err)
	}
	return v.inner.UpdateProfile(ctx, userID, req)
}

func (v *UserValidationService) UpdateAvatar(ctx context.Context, userID string, req models.AvatarUpdateRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during avatar validation: %w", err)
	}
	return v.inner.UpdateAvatar(ctx, userID, req)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

// CardValidationService checks path ids and card bodies before they reach
// the wrapped CardService.
type CardValidationService struct {
	inner     CardService
	validator validators.Validator
}

func NewCardValidationService(validator validators.Validator) CardServiceWrapper {
	return &CardValidationService{validator: validator}
}

func (v *CardValidationService) ListCards(ctx context.Context) ([]models.Card, error) {
	return v.inner.ListCards(ctx)
}

func (v *CardValidationService) CreateCard(ctx context.Context, ownerID string, req models.CardCreateRequest) (models.Card, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Card{}, fmt.Errorf("error during card validation: %w", err)
	}
	return v.inner.CreateCard(ctx, ownerID, req)
}

func (v *CardValidationService) DeleteCard(ctx context.Context, userID string, cardID models.ObjectID) (models.Card, error) {
	if err := v.validator.Validate(ctx, cardID); err != nil {
		return models.Card{}, fmt.Errorf("error during card id validation: %w", err)
	}
	return v.inner.DeleteCard(ctx, userID, cardID)
}

func (v *CardValidationService) LikeCard(ctx context.Context, userID string, cardID models.ObjectID) (models.Card, error) {
	if err := v.validator.Validate(ctx, cardID); err != nil {
		return models.Card{}, fmt.Errorf("error during card id validation: %w", err)
	}
	return v.inner.LikeCard(ctx, userID, cardID)
}

func (v *CardValidationService) UnlikeCard(ctx context.Context, userID string, cardID models.ObjectID) (models.Card, error) {
	if err := v.validator.Validate(ctx, cardID); err != nil {
		return models.Card{}, fmt.Errorf("error during card id validation: %w", err)
	}
	return v.inner.UnlikeCard(ctx, userID, cardID)
}

func (v *CardValidationService) Wrap(inner CardService) CardService {
	v.inner = inner
	return v
}
