// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-mesto/internal/logger"
	"github.com/MKhiriev/go-mesto/internal/store"
	"github.com/MKhiriev/go-mesto/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService over the user repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return u.userRepository.ListUsers(ctx)
}

func (u *userService) GetUser(ctx context.Context, userID models.ObjectID) (models.User, error) {
	return u.userRepository.FindUserByID(ctx, string(userID))
}

func (u *userService) UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdateRequest) (models.User, error) {
	return u.userRepository.UpdateProfile(ctx, userID, req.Name, req.About)
}

func (u *userService) UpdateAvatar(ctx context.Context, userID string, req models.AvatarUpdateRequest) (models.User, error) {
	return u.userRepository.UpdateAvatar(ctx, userID, req.Avatar)
}
