// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ObjectID is a path identifier that must be validated as a 24-character hex
// string before it reaches the store.
type ObjectID string

// SignUpRequest is the body of POST /signup.
// Name, About and Avatar are optional and defaulted by the auth service.
type SignUpRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=30"`
	About    string `json:"about" validate:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar" validate:"omitempty,weblink"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,alphanum"`
}

// SignInRequest is the body of POST /signin.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdateRequest is the body of PATCH /users/me.
type ProfileUpdateRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=30"`
}

// AvatarUpdateRequest is the body of PATCH /users/me/avatar.
type AvatarUpdateRequest struct {
	Avatar string `json:"avatar" validate:"required,weblink"`
}

// CardCreateRequest is the body of POST /cards.
type CardCreateRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,weblink"`
}
