// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a Mesto account.
// PasswordHash is a bcrypt hash and is never serialized to clients.
type User struct {
	// ID is the 24-character hex identifier of the user.
	ID string `json:"_id"`

	// Name is the display name shown on the profile.
	Name string `json:"name"`

	// About is the short profile description.
	About string `json:"about"`

	// Avatar is the absolute http(s) URL of the profile picture.
	Avatar string `json:"avatar"`

	// Email is the unique, lower-cased login of the user.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the moment the account was registered.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
