// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Card is a photo post.
type Card struct {
	// ID is the 24-character hex identifier of the card.
	ID string `json:"_id"`

	// Name is the caption of the photo.
	Name string `json:"name"`

	// Link is the absolute http(s) URL of the photo.
	Link string `json:"link"`

	// Owner is the id of the user who created the card. It never changes.
	Owner string `json:"owner"`

	// Likes holds the ids of users who liked the card, without duplicates,
	// in the order the likes were given.
	Likes []string `json:"likes"`

	// CreatedAt is the moment the card was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Card model.
func (c Card) TableName() string {
	return "cards"
}

// LikedBy reports whether userID is among the card's likes.
func (c Card) LikedBy(userID string) bool {
	return slices.Contains(c.Likes, userID)
}

// IsOwnedBy reports whether userID created the card.
func (c Card) IsOwnedBy(userID string) bool {
	return c.Owner == userID
}
