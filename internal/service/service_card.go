// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mesto/internal/errs"
	"github.com/MKhiriev/go-mesto/internal/logger"
	"github.com/MKhiriev/go-mesto/internal/store"
	"github.com/MKhiriev/go-mesto/models"
)

type cardService struct {
	cardRepository store.CardRepository
	logger         *logger.Logger
}

// NewCardService constructs a CardService over the card repository.
func NewCardService(cardRepository store.CardRepository, logger *logger.Logger) CardService {
	return &cardService{
		cardRepository: cardRepository,
		logger:         logger,
	}
}

func (c *cardService) ListCards(ctx context.Context) ([]models.Card, error) {
	return c.cardRepository.ListCards(ctx)
}

func (c *cardService) CreateCard(ctx context.Context, ownerID string, req models.CardCreateRequest) (models.Card, error) {
	return c.cardRepository.CreateCard(ctx, models.Card{
		Name:  req.Name,
		Link:  req.Link,
		Owner: ownerID,
	})
}

// DeleteCard checks ownership before deleting. The DELETE is scoped by
// owner as well, so a card that changes hands in between is never removed
// by the wrong user.
func (c *cardService) DeleteCard(ctx context.Context, userID string, cardID models.ObjectID) (models.Card, error) {
	const op = "cardService.DeleteCard"
	log := logger.FromContext(ctx)

	card, err := c.cardRepository.FindCardByID(ctx, string(cardID))
	if err != nil {
		return models.Card{}, err
	}

	if !card.IsOwnedBy(userID) {
		log.Info().
			Str("func", op).
			Str("card_id", card.ID).
			Str("user_id", userID).
			Msg("attempt to delete another user's card")
		return models.Card{}, errs.Errorf(errs.KindForbidden, op, "card %s belongs to %s", card.ID, card.Owner)
	}

	if err = c.cardRepository.DeleteCard(ctx, card.ID, userID); err != nil {
		return models.Card{}, fmt.Errorf("card deletion failed: %w", err)
	}

	return card, nil
}

func (c *cardService) LikeCard(ctx context.Context, userID string, cardID models.ObjectID) (models.Card, error) {
	return c.changeLike(ctx, string(cardID), func() error {
		return c.cardRepository.AddLike(ctx, string(cardID), userID)
	})
}

func (c *cardService) UnlikeCard(ctx context.Context, userID string, cardID models.ObjectID) (models.Card, error) {
	return c.changeLike(ctx, string(cardID), func() error {
		return c.cardRepository.RemoveLike(ctx, string(cardID), userID)
	})
}

// changeLike makes sure the card exists, applies the change and returns
// the card with its current likes.
func (c *cardService) changeLike(ctx context.Context, cardID string, change func() error) (models.Card, error) {
	if _, err := c.cardRepository.FindCardByID(ctx, cardID); err != nil {
		return models.Card{}, err
	}

	if err := change(); err != nil {
		return models.Card{}, err
	}

	return c.cardRepository.FindCardByID(ctx, cardID)
}
