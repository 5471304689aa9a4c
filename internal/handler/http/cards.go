// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-mesto/internal/logger"
	"github.com/MKhiriev/go-mesto/internal/utils"
	"github.com/MKhiriev/go-mesto/models"
)

func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.services.CardService.ListCards(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if cards == nil {
		cards = []models.Card{}
	}

	utils.WriteJSON(w, cards, http.StatusOK)
}

func (h *Handler) createCard(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.CardCreateRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	card, err := h.services.CardService.CreateCard(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("card_id", card.ID).Msg("card created")
	utils.WriteJSON(w, card, http.StatusCreated)
}

func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	h.cardAction(w, r, h.services.CardService.DeleteCard)
}

func (h *Handler) likeCard(w http.ResponseWriter, r *http.Request) {
	h.cardAction(w, r, h.services.CardService.LikeCard)
}

func (h *Handler) unlikeCard(w http.ResponseWriter, r *http.Request) {
	h.cardAction(w, r, h.services.CardService.UnlikeCard)
}

// cardAction runs a card operation identified by the {cardId} path param on
// behalf of the authenticated user and writes the resulting card.
func (h *Handler) cardAction(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, userID string, cardID models.ObjectID) (models.Card, error),
) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	card, err := action(r.Context(), userID, models.ObjectID(chi.URLParam(r, "cardId")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, card, http.StatusOK)
}
