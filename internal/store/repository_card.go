// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-mesto/internal/logger"
	"github.com/MKhiriev/go-mesto/internal/utils"
	"github.com/MKhiriev/go-mesto/models"
)

// cardRepository is the SQL implementation of [CardRepository].
// Likes live in their own table keyed by (card_id, user_id), so a user can
// like a card at most once regardless of concurrent requests.
type cardRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewCardRepository constructs a [CardRepository] backed by db.
func NewCardRepository(db *DB, logger *logger.Logger) CardRepository {
	logger.Debug().Msg("creating card repository")
	return &cardRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *cardRepository) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	const op = "cardRepository.CreateCard"
	log := logger.FromContext(ctx)

	card.ID = utils.NewObjectID()
	card.CreatedAt = r.now().UTC().Truncate(time.Microsecond)
	card.Likes = []string{}

	query, args, err := buildInsertCardQuery(r.builder, card)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to build query")
		return models.Card{}, r.classify(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", op).Str("owner_id", card.Owner).Msg("failed to insert card")
		return models.Card{}, r.classify(op, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	return card, nil
}

func (r *cardRepository) ListCards(ctx context.Context) ([]models.Card, error) {
	return r.selectCards(ctx, "cardRepository.ListCards", "")
}

func (r *cardRepository) FindCardByID(ctx context.Context, cardID string) (models.Card, error) {
	const op = "cardRepository.FindCardByID"

	cards, err := r.selectCards(ctx, op, cardID)
	if err != nil {
		return models.Card{}, err
	}
	if len(cards) == 0 {
		return models.Card{}, r.classify(op, fmt.Errorf("card %s: %w", cardID, ErrNoRowsAffected))
	}

	return cards[0], nil
}

// selectCards loads cards (all of them, or one when cardID is set) and then
// their likes with a single IN query.
func (r *cardRepository) selectCards(ctx context.Context, op, cardID string) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCardsQuery(r.builder, cardID)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to build query")
		return nil, r.classify(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to execute query")
		return nil, r.classify(op, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	cards := make([]models.Card, 0, 16)
	for rows.Next() {
		card := models.Card{Likes: []string{}}
		if scanErr := rows.Scan(&card.ID, &card.Name, &card.Link, &card.Owner, &card.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", op).Msg("failed to scan card row")
			return nil, r.classify(op, fmt.Errorf("%w: %w", ErrScanningRow, scanErr))
		}
		cards = append(cards, card)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", op).Msg("error occurred during rows iteration")
		return nil, r.classify(op, fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	if len(cards) == 0 {
		return cards, nil
	}

	if err = r.attachLikes(ctx, op, cards); err != nil {
		return nil, err
	}

	return cards, nil
}

func (r *cardRepository) attachLikes(ctx context.Context, op string, cards []models.Card) error {
	log := logger.FromContext(ctx)

	ids := make([]string, len(cards))
	byID := make(map[string]int, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
		byID[c.ID] = i
	}

	query, args, err := buildSelectLikesQuery(r.builder, ids)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to build likes query")
		return r.classify(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to execute likes query")
		return r.classify(op, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	for rows.Next() {
		var cardID, userID string
		if scanErr := rows.Scan(&cardID, &userID); scanErr != nil {
			log.Err(scanErr).Str("func", op).Msg("failed to scan like row")
			return r.classify(op, fmt.Errorf("%w: %w", ErrScanningRow, scanErr))
		}
		if i, ok := byID[cardID]; ok {
			cards[i].Likes = append(cards[i].Likes, userID)
		}
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", op).Msg("error occurred during likes iteration")
		return r.classify(op, fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	return nil
}

func (r *cardRepository) DeleteCard(ctx context.Context, cardID, ownerID string) error {
	const op = "cardRepository.DeleteCard"
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCardQuery(r.builder, cardID, ownerID)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to build query")
		return r.classify(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", op).Str("card_id", cardID).Msg("failed to delete card")
		return r.classify(op, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.classify(op, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}
	if affected == 0 {
		return r.classify(op, fmt.Errorf("card %s of owner %s: %w", cardID, ownerID, ErrNoRowsAffected))
	}

	return nil
}

func (r *cardRepository) AddLike(ctx context.Context, cardID, userID string) error {
	const op = "cardRepository.AddLike"
	log := logger.FromContext(ctx)

	query, args, err := buildInsertLikeQuery(r.builder, cardID, userID, r.now().UTC().Truncate(time.Microsecond))
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to build query")
		return r.classify(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", op).Str("card_id", cardID).Msg("failed to insert like")
		return r.classify(op, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	return nil
}

func (r *cardRepository) RemoveLike(ctx context.Context, cardID, userID string) error {
	const op = "cardRepository.RemoveLike"
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteLikeQuery(r.builder, cardID, userID)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to build query")
		return r.classify(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", op).Str("card_id", cardID).Msg("failed to delete like")
		return r.classify(op, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	return nil
}
