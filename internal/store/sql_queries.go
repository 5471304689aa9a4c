// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mesto/models"
)

const (
	usersTable     = "users"
	cardsTable     = "cards"
	cardLikesTable = "card_likes"
)

var (
	userColumns = []string{"id", "name", "about", "avatar", "email", "password_hash", "created_at"}
	cardColumns = []string{"id", "name", "link", "owner_id", "created_at"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, u models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(u.ID, u.Name, u.About, u.Avatar, u.Email, u.PasswordHash, u.CreatedAt).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("created_at", "id").
		ToSql()
}

// buildUpdateUserQuery sets the given columns of one user and returns the
// updated row.
func buildUpdateUserQuery(b sq.StatementBuilderType, userID string, set map[string]any) (string, []any, error) {
	return b.Update(usersTable).
		SetMap(set).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING id, name, about, avatar, email, password_hash, created_at").
		ToSql()
}

func buildInsertCardQuery(b sq.StatementBuilderType, c models.Card) (string, []any, error) {
	return b.Insert(cardsTable).
		Columns(cardColumns...).
		Values(c.ID, c.Name, c.Link, c.Owner, c.CreatedAt).
		ToSql()
}

func buildSelectCardsQuery(b sq.StatementBuilderType, cardID string) (string, []any, error) {
	q := b.Select(cardColumns...).From(cardsTable)
	if cardID != "" {
		q = q.Where(sq.Eq{"id": cardID})
	}
	return q.OrderBy("created_at DESC", "id DESC").ToSql()
}

func buildDeleteCardQuery(b sq.StatementBuilderType, cardID, ownerID string) (string, []any, error) {
	return b.Delete(cardsTable).
		Where(sq.Eq{"id": cardID}).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

// buildSelectLikesQuery loads the likes of all listed cards in like order.
func buildSelectLikesQuery(b sq.StatementBuilderType, cardIDs []string) (string, []any, error) {
	return b.Select("card_id", "user_id").
		From(cardLikesTable).
		Where(sq.Eq{"card_id": cardIDs}).
		OrderBy("liked_at", "user_id").
		ToSql()
}

// buildInsertLikeQuery is idempotent: a second like by the same user is
// ignored by the (card_id, user_id) primary key.
func buildInsertLikeQuery(b sq.StatementBuilderType, cardID, userID string, likedAt time.Time) (string, []any, error) {
	return b.Insert(cardLikesTable).
		Columns("card_id", "user_id", "liked_at").
		Values(cardID, userID, likedAt).
		Suffix("ON CONFLICT (card_id, user_id) DO NOTHING").
		ToSql()
}

func buildDeleteLikeQuery(b sq.StatementBuilderType, cardID, userID string) (string, []any, error) {
	return b.Delete(cardLikesTable).
		Where(sq.Eq{"card_id": cardID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
