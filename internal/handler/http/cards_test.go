// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mesto/internal/app"
	"github.com/MKhiriev/go-mesto/internal/errs"
	"github.com/MKhiriev/go-mesto/models"
)

func TestListCards(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthenticated()
	m.cards.EXPECT().ListCards(gomock.Any()).Return([]models.Card{
		{ID: testCardID, Name: "Baikal", Owner: testUserID, Likes: []string{}},
	}, nil)

	rr := serve(h, http.MethodGet, "/cards", "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	var cards []models.Card
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "Baikal", cards[0].Name)
}

func TestCreateCard(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthenticated()
	m.cards.EXPECT().CreateCard(gomock.Any(), testUserID, models.CardCreateRequest{Name: "Baikal", Link: "https://example.com/b.jpg"}).
		Return(models.Card{ID: testCardID, Name: "Baikal", Owner: testUserID, Likes: []string{}}, nil)

	rr := serve(h, http.MethodPost, "/cards", `{"name":"Baikal","link":"https://example.com/b.jpg"}`, true)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"owner":"`+testUserID+`"`)
}

func TestCardActions(t *testing.T) {
	card := models.Card{ID: testCardID, Owner: testUserID, Likes: []string{testUserID}}

	tests := []struct {
		name   string
		method string
		path   string
		expect func(m testMocks) *gomock.Call
	}{
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/cards/" + testCardID,
			expect: func(m testMocks) *gomock.Call {
				return m.cards.EXPECT().DeleteCard(gomock.Any(), testUserID, models.ObjectID(testCardID))
			},
		},
		{
			name:   "like",
			method: http.MethodPut,
			path:   "/cards/" + testCardID + "/likes",
			expect: func(m testMocks) *gomock.Call {
				return m.cards.EXPECT().LikeCard(gomock.Any(), testUserID, models.ObjectID(testCardID))
			},
		},
		{
			name:   "unlike",
			method: http.MethodDelete,
			path:   "/cards/" + testCardID + "/likes",
			expect: func(m testMocks) *gomock.Call {
				return m.cards.EXPECT().UnlikeCard(gomock.Any(), testUserID, models.ObjectID(testCardID))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.expectAuthenticated()
			tt.expect(m).Return(card, nil)

			rr := serve(h, tt.method, tt.path, "", true)

			require.Equal(t, http.StatusOK, rr.Code)
			var got models.Card
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, card.ID, got.ID)
		})
	}
}

func TestDeleteCard_Errors(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "someone else's card",
			serviceErr:  errs.E(errs.KindForbidden, "cardService.DeleteCard", nil),
			wantStatus:  http.StatusForbidden,
			wantMessage: app.MsgForbidden,
		},
		{
			name:        "already deleted",
			serviceErr:  errs.E(errs.KindNotFound, "store.FindCardByID", nil),
			wantStatus:  http.StatusNotFound,
			wantMessage: app.MsgNotFound,
		},
		{
			name:        "malformed id",
			serviceErr:  errs.E(errs.KindInvalidData, "validators.Validate", nil),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidData,
		},
		{
			name:        "store failure",
			serviceErr:  assert.AnError,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.expectAuthenticated()
			m.cards.EXPECT().DeleteCard(gomock.Any(), testUserID, gomock.Any()).Return(models.Card{}, tt.serviceErr)

			rr := serve(h, http.MethodDelete, "/cards/"+testCardID, "", true)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
		})
	}
}
