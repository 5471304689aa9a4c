// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-mesto/internal/errs"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecover)
	router.Use(h.withCORS())
	router.Use(middleware.Compress(5, "application/json"))
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	// must be set before groups so that they inherit the handlers
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/signup", h.signUp)
		r.Post("/signin", h.signIn)
		r.Get("/logout", h.logout)
		r.Delete("/logout", h.logout)
	})

	// routes behind the auth gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users", h.listUsers)
		r.Get("/users/me", h.getMe)
		r.Patch("/users/me", h.updateProfile)
		r.Patch("/users/me/avatar", h.updateAvatar)
		r.Get("/users/{userId}", h.getUser)

		r.Get("/cards", h.listCards)
		r.Post("/cards", h.createCard)
		r.Delete("/cards/{cardId}", h.deleteCard)
		r.Put("/cards/{cardId}/likes", h.likeCard)
		r.Delete("/cards/{cardId}/likes", h.unlikeCard)
	})

	return router
}

// notFound answers unknown paths and unsupported methods alike, so a
// client cannot tell which paths exist.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, errs.Errorf(errs.KindNotFound, "http.notFound", "%w: %s %s", ErrRouteNotFound, r.Method, r.URL.Path))
}
