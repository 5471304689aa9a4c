// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-mesto/internal/errs"
	"github.com/MKhiriev/go-mesto/internal/logger"
)

// withRecover turns a handler panic into a normalized 500 response.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().Bytes("stack", debug.Stack()).Msg("handler panicked")
			h.writeError(w, r, errs.E(errs.KindInternal, "http.withRecover", fmt.Errorf("%w: %v", ErrPanicRecovered, rec)))
		}()

		next.ServeHTTP(w, r)
	})
}
