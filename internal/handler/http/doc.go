// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the Mesto API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, panic recovery, CORS,
// response compression and the cookie-based auth gate are handled in this
// package before requests are delegated to the service layer. Every failure
// is turned into a response by a single error normalizer (see writeError),
// so handlers never choose status codes for errors themselves.
package http
