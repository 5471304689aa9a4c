// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the body of every error response and of the
// sign-in / sign-out confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}
