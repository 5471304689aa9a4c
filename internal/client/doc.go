// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client for the Mesto API.
//
// Each invocation runs a single command (signup, signin, cards, like, ...)
// through an [adapter.MestoAdapter] and prints the JSON result. The session
// token received on signin is kept in a file so that later invocations are
// authenticated.
package client
