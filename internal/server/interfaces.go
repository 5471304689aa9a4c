// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives (or the listener
// fails) and then shuts down gracefully. Shutdown may also be called
// directly to stop serving.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
