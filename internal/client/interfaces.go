// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front of the admin console.
type UI interface {
	// Run blocks until the admin quits or ctx is cancelled.
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)
