// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the admin console process lifecycle.
//
// It runs the terminal UI under a signal-aware context, treats a keyboard
// quit as a normal exit and closes the local preference storage on the way
// out.
package client
