// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It ties the client services and the background queue sync worker into a
// single process lifecycle: bootstrap the admin identity when configured,
// keep draining the offline send queue, and shut down cleanly on a signal.
package client
