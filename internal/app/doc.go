// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the service shell: the process-wide application
// object that owns the service metadata together with the ordered
// middleware and route registry, plus the message strings shared by the
// HTTP layer.
//
// An [App] lives in two phases. While configuring, [App.Use] and
// [App.Handle] accept registrations. The first call to [App.Handler] closes
// registration and returns the dispatcher; from then on the shell is
// read-only and safe to share between request goroutines.
package app
