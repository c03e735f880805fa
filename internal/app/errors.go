// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

var (
	// ErrRegistrationClosed is returned by registration methods once the
	// shell has started serving.
	ErrRegistrationClosed = errors.New("registration is closed: app is serving")

	// ErrInvalidRoute is returned when a route has no method, a path that
	// does not start with "/" or a nil handler.
	ErrInvalidRoute = errors.New("invalid route")

	// ErrDuplicateRoute is returned when the same method and path are
	// registered twice.
	ErrDuplicateRoute = errors.New("route is already registered")
)
