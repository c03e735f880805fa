// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

const (
	// MsgNotFound is returned when no route matches the request path.
	MsgNotFound = "not found"

	// MsgMethodNotAllowed is returned when the path is routed but not for
	// the requested method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgRootGreeting is the body message of the root endpoint.
	MsgRootGreeting = "SSL Monitor Python Service"
)
