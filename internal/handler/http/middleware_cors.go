// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

// corsWildcard is accepted in every CORS list.
const corsWildcard = "*"

// standardMethods is what a wildcard method list expands to. rs/cors has
// no method wildcard of its own.
var standardMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
}

// withCORS builds the cross-origin policy middleware. Requests from a
// rejected origin pass through without the Access-Control-* headers: the
// browser enforces the policy, the server never refuses.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.New(h.corsOptions()).Handler
}

func (h *Handler) corsOptions() cors.Options {
	opts := cors.Options{
		AllowedOrigins:       h.cors.AllowOrigins,
		AllowedMethods:       corsMethods(h.cors.AllowMethods),
		AllowedHeaders:       h.cors.AllowHeaders,
		ExposedHeaders:       h.cors.ExposeHeaders,
		AllowCredentials:     h.cors.AllowCredentials,
		MaxAge:               h.cors.MaxAge,
		OptionsSuccessStatus: http.StatusNoContent,
		// zerolog's Printf writes at debug level.
		Logger: &h.logger.Logger,
	}

	// A credentialed response must name the origin, so the wildcard is
	// served by reflecting whatever origin the request carries.
	if h.cors.WildcardWithCredentials() {
		opts.AllowedOrigins = nil
		opts.AllowOriginFunc = func(string) bool { return true }
	}

	return opts
}

func corsMethods(methods []string) []string {
	if slices.Contains(methods, corsWildcard) {
		return slices.Clone(standardMethods)
	}
	return methods
}
