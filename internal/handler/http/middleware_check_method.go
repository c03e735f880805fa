// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/ssl-monitor/internal/app"
	"github.com/MKhiriev/ssl-monitor/internal/logger"
	"github.com/MKhiriev/ssl-monitor/internal/utils"
	"github.com/MKhiriev/ssl-monitor/models"
	"github.com/go-chi/chi/v5"
)

// MethodNotAllowed returns the handler chi invokes when a request path
// matches a registered route but its method does not. It is meant to be
// passed to [app.App.MethodNotAllowed], which supplies the built router.
//
// The response is a JSON 405 whose Allow header lists the methods the
// matched route does handle. The lookup compares each route pattern with
// the raw request path, so only exact pattern matches contribute.
func MethodNotAllowed(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		body := models.ErrorResponse{Error: app.MsgMethodNotAllowed}
		if _, err := utils.WriteJSON(w, body, http.StatusMethodNotAllowed); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing method not allowed response")
		}
	}
}

func allowedMethods(router chi.Routes, path string) []string {
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}

		methods := make([]string, 0, len(route.Handlers))
		for method := range route.Handlers {
			methods = append(methods, method)
		}
		slices.Sort(methods)
		return methods
	}

	return nil
}

// notFound answers requests for paths no route matches.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	body := models.ErrorResponse{Error: app.MsgNotFound}
	if _, err := utils.WriteJSON(w, body, http.StatusNotFound); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing not found response")
	}
}
