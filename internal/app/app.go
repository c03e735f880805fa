// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/ssl-monitor/models"
	"github.com/go-chi/chi/v5"
)

// Middleware wraps a handler. The first registered middleware is the
// outermost one: it sees the request first and the response last.
type Middleware = func(http.Handler) http.Handler

// standardMethods are the methods the router dispatches on.
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

// Route is a registered method + path pair.
type Route struct {
	Method string
	Path   string
}

// App is the service shell.
type App struct {
	info models.ServiceInfo

	mu               sync.Mutex
	middlewares      []Middleware
	routes           []Route
	handlers         map[Route]http.Handler
	notFound         http.HandlerFunc
	methodNotAllowed func(router chi.Routes) http.HandlerFunc
	handler          http.Handler
}

// New creates a shell in the configuring phase. The metadata is accepted
// as is.
func New(info models.ServiceInfo) *App {
	return &App{
		info:     info,
		handlers: make(map[Route]http.Handler),
	}
}

// Info returns the service metadata.
func (a *App) Info() models.ServiceInfo {
	return a.info
}

// Use appends middlewares to the chain.
func (a *App) Use(middlewares ...Middleware) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.handler != nil {
		return ErrRegistrationClosed
	}

	a.middlewares = append(a.middlewares, middlewares...)
	return nil
}

// Handle registers handler for method and path.
func (a *App) Handle(method, path string, handler http.Handler) error {
	method = strings.ToUpper(strings.TrimSpace(method))
	if !slices.Contains(standardMethods, method) || !strings.HasPrefix(path, "/") || handler == nil {
		return fmt.Errorf("%w: %q %q", ErrInvalidRoute, method, path)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.handler != nil {
		return ErrRegistrationClosed
	}

	route := Route{Method: method, Path: path}
	if _, ok := a.handlers[route]; ok {
		return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, path)
	}

	a.routes = append(a.routes, route)
	a.handlers[route] = handler
	return nil
}

// Get registers a GET route.
func (a *App) Get(path string, handler http.HandlerFunc) error {
	return a.Handle(http.MethodGet, path, handler)
}

// NotFound overrides the response for unrouted paths.
func (a *App) NotFound(handler http.HandlerFunc) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.handler != nil {
		return ErrRegistrationClosed
	}

	a.notFound = handler
	return nil
}

// MethodNotAllowed overrides the response for a routed path requested with
// an unregistered method. The factory receives the built router so the
// handler can inspect the registered routes.
func (a *App) MethodNotAllowed(factory func(router chi.Routes) http.HandlerFunc) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.handler != nil {
		return ErrRegistrationClosed
	}

	a.methodNotAllowed = factory
	return nil
}

// Routes returns the registered routes in registration order.
func (a *App) Routes() []Route {
	a.mu.Lock()
	defer a.mu.Unlock()

	return slices.Clone(a.routes)
}

// Serving reports whether registration has been closed.
func (a *App) Serving() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.handler != nil
}

// Handler closes registration and returns the request dispatcher. Later
// calls return the same dispatcher.
func (a *App) Handler() http.Handler {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.handler != nil {
		return a.handler
	}

	router := chi.NewRouter()
	router.Use(a.middlewares...)

	for _, route := range a.routes {
		router.Method(route.Method, route.Path, a.handlers[route])
	}

	if a.notFound != nil {
		router.NotFound(a.notFound)
	}
	if a.methodNotAllowed != nil {
		router.MethodNotAllowed(a.methodNotAllowed(router))
	}

	a.handler = router
	return a.handler
}
