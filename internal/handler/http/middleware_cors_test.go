// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "https://dashboard.example.com"

func preflight(path, origin, method, headers string) *http.Request {
	req := httptest.NewRequest(http.MethodOptions, path, nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", method)
	if headers != "" {
		req.Header.Set("Access-Control-Request-Headers", headers)
	}
	return req
}

func withOrigin(method, path, origin string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Origin", origin)
	return req
}

func TestCORS_ActualRequest_WildcardOrigin(t *testing.T) {
	router, _ := newTestRouter(t, testConfig())

	rr := serve(router, withOrigin(http.MethodGet, "/", testOrigin))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Credentials"))
	assert.True(t, strings.EqualFold(traceIDHeader, rr.Header().Get("Access-Control-Expose-Headers")))
}

func TestCORS_NoOriginHeader_NoCORSHeaders(t *testing.T) {
	router, _ := newTestRouter(t, testConfig())

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight_AllowedOrigin(t *testing.T) {
	cfg := testConfig()
	cfg.CORS.MaxAge = 600
	router, _ := newTestRouter(t, cfg)

	rr := serve(router, preflight("/health", testOrigin, http.MethodGet, "X-Custom-Header"))

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.EqualFold(http.MethodGet, rr.Header().Get("Access-Control-Allow-Methods")))
	assert.True(t, strings.EqualFold("X-Custom-Header", rr.Header().Get("Access-Control-Allow-Headers")))
	assert.Equal(t, "600", rr.Header().Get("Access-Control-Max-Age"))
	assert.Empty(t, rr.Body.String())
}

func TestCORS_Preflight_WildcardMethodsCoverEveryStandardMethod(t *testing.T) {
	router, _ := newTestRouter(t, testConfig())

	for _, method := range standardMethods {
		t.Run(method, func(t *testing.T) {
			rr := serve(router, preflight("/", testOrigin, method, ""))

			require.Equal(t, http.StatusNoContent, rr.Code)
			assert.True(t, strings.EqualFold(method, rr.Header().Get("Access-Control-Allow-Methods")))
		})
	}
}

func TestCORS_Preflight_MethodNotInList(t *testing.T) {
	cfg := testConfig()
	cfg.CORS.AllowMethods = []string{http.MethodGet}
	router, _ := newTestRouter(t, cfg)

	rr := serve(router, preflight("/health", testOrigin, http.MethodDelete, ""))

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORS_ExplicitOrigins(t *testing.T) {
	cfg := testConfig()
	cfg.CORS.AllowOrigins = []string{testOrigin}
	router, _ := newTestRouter(t, cfg)

	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{
			name:       "listed origin is echoed",
			origin:     testOrigin,
			wantOrigin: testOrigin,
		},
		{
			name:       "unlisted origin gets no header",
			origin:     "https://evil.example.org",
			wantOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(router, withOrigin(http.MethodGet, "/health", tt.origin))

			// the request is served either way
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, `{"status":"ok"}`, rr.Body.String())
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_Preflight_DisallowedOrigin(t *testing.T) {
	cfg := testConfig()
	cfg.CORS.AllowOrigins = []string{testOrigin}
	router, _ := newTestRouter(t, cfg)

	rr := serve(router, preflight("/health", "https://evil.example.org", http.MethodGet, ""))

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORS_Credentials_ExplicitOrigin(t *testing.T) {
	cfg := testConfig()
	cfg.CORS.AllowOrigins = []string{testOrigin}
	cfg.CORS.AllowCredentials = true
	router, _ := newTestRouter(t, cfg)

	rr := serve(router, withOrigin(http.MethodGet, "/", testOrigin))

	assert.Equal(t, testOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_Credentials_WildcardReflectsOrigin(t *testing.T) {
	cfg := testConfig()
	cfg.CORS.AllowCredentials = true
	router, _ := newTestRouter(t, cfg)

	for _, origin := range []string{testOrigin, "http://localhost:3000"} {
		t.Run(origin, func(t *testing.T) {
			rr := serve(router, withOrigin(http.MethodGet, "/health", origin))

			assert.Equal(t, origin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestCORS_Credentials_WildcardPreflight(t *testing.T) {
	cfg := testConfig()
	cfg.CORS.AllowCredentials = true
	router, _ := newTestRouter(t, cfg)

	rr := serve(router, preflight("/", testOrigin, http.MethodPost, "Content-Type"))

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, testOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_MethodNotAllowedCarriesHeaders(t *testing.T) {
	router, _ := newTestRouter(t, testConfig())

	rr := serve(router, withOrigin(http.MethodPost, "/health", testOrigin))

	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsMethods(t *testing.T) {
	assert.Equal(t, standardMethods, corsMethods([]string{"*"}))
	assert.Equal(t, standardMethods, corsMethods([]string{http.MethodGet, "*"}))
	assert.Equal(t, []string{http.MethodGet}, corsMethods([]string{http.MethodGet}))
}

func TestCorsOptions_WildcardWithCredentialsUsesOriginFunc(t *testing.T) {
	cfg := testConfig()
	cfg.CORS.AllowCredentials = true
	h, _ := newTestHandler(t, cfg)

	opts := h.corsOptions()

	assert.Nil(t, opts.AllowedOrigins)
	require.NotNil(t, opts.AllowOriginFunc)
	assert.True(t, opts.AllowOriginFunc("https://anything.example"))
	assert.True(t, opts.AllowCredentials)
	assert.Equal(t, http.StatusNoContent, opts.OptionsSuccessStatus)
}
