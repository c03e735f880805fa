package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/ssl-monitor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openAPIView is the part of the document the tests inspect.
type openAPIView struct {
	OpenAPI string `json:"openapi"`
	Info    struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Version     string `json:"version"`
	} `json:"info"`
	Paths map[string]map[string]struct {
		Summary   string `json:"summary"`
		Responses map[string]struct {
			Content map[string]struct {
				Schema map[string]any `json:"schema"`
			} `json:"content"`
		} `json:"responses"`
	} `json:"paths"`
}

func fetchOpenAPI(t *testing.T) openAPIView {
	t.Helper()

	router, _ := newTestRouter(t, testConfig())
	rr := serve(router, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var doc openAPIView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
	return doc
}

func TestOpenAPI_InfoFromServiceMetadata(t *testing.T) {
	doc := fetchOpenAPI(t)

	assert.Equal(t, "3.1.0", doc.OpenAPI)
	assert.Equal(t, "SSL Monitor Python Service", doc.Info.Title)
	assert.Equal(t, "SSL certificate monitoring service", doc.Info.Description)
	assert.Equal(t, "1.0.0", doc.Info.Version)
}

func TestOpenAPI_OneEntryPerRoute(t *testing.T) {
	doc := fetchOpenAPI(t)

	for _, path := range []string{"/", "/health", "/version", "/metrics", "/openapi.json"} {
		ops, ok := doc.Paths[path]
		require.True(t, ok, "missing path %s", path)
		assert.Contains(t, ops, "get")
	}
	assert.Len(t, doc.Paths, 5)
}

func TestOpenAPI_HealthSchemaInlined(t *testing.T) {
	doc := fetchOpenAPI(t)

	schema := doc.Paths["/health"]["get"].Responses["200"].Content["application/json"].Schema
	require.NotNil(t, schema)
	assert.Equal(t, "object", schema["type"])
	assert.NotContains(t, schema, "$ref")
	assert.NotContains(t, schema, "$schema")

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "status")
}

func TestNewOpenAPIDocument_ErrorResponseOnEveryOperation(t *testing.T) {
	raw, err := newOpenAPIDocument(models.ServiceInfo{Title: "t", Version: "v"}, []endpoint{
		{method: http.MethodGet, path: "/", contentType: "application/json", response: models.MessageResponse{}},
	})
	require.NoError(t, err)

	var doc openAPIView
	require.NoError(t, json.Unmarshal(raw, &doc))

	for path, ops := range doc.Paths {
		for method, op := range ops {
			assert.Contains(t, op.Responses, "default", "%s %s", method, path)
		}
	}
}
