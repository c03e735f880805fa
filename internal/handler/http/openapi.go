package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/ssl-monitor/internal/logger"
	"github.com/MKhiriev/ssl-monitor/models"
	"github.com/invopop/jsonschema"
)

const (
	openAPIPath    = "/openapi.json"
	openAPIVersion = "3.1.0"
)

// openAPIDocument is the subset of an OpenAPI 3.1 document the service
// publishes: metadata and one operation per route.
type openAPIDocument struct {
	OpenAPI string                                 `json:"openapi"`
	Info    openAPIInfo                            `json:"info"`
	Paths   map[string]map[string]openAPIOperation `json:"paths"`
}

type openAPIInfo struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

type openAPIOperation struct {
	Summary   string                     `json:"summary,omitempty"`
	Responses map[string]openAPIResponse `json:"responses"`
}

type openAPIResponse struct {
	Description string                      `json:"description"`
	Content     map[string]openAPIMediaType `json:"content,omitempty"`
}

type openAPIMediaType struct {
	Schema *jsonschema.Schema `json:"schema,omitempty"`
}

// newOpenAPIDocument renders the API document once. Response schemas are
// reflected from the body types and inlined, since the document carries
// no components section.
func newOpenAPIDocument(info models.ServiceInfo, endpoints []endpoint) ([]byte, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
		Anonymous:      true,
	}

	schemaOf := func(v any) *jsonschema.Schema {
		schema := reflector.Reflect(v)
		schema.Version = ""
		return schema
	}

	errorResponse := openAPIResponse{
		Description: "Error",
		Content: map[string]openAPIMediaType{
			"application/json": {Schema: schemaOf(models.ErrorResponse{})},
		},
	}

	doc := openAPIDocument{
		OpenAPI: openAPIVersion,
		Info: openAPIInfo{
			Title:       info.Title,
			Description: info.Description,
			Version:     info.Version,
		},
		Paths: make(map[string]map[string]openAPIOperation, len(endpoints)+1),
	}

	add := func(method, path, summary, contentType string, response any) {
		ok := openAPIResponse{Description: "Successful Response"}
		if contentType != "" {
			media := openAPIMediaType{}
			if response != nil {
				media.Schema = schemaOf(response)
			}
			ok.Content = map[string]openAPIMediaType{contentType: media}
		}

		if doc.Paths[path] == nil {
			doc.Paths[path] = make(map[string]openAPIOperation)
		}
		doc.Paths[path][strings.ToLower(method)] = openAPIOperation{
			Summary: summary,
			Responses: map[string]openAPIResponse{
				"200":     ok,
				"default": errorResponse,
			},
		}
	}

	for _, e := range endpoints {
		add(e.method, e.path, e.summary, e.contentType, e.response)
	}
	add(http.MethodGet, openAPIPath, "API document", "application/json", nil)

	return json.Marshal(doc)
}

func (h *Handler) getOpenAPI(doc []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(doc); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing openapi document")
		}
	}
}
