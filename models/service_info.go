// Package models holds the data types shared between the service, handler
// and adapter layers: service metadata, build info and the JSON bodies
// written by the HTTP endpoints.
package models

// ServiceInfo is the descriptive metadata of the running service.
//
// It is fixed at startup and used for documentation output (the OpenAPI
// document and the version endpoint).
type ServiceInfo struct {
	// Title is the displayed service name.
	Title string `json:"title"`

	// Description is a human-readable summary of the service.
	Description string `json:"description"`

	// Version is the semantic version string of the service API.
	Version string `json:"version"`
}
