package models

// HealthStatusOK is the only status reported by the liveness probe.
const HealthStatusOK = "ok"

// MessageResponse is the body of the root endpoint.
type MessageResponse struct {
	Message string `json:"message" jsonschema:"required"`
}

// HealthResponse is the body of the liveness probe.
//
// It asserts only that the process is scheduling requests, not that any
// downstream dependency is healthy.
type HealthResponse struct {
	Status string `json:"status" jsonschema:"required,enum=ok"`
}

// ErrorResponse is the body written for requests the router cannot serve
// (unknown path, unsupported method, recovered panic).
type ErrorResponse struct {
	Error string `json:"error" jsonschema:"required"`
}

// VersionResponse carries the configured API version together with the
// linker-injected build metadata of the binary.
type VersionResponse struct {
	Version      string `json:"version" jsonschema:"required"`
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}
