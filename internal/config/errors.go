package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. They are wrapped
// with the offending value, so callers match them with [errors.Is].
var (
	// ErrInvalidServerConfigs indicates an unparsable listen address or a
	// negative timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCORSConfigs indicates a malformed allowed origin or a
	// negative max age.
	ErrInvalidCORSConfigs = errors.New("invalid cors configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidMetricsConfigs indicates a metrics path that is relative or
	// shadows a built-in route.
	ErrInvalidMetricsConfigs = errors.New("invalid metrics configuration")
)
