// Package http implements the HTTP transport layer of the service.
//
// It wires the routes into the service shell and provides the middleware
// chain in front of them: request tracing, access logging, panic recovery,
// request metrics, the cross-origin policy, a request timeout and response
// compression. Response bodies come from the service layer.
package http
