package adapter

import "errors"

var (
	ErrEmptyAddress      = errors.New("empty address")
	ErrInvalidAddress    = errors.New("address must include host and scheme")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrUnhealthy         = errors.New("service reported unhealthy")
	ErrRequestFailed     = errors.New("request failed")
	ErrMalformedResponse = errors.New("malformed response body")
)
