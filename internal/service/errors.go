package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTitleIsNotSpecified   = errors.New("app title is not specified")
)
