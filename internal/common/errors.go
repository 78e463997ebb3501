// Package common defines sentinel errors shared across gophdiary layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorEmptyContent = errors.New("empty content")

	// Terminal input errors.
	ErrInputClosed = errors.New("input closed")
)
