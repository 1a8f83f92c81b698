// Package apperr defines sentinel errors shared across packages.
package apperr

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrAlreadyExists = errors.New("table of contents already exists")
	ErrNoHeadings    = errors.New("no headings")
	ErrUnsupported   = errors.New("unsupported")
)
