package models

import (
	"errors"
)

var (
	// ErrInvalidInput indicates caller-supplied data that cannot be worked
	// with, such as an empty topic term list.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration indicates an out-of-range tuning parameter, such as
	// a non-positive bootstrap size or a negative topn.
	ErrConfiguration = errors.New("configuration error")

	// ErrCollaborator indicates a failure in an external collaborator
	// (search or category lookup). It is propagated, never swallowed: a
	// suggestion run that hits one returns no partial result.
	ErrCollaborator = errors.New("collaborator error")
)
