package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRepositoryNotFound       = errors.New("no git repository found")
	ErrUnresolvableHead         = errors.New("HEAD is not a direct reference")
	ErrUnresolvablePath         = errors.New("cannot be resolved to a path")
	ErrUnsupportedPathComponent = errors.New("unsupported path component")
)

// NoRepositoryError is returned when neither the starting path nor any of its
// ancestors is inside a repository
type NoRepositoryError struct {
	Path string
}

func (e *NoRepositoryError) Error() string {
	return fmt.Sprintf("no git repository found at %q (try a larger --depth to search subdirectories)", e.Path)
}

func (e *NoRepositoryError) Unwrap() error {
	return ErrRepositoryNotFound
}
