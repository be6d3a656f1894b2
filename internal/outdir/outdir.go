// SPDX-License-Identifier: MPL-2.0

// Package outdir provisions the directory scripts are materialized into:
// either a caller-chosen persistent path or a temporary directory scoped to
// a single run.
package outdir

import (
	"fmt"
	"os"
)

// Dir is a provisioned output directory. Ephemeral directories live for the
// whole run and are removed by Cleanup; persistent ones are left in place.
type Dir struct {
	// Path is the directory path.
	Path string

	ephemeral bool
}

// CreateError reports that provisioning an output directory failed. It
// wraps the underlying filesystem error.
type CreateError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *CreateError) Error() string {
	return fmt.Sprintf("creating output directory %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *CreateError) Unwrap() error { return e.Err }

// At provisions a persistent output directory at path, creating it and any
// missing parents. Cleanup leaves it in place.
func At(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, &CreateError{Path: path, Err: err}
	}
	return &Dir{Path: path}, nil
}

// Ephemeral provisions a fresh temporary directory scoped to the run.
// Callers must defer Cleanup so the directory is removed on every exit
// path, including early termination from any error.
func Ephemeral() (*Dir, error) {
	path, err := os.MkdirTemp("", "masklint-*")
	if err != nil {
		return nil, &CreateError{Path: os.TempDir(), Err: err}
	}
	return &Dir{Path: path, ephemeral: true}, nil
}

// Cleanup removes an ephemeral directory and everything materialized into
// it. It is a no-op for persistent directories.
func (d *Dir) Cleanup() error {
	if !d.ephemeral {
		return nil
	}
	return os.RemoveAll(d.Path)
}
