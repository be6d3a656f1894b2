// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrLinterNotFound is the sentinel error wrapped by LinterNotFoundError.
var ErrLinterNotFound = errors.New("linter executable not found")

// LinterNotFoundError reports that a handler's external binary is missing
// from $PATH. It wraps ErrLinterNotFound for errors.Is() compatibility.
type LinterNotFoundError struct {
	Handler Handler
}

// Error implements the error interface.
func (e *LinterNotFoundError) Error() string {
	return fmt.Sprintf("executable for %s not found in $PATH", e.Handler)
}

// Unwrap returns ErrLinterNotFound so callers can use errors.Is.
func (e *LinterNotFoundError) Unwrap() error { return ErrLinterNotFound }

// CollisionError reports that two commands materialize to the same file
// name, which happens when they resolve to the same qualified name. It
// wraps fs.ErrExist for errors.Is() compatibility.
type CollisionError struct {
	FileName string
}

// Error implements the error interface.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("script file %s already exists in the output directory", e.FileName)
}

// Unwrap returns fs.ErrExist so callers can use errors.Is.
func (e *CollisionError) Unwrap() error { return fs.ErrExist }
