// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"masklint-cli/pkg/maskfile"
)

// Materialize writes a command's script into dir under
// "<qualified name, spaces replaced with underscores><handler extension>"
// and returns the file path. Creation is exclusive: an existing file of the
// same name is a hard error, never overwritten or appended to. This is the
// only write path into the output directory.
func Materialize(h Handler, script maskfile.Script, qualifiedName, dir string) (string, error) {
	fileName := strings.ReplaceAll(qualifiedName, " ", "_") + h.FileExtension()
	path := filepath.Join(dir, fileName)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", &CollisionError{FileName: fileName}
		}
		return "", fmt.Errorf("creating script file: %w", err)
	}
	if _, err := f.WriteString(h.Transform(script)); err != nil {
		f.Close()
		return "", fmt.Errorf("writing script file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing script file: %w", err)
	}
	return path, nil
}
