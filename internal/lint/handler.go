// SPDX-License-Identifier: MPL-2.0

// Package lint implements the script extraction and lint dispatch engine:
// executor-tag handler selection, script materialization, external linter
// invocation, and finding normalization.
package lint

import (
	"errors"
	"fmt"
	"os/exec"

	"masklint-cli/pkg/maskfile"
)

// Handler is the per-language strategy for transforming and linting an
// embedded script. The set is closed: dispatch always lands on one of the
// variants below, with Catchall covering unrecognized executor tags.
type Handler int

const (
	// Catchall handles scripts no dedicated linter exists for.
	Catchall Handler = iota
	// Shellcheck lints shell scripts with the external shellcheck binary.
	Shellcheck
	// Ruff lints Python scripts with the external ruff binary.
	Ruff
	// Rubocop lints Ruby scripts with the external rubocop binary.
	Rubocop
)

// HandlerFor returns the handler responsible for an executor tag. Dispatch
// is total: unrecognized tags fall back to Catchall.
func HandlerFor(executor string) Handler {
	switch executor {
	case "sh", "bash", "zsh":
		return Shellcheck
	case "py", "python":
		return Ruff
	case "rb", "ruby":
		return Rubocop
	default:
		return Catchall
	}
}

// String returns the handler name, which doubles as the linter binary name
// for every handler except Catchall.
func (h Handler) String() string {
	switch h {
	case Shellcheck:
		return "shellcheck"
	case Ruff:
		return "ruff"
	case Rubocop:
		return "rubocop"
	default:
		return "catchall"
	}
}

// FileExtension returns the extension for materialized script files.
// Catchall scripts are written without one.
func (h Handler) FileExtension() string {
	switch h {
	case Shellcheck:
		return ".sh"
	case Ruff:
		return ".py"
	case Rubocop:
		return ".rb"
	default:
		return ""
	}
}

// Transform produces the file content for a script. Shellcheck prepends an
// interpreter marker line so the linter can tell sh from bash from zsh; the
// marker path is intentionally non-standard, the file is never executed.
// All other handlers write the source unchanged.
func (h Handler) Transform(script maskfile.Script) string {
	if h == Shellcheck {
		return fmt.Sprintf("#!/bin/usr/env %s\n%s", script.Executor, script.Source)
	}
	return script.Source
}

// Execute runs the handler's external linter against the materialized file
// at path and returns the normalized findings. Catchall never spawns a
// process and always succeeds with a fixed message.
func (h Handler) Execute(path string) (string, error) {
	switch h {
	case Shellcheck:
		out, err := runLinter(h, "shellcheck", path)
		if err != nil {
			return "", err
		}
		return normalizeShellcheck(out, path), nil
	case Ruff:
		out, err := runLinter(h, "ruff", "check", "--output-format=full", "--no-cache", path)
		if err != nil {
			return "", err
		}
		return normalizeRuff(out, path), nil
	case Rubocop:
		out, err := runLinter(h, "rubocop", "--format=clang", "--display-style-guide", path)
		if err != nil {
			return "", err
		}
		return normalizeRubocop(out, path), nil
	default:
		return "no linter found for target", nil
	}
}

// runLinter spawns the linter and captures its stdout, blocking until the
// process exits. A non-zero exit is not a failure: that is how linters
// report findings. A spawn failure caused by a missing binary is
// distinguished from every other failure so the caller can tell the user
// what to install.
func runLinter(h Handler, name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), nil
		}
		if errors.Is(err, exec.ErrNotFound) {
			return "", &LinterNotFoundError{Handler: h}
		}
		return "", fmt.Errorf("running %s: %w", h, err)
	}
	return string(out), nil
}
