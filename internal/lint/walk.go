// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"io"

	"masklint-cli/pkg/maskfile"

	"github.com/charmbracelet/log"
)

// Walker drives a depth-first, preorder traversal of the command tree,
// materializing every embedded script and, unless ExtractOnly is set,
// running the matching linter and reporting its findings. The walk is fully
// sequential: one script at a time, each linter blocking until it exits.
// Any error aborts the walk immediately, leaving already-written files in
// place.
type Walker struct {
	// OutDir is the directory scripts are materialized into.
	OutDir string
	// ExtractOnly skips linter execution and reporting entirely.
	ExtractOnly bool
	// Out receives the finding reports.
	Out io.Writer
	// Emphasize styles report headers for interactive terminals.
	Emphasize bool
	// Logger receives debug-level progress; nil disables logging.
	Logger *log.Logger
}

// Walk visits cmd and then its subcommands in document order. parent is the
// qualified name of the enclosing command chain, empty for root-level
// commands. Commands without a script produce no side effects of their own
// but their subcommands are still visited.
func (w *Walker) Walk(cmd maskfile.Command, parent string) error {
	qualifiedName := cmd.Name
	if parent != "" {
		qualifiedName = parent + " " + cmd.Name
	}

	if cmd.Script != nil {
		if err := w.visit(qualifiedName, *cmd.Script); err != nil {
			return err
		}
	}

	for _, sub := range cmd.Subcommands {
		if err := w.Walk(sub, qualifiedName); err != nil {
			return err
		}
	}
	return nil
}

// visit materializes a single script and, unless in extraction-only mode,
// lints it and reports any findings.
func (w *Walker) visit(qualifiedName string, script maskfile.Script) error {
	handler := HandlerFor(script.Executor)
	w.debug("materializing script", "command", qualifiedName, "handler", handler)

	path, err := Materialize(handler, script, qualifiedName, w.OutDir)
	if err != nil {
		return err
	}
	if w.ExtractOnly {
		return nil
	}

	w.debug("running linter", "command", qualifiedName, "linter", handler)
	findings, err := handler.Execute(path)
	if err != nil {
		return err
	}
	report(w.Out, qualifiedName, findings, w.Emphasize)
	return nil
}

func (w *Walker) debug(msg string, args ...any) {
	if w.Logger != nil {
		w.Logger.Debug(msg, args...)
	}
}
