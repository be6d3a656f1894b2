// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// headerStyle emphasizes report headers: bold, underlined, cyan.
var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Underline(true).
	Foreground(lipgloss.Color("#06B6D4"))

// report prints a command's findings: the qualified name as a header, the
// finding text, then a blank line. Empty findings print nothing. Reports
// are written in traversal order, never buffered or reordered.
func report(out io.Writer, qualifiedName, findings string, emphasize bool) {
	if findings == "" {
		return
	}
	fmt.Fprintf(out, "%s\n%s\n\n", commandHeader(qualifiedName, emphasize), findings)
}

// commandHeader formats the report header. Emphasis is an explicit caller
// decision rather than global terminal state.
func commandHeader(qualifiedName string, emphasize bool) string {
	if !emphasize {
		return qualifiedName
	}
	return headerStyle.Render(qualifiedName)
}
