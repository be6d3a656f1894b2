// SPDX-License-Identifier: MPL-2.0

// Package maskfile parses maskfile.md documents into a command tree.
//
// A maskfile is a markdown document: the level-1 heading titles the file,
// every deeper heading declares a command, and the first fenced code block
// under a heading is that command's script, tagged with the fence info
// string as the executor. Heading depth defines command nesting.
package maskfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type (
	// Maskfile is a parsed command specification document.
	Maskfile struct {
		// Title is the text of the level-1 heading, if any.
		Title string
		// Description is the prose before the first command heading.
		Description string
		// Commands are the root-level commands in document order.
		Commands []Command
	}

	// Command is a single named command. Subcommand order is significant
	// and preserved from the document.
	Command struct {
		// Name is the command's own name, unique among its siblings.
		Name string
		// Description is the prose between the heading and the script.
		Description string
		// Script is the embedded script, nil for grouping-only commands.
		Script *Script
		// Subcommands are the nested commands in document order.
		Subcommands []Command
	}

	// Script is an embedded script body with its executor tag.
	Script struct {
		// Executor identifies the scripting language ("sh", "py", ...).
		// It may be empty or unrecognized; dispatch decides what to do.
		Executor string
		// Source is the raw script text.
		Source string
	}
)

// ParseError reports a malformed maskfile.
type ParseError struct {
	Msg string
}

// Error implements the error interface.
func (e *ParseError) Error() string { return "parsing maskfile: " + e.Msg }

// Load reads and parses the maskfile at path.
func Load(path string) (*Maskfile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading maskfile: %w", err)
	}
	return Parse(src)
}

// entry is a flattened command heading together with whatever description
// and script the document attached to it, before nesting is resolved.
type entry struct {
	level  int
	name   string
	desc   string
	script *Script
}

// Parse parses maskfile markdown source into a command tree.
func Parse(src []byte) (*Maskfile, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	mf := &Maskfile{}
	var entries []entry
	var intro []string

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 1 {
				if mf.Title == "" {
					mf.Title = nodeText(node, src)
				}
				continue
			}
			name, err := commandName(nodeText(node, src))
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry{level: node.Level, name: name})
		case *ast.FencedCodeBlock:
			if len(entries) == 0 {
				continue
			}
			last := &entries[len(entries)-1]
			if last.script != nil {
				continue
			}
			last.script = &Script{
				Executor: string(node.Language(src)),
				Source:   blockText(node, src),
			}
		case *ast.Paragraph:
			if len(entries) == 0 {
				intro = append(intro, nodeText(node, src))
				continue
			}
			last := &entries[len(entries)-1]
			if last.desc == "" && last.script == nil {
				last.desc = nodeText(node, src)
			}
		}
	}

	mf.Description = strings.Join(intro, "\n")
	mf.Commands = assemble(entries)
	return mf, nil
}

// assemble nests a flat heading sequence by level: an entry owns every
// following entry with a deeper level, up to the next entry at its own
// level or shallower. Document order is preserved throughout.
func assemble(entries []entry) []Command {
	var cmds []Command
	for i := 0; i < len(entries); {
		base := entries[i]
		j := i + 1
		for j < len(entries) && entries[j].level > base.level {
			j++
		}
		cmds = append(cmds, Command{
			Name:        base.name,
			Description: base.desc,
			Script:      base.script,
			Subcommands: assemble(entries[i+1 : j]),
		})
		i = j
	}
	return cmds
}

// commandName extracts a command's own name from its heading text.
// Subcommand headings repeat the parent chain ("### services start") and
// headings may declare positional args in parentheses ("## serve (port)"):
// the args are stripped and the name is the last remaining field.
func commandName(heading string) (string, error) {
	if idx := strings.IndexByte(heading, '('); idx >= 0 {
		heading = heading[:idx]
	}
	fields := strings.Fields(heading)
	if len(fields) == 0 {
		return "", &ParseError{Msg: "command heading has no name"}
	}
	return fields[len(fields)-1], nil
}

// nodeText collects the plain text of an inline-bearing node.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := c.(*ast.Text); ok {
				b.Write(t.Segment.Value(src))
				if t.SoftLineBreak() || t.HardLineBreak() {
					b.WriteByte(' ')
				}
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// blockText collects the verbatim lines of a fenced code block.
func blockText(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}
