// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a known failure mode with user guidance attached.
type Id int

const (
	MaskfileNotFoundId Id = iota + 1
	MaskfileParseErrorId
	OutputDirCreateFailedId
	OutputCollisionId
	LinterNotFoundId
	ConfigLoadFailedId
)

// MarkdownMsg is markdown text rendered for the terminal.
type MarkdownMsg string

// HttpLink points at external documentation.
type HttpLink string

// Issue couples a failure mode with rendered guidance for the user.
type Issue struct {
	id       Id          // ID used to look up the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue guidance with the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.extLinks {
			extraMd += "- " + string(link) + "\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	maskfileNotFoundIssue = &Issue{
		id: MaskfileNotFoundId,
		mdMsg: `
# No maskfile found!

We looked for the maskfile but couldn't read it.

## Things you can try:
- Run masklint from the directory containing your maskfile.md
- Point masklint at the right file:
~~~
$ masklint --maskfile path/to/maskfile.md run
~~~

- Or set a default in your config:
~~~toml
maskfile = "path/to/maskfile.md"
~~~`,
	}

	maskfileParseErrorIssue = &Issue{
		id: MaskfileParseErrorId,
		mdMsg: `
# Failed to parse the maskfile!

Your maskfile contains a command heading masklint can't make sense of.

## A valid maskfile looks like:

    # My tasks

    ## build

    ` + "```sh" + `
    echo building
    ` + "```" + `

    ## services

    ### services start

Every level-2+ heading declares a command; the code fence below it is the
command's script, tagged with the language.`,
	}

	outputDirCreateFailedIssue = &Issue{
		id: OutputDirCreateFailedId,
		mdMsg: `
# Could not create the output directory!

## Things you can try:
- Check the --output path for typos
- Check you have write permission on the parent directory
- Pick a different directory:
~~~
$ masklint dump --output /tmp/masklint-scripts
~~~`,
	}

	outputCollisionIssue = &Issue{
		id: OutputCollisionId,
		mdMsg: `
# Two commands map to the same script file!

Script files are named after the command's qualified name, so two commands
resolving to the same qualified name cannot both be extracted.

## Things you can try:
- Rename one of the clashing commands in your maskfile
- For dump, point --output at an empty directory: extraction never
  overwrites existing files`,
	}

	linterNotFoundIssue = &Issue{
		id: LinterNotFoundId,
		mdMsg: `
# A linter executable is missing!

masklint delegates the actual linting to external tools, one per language:

- **shellcheck** for sh, bash and zsh scripts
- **ruff** for Python scripts
- **rubocop** for Ruby scripts

## Things you can try:
- Install the tool named in the error above and make sure it is in $PATH
- Or extract the scripts without linting:
~~~
$ masklint dump --output scripts/
~~~`,
		extLinks: []HttpLink{
			"https://www.shellcheck.net",
			"https://docs.astral.sh/ruff/",
			"https://rubocop.org",
		},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

## Configuration file locations:
- Linux: ~/.config/masklint/config.toml
- macOS: ~/Library/Application Support/masklint/config.toml
- Windows: %APPDATA%\masklint\config.toml

## Things you can try:
- Recreate a default configuration:
~~~
$ masklint config init --force
~~~

- Check the TOML syntax, or remove the file to use defaults

## Example configuration:
~~~toml
maskfile = "maskfile.md"

[ui]
verbose = false
color = "auto"
~~~`,
	}

	issues = map[Id]*Issue{
		maskfileNotFoundIssue.Id():      maskfileNotFoundIssue,
		maskfileParseErrorIssue.Id():    maskfileParseErrorIssue,
		outputDirCreateFailedIssue.Id(): outputDirCreateFailedIssue,
		outputCollisionIssue.Id():       outputCollisionIssue,
		linterNotFoundIssue.Id():        linterNotFoundIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
