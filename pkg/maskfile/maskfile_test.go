package maskfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const sample = `# Project tasks

Helper commands for the project.

## build

Builds the binary.

~~~sh
echo building
~~~

## services

### services start (name)

~~~py
print("starting")
~~~

### services stop

~~~rb
puts "stopping"
~~~

## docs
`

func TestParse_TreeShape(t *testing.T) {
	mf, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if mf.Title != "Project tasks" {
		t.Errorf("Title = %q, want %q", mf.Title, "Project tasks")
	}
	if mf.Description != "Helper commands for the project." {
		t.Errorf("Description = %q", mf.Description)
	}

	if len(mf.Commands) != 3 {
		t.Fatalf("len(Commands) = %d, want 3", len(mf.Commands))
	}

	build := mf.Commands[0]
	if build.Name != "build" {
		t.Errorf("Commands[0].Name = %q, want build", build.Name)
	}
	if build.Description != "Builds the binary." {
		t.Errorf("build.Description = %q", build.Description)
	}
	if build.Script == nil {
		t.Fatal("build.Script = nil, want script")
	}
	if build.Script.Executor != "sh" {
		t.Errorf("build executor = %q, want sh", build.Script.Executor)
	}
	if build.Script.Source != "echo building\n" {
		t.Errorf("build source = %q", build.Script.Source)
	}

	services := mf.Commands[1]
	if services.Name != "services" {
		t.Errorf("Commands[1].Name = %q, want services", services.Name)
	}
	if services.Script != nil {
		t.Error("services.Script != nil, want grouping-only command")
	}
	if len(services.Subcommands) != 2 {
		t.Fatalf("len(services.Subcommands) = %d, want 2", len(services.Subcommands))
	}

	start := services.Subcommands[0]
	if start.Name != "start" {
		t.Errorf("subcommand name = %q, want start (parent chain and args stripped)", start.Name)
	}
	if start.Script == nil || start.Script.Executor != "py" {
		t.Errorf("start script = %+v, want py script", start.Script)
	}

	stop := services.Subcommands[1]
	if stop.Name != "stop" {
		t.Errorf("subcommand name = %q, want stop", stop.Name)
	}
	if stop.Script == nil || stop.Script.Executor != "rb" {
		t.Errorf("stop script = %+v, want rb script", stop.Script)
	}

	docs := mf.Commands[2]
	if docs.Name != "docs" || docs.Script != nil || len(docs.Subcommands) != 0 {
		t.Errorf("Commands[2] = %+v, want bare docs command", docs)
	}
}

func TestParse_SkippedHeadingLevels(t *testing.T) {
	src := "## outer\n\n#### inner\n\n~~~sh\necho hi\n~~~\n"
	mf, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(mf.Commands) != 1 {
		t.Fatalf("len(Commands) = %d, want 1", len(mf.Commands))
	}
	outer := mf.Commands[0]
	if len(outer.Subcommands) != 1 || outer.Subcommands[0].Name != "inner" {
		t.Errorf("outer.Subcommands = %+v, want single inner child", outer.Subcommands)
	}
}

func TestParse_FirstFenceWins(t *testing.T) {
	src := "## twice\n\n~~~sh\necho one\n~~~\n\n~~~py\nprint(2)\n~~~\n"
	mf, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	cmd := mf.Commands[0]
	if cmd.Script == nil || cmd.Script.Executor != "sh" {
		t.Errorf("Script = %+v, want the first (sh) fence", cmd.Script)
	}
}

func TestParse_FenceWithoutInfoString(t *testing.T) {
	src := "## plain\n\n~~~\nsome text\n~~~\n"
	mf, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	cmd := mf.Commands[0]
	if cmd.Script == nil {
		t.Fatal("Script = nil, want script with empty executor")
	}
	if cmd.Script.Executor != "" {
		t.Errorf("Executor = %q, want empty", cmd.Script.Executor)
	}
}

func TestParse_EmptyHeadingIsError(t *testing.T) {
	src := "## (name)\n"
	_, err := Parse([]byte(src))
	if err == nil {
		t.Fatal("Parse() succeeded, want parse error")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("error = %v, want *ParseError", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "maskfile.md"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maskfile.md")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	mf, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(mf.Commands) != 3 {
		t.Errorf("len(Commands) = %d, want 3", len(mf.Commands))
	}
}
