package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func overrideConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(func() { SetConfigDirOverride("") })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	overrideConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Maskfile != DefaultMaskfile {
		t.Errorf("Maskfile = %q, want %q", cfg.Maskfile, DefaultMaskfile)
	}
	if cfg.UI.Verbose {
		t.Error("UI.Verbose = true, want false")
	}
	if cfg.UI.Color != ColorAuto {
		t.Errorf("UI.Color = %q, want %q", cfg.UI.Color, ColorAuto)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := overrideConfigDir(t)

	want := &Config{
		Maskfile: "tasks.md",
		UI:       UIConfig{Verbose: true, Color: ColorAlways},
	}
	path, err := Save(want)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("Save() path = %q, want inside %q", path, dir)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Maskfile != want.Maskfile {
		t.Errorf("Maskfile = %q, want %q", got.Maskfile, want.Maskfile)
	}
	if !got.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}
	if got.UI.Color != ColorAlways {
		t.Errorf("UI.Color = %q, want %q", got.UI.Color, ColorAlways)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	overrideConfigDir(t)
	t.Setenv("MASKLINT_MASKFILE", "ci.md")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Maskfile != "ci.md" {
		t.Errorf("Maskfile = %q, want ci.md", cfg.Maskfile)
	}
}

func TestLoad_InvalidColorMode(t *testing.T) {
	dir := overrideConfigDir(t)
	content := "maskfile = \"maskfile.md\"\n\n[ui]\ncolor = \"rainbow\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load()
	if !errors.Is(err, ErrInvalidColorMode) {
		t.Errorf("Load() error = %v, want ErrInvalidColorMode", err)
	}
}

func TestColorMode_Validate(t *testing.T) {
	for _, m := range []ColorMode{ColorAuto, ColorAlways, ColorNever} {
		if err := m.Validate(); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", m, err)
		}
	}
	if err := ColorMode("sometimes").Validate(); err == nil {
		t.Error("Validate(sometimes) = nil, want error")
	}
}
