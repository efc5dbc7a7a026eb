package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"namefully/src/internal/config"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return fs
}

func TestLoadDefaultsAreUnset(t *testing.T) {
	o, err := Settings{Dir: t.TempDir(), Environ: map[string]string{}, Flags: newFlags(t)}.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if o != (config.Options{}) {
		t.Fatalf("expected no options, got %#v", o)
	}
}

func TestLoadLayers(t *testing.T) {
	dir := t.TempDir()
	yaml := "order: lastName\nseparator: comma\ntitle: US\nending: true\n"
	if err := os.WriteFile(filepath.Join(dir, FileName+".yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	env := map[string]string{"NAMEFULLY_TITLE": "UK", "NAMEFULLY_BYPASS": "false", "NAMEFULLY_SURNAME": "mother"}
	fs := newFlags(t, "--surname", "hyphenated", "--ending=false")

	o, err := Settings{Dir: dir, Environ: env, Flags: fs}.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if o.OrderedBy != config.ByLastName || o.Separator != config.Comma {
		t.Fatalf("file layer lost: %#v", o)
	}
	if o.Title != config.UK || o.Bypass == nil || *o.Bypass {
		t.Fatalf("env layer lost: %#v", o)
	}
	if o.Surname != config.Hyphenated || o.Ending == nil || *o.Ending {
		t.Fatalf("flag layer lost: %#v", o)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("name = \"work\"\norder = \"last\"\nbypass = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := newFlags(t, "--config", path)
	o, err := Settings{Environ: map[string]string{}, Flags: fs}.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if o.Name != "work" || o.OrderedBy != config.ByLastName || o.Bypass == nil || *o.Bypass {
		t.Fatalf("unexpected: %#v", o)
	}

	_, err = Settings{File: filepath.Join(dir, "missing.yaml"), Environ: map[string]string{}}.Load()
	if err == nil {
		t.Fatalf("expected error for a missing explicit file")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []map[string]string{
		{"NAMEFULLY_ORDER": "middle"},
		{"NAMEFULLY_SEPARATOR": "tab"},
		{"NAMEFULLY_TITLE": "FR"},
		{"NAMEFULLY_SURNAME": "uncle"},
		{"NAMEFULLY_BYPASS": "maybe"},
	}
	for _, env := range cases {
		if _, err := (Settings{Dir: t.TempDir(), Environ: env}).Load(); err == nil {
			t.Fatalf("expected error for %v", env)
		}
	}
}

func TestLoadBlankValuesDoNotOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName+".json"), []byte(`{"title": "US", "separator": "comma"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	env := map[string]string{"NAMEFULLY_TITLE": "   ", "NAMEFULLY_SEPARATOR": " "}
	o, err := Settings{Dir: dir, Environ: env}.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if o.Title != config.US {
		t.Fatalf("blank env title overrode the file: %#v", o)
	}
	if o.Separator != config.Space {
		t.Fatalf("space token should select the space separator: %#v", o)
	}
}
