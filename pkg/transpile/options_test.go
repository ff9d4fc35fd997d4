package transpile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadOptionsMissingFileReturnsDefaults(t *testing.T) {
	ws := t.TempDir()

	opts, err := LoadOptions(ws)
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}
	if !reflect.DeepEqual(opts, DefaultOptions()) {
		t.Errorf("expected defaults, got %+v", opts)
	}
}

func TestSaveAndLoadOptions(t *testing.T) {
	ws := t.TempDir()

	in := &Options{
		TemplatesDir:  "sql/templates",
		TranspiledDir: "sql/out",
		DebugDir:      "sql/debug",
		AnsiNulls:     false,
		QuotedID:      true,
		SkipPrefixes:  []string{"ignore_"},
	}
	if err := SaveOptions(ws, in); err != nil {
		t.Fatalf("SaveOptions failed: %v", err)
	}

	out, err := LoadOptions(ws)
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("options did not round-trip: saved %+v, loaded %+v", in, out)
	}
}

func TestLoadOptionsRejectsMalformedFile(t *testing.T) {
	ws := t.TempDir()
	path := filepath.Join(ws, OptionsFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadOptions(ws); err == nil {
		t.Error("expected an error for a malformed options file")
	}
}

func TestWriteStarterPresets(t *testing.T) {
	ws := t.TempDir()

	path, err := WriteStarterPresets(ws)
	if err != nil {
		t.Fatalf("WriteStarterPresets failed: %v", err)
	}

	table, err := LoadPresets(ws)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("expected one example entry, got %d", len(table))
	}

	// A second call must leave the existing file untouched.
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = WriteStarterPresets(ws); err != nil {
		t.Fatalf("second WriteStarterPresets failed: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("WriteStarterPresets overwrote an existing presets file")
	}
}

func TestLoadPresetsMissingFile(t *testing.T) {
	table, err := LoadPresets(t.TempDir())
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}
	if table != nil {
		t.Errorf("expected nil table for a missing file, got %+v", table)
	}
	if got := table.For("anything.sql.tmpl"); got != nil {
		t.Errorf("nil table lookup should return nil presets, got %+v", got)
	}
}
