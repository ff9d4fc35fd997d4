package transpile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Well-known file locations, relative to the workspace root.
const (
	OptionsFile = "sqlweave/options.json"
	PresetsFile = "sqlweave/presets.json"
	FormatsDir  = "sqlweave/formats"
)

// Options holds the user-configurable behavior of the transpiler.
// Directory paths may be absolute or relative to the workspace.
type Options struct {
	// TemplatesDir is the directory containing the project's templates.
	TemplatesDir string `json:"templates_dir"`

	// TranspiledDir is where transpiled files are written.
	TranspiledDir string `json:"transpiled_dir"`

	// DebugDir is where output of the debug format is written.
	DebugDir string `json:"debug_dir"`

	// AnsiNulls controls whether templates should emit SET ANSI_NULLS ON.
	AnsiNulls bool `json:"ansi_nulls"`

	// QuotedID controls whether templates should emit SET QUOTED_IDENTIFIER ON.
	QuotedID bool `json:"quoted_id"`

	// SkipPrefixes lists file name prefixes excluded from project-wide
	// transpiling.
	SkipPrefixes []string `json:"skip_prefixes"`
}

// DefaultOptions returns the options used when no options file exists.
func DefaultOptions() *Options {
	return &Options{
		TemplatesDir:  "templates",
		TranspiledDir: "transpiled",
		DebugDir:      "debug",
		AnsiNulls:     true,
		QuotedID:      true,
		SkipPrefixes:  []string{"ext", "part"},
	}
}

// LoadOptions reads the options file from the workspace. A missing file
// is not an error: defaults are returned instead.
func LoadOptions(workspace string) (*Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(filepath.Join(workspace, OptionsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	if err = json.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("failed to parse options file: %w", err)
	}
	return opts, nil
}

// SaveOptions writes the options file atomically, creating its parent
// directory if needed.
func SaveOptions(workspace string, opts *Options) error {
	path := filepath.Join(workspace, OptionsFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create options directory: %w", err)
	}

	data, err := json.MarshalIndent(opts, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to marshal options: %w", err)
	}

	if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write options file: %w", err)
	}
	return nil
}

// absAgainst makes path absolute, treating relative paths as rooted at
// the workspace.
func absAgainst(workspace, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workspace, path)
}
