package transpile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/quarryhill/sqlweave/pkg/values"
)

// PresetTable maps a template path, relative to the templates directory
// and using forward slashes, to the preset values for that template.
type PresetTable map[string]values.Presets

// LoadPresets reads the preset file from the workspace. A missing file
// is not an error: templates simply render without presets.
func LoadPresets(workspace string) (PresetTable, error) {
	data, err := os.ReadFile(filepath.Join(workspace, PresetsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	var table PresetTable
	if err = json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse presets file: %w", err)
	}
	return table, nil
}

// For returns the presets for one template, or nil when none are set.
func (t PresetTable) For(templatePath string) values.Presets {
	return t[filepath.ToSlash(templatePath)]
}

// WriteStarterPresets creates the preset file with a single documented
// example entry and returns its path. An existing file is left
// untouched.
func WriteStarterPresets(workspace string) (string, error) {
	path := filepath.Join(workspace, PresetsFile)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create presets directory: %w", err)
	}

	sample := PresetTable{
		"path_relative_to_templates/use_forward_slashes/example.sql.tmpl": values.Presets{
			"@stringParameter": values.String("preset value"),
			"@dateParameter":   values.String("2020-01-01T00:00:00"),
			"@numberParameter": values.Number("123"),
			"@nullParameter":   values.Null(),
		},
	}

	data, err := json.MarshalIndent(sample, "", "\t")
	if err != nil {
		return "", fmt.Errorf("failed to marshal starter presets: %w", err)
	}

	if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to write presets file: %w", err)
	}
	return path, nil
}
