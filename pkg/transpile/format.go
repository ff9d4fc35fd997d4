package transpile

import (
	"fmt"
	"strings"
)

// Format selects the output mode for transpiled files.
type Format string

const (
	// FormatNone renders the template body as-is.
	FormatNone Format = "none"

	// FormatCreate wraps output for creating new database objects.
	FormatCreate Format = "create"

	// FormatReplace wraps output for replacing existing database objects.
	FormatReplace Format = "replace"

	// FormatDebug wraps output for ad-hoc debugging and writes it to the
	// debug directory instead of the transpiled directory.
	FormatDebug Format = "debug"
)

// ParseFormat converts a user-supplied format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	switch f {
	case FormatNone, FormatCreate, FormatReplace, FormatDebug:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// overlayDir returns the name of the format's partial-template directory
// under FormatsDir, or "" when the format has no overlay.
func (f Format) overlayDir() string {
	if f == FormatNone {
		return ""
	}
	return string(f)
}
