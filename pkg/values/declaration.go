package values

import "strings"

// Declaration is the parsed form of a single column or parameter
// definition, e.g. "@name NVARCHAR(50) = 'Bob',".
type Declaration struct {
	// Name is the first whitespace-delimited token of the raw text, kept
	// verbatim including any sigil such as a leading "@". It is the key
	// used for preset lookups.
	Name string

	// Raw is the original definition text, unmodified.
	Raw string

	// Default is the literal following an "=" sign, with a single
	// trailing comma removed and surrounding whitespace trimmed. Empty
	// unless HasDefault is true.
	Default string

	// HasDefault reports whether the raw text contained an "=".
	HasDefault bool
}

// ParseDeclaration parses a raw column or parameter definition. It never
// fails: malformed input degrades to an empty name and no default.
func ParseDeclaration(raw string) Declaration {
	d := Declaration{Raw: raw}

	if fields := strings.Fields(raw); len(fields) > 0 {
		d.Name = fields[0]
	}

	if _, after, ok := strings.Cut(raw, "="); ok {
		def := strings.TrimSpace(after)
		def = strings.TrimSuffix(def, ",")
		d.Default = strings.TrimSpace(def)
		d.HasDefault = true
	}

	return d
}
