package values

import (
	"bytes"
	"encoding/json"
)

// PresetKind identifies the underlying type of a PresetValue.
type PresetKind int

const (
	KindNull PresetKind = iota
	KindString
	KindNumber
	KindBool
)

// PresetValue is a caller-supplied override for a named parameter. Its
// kind is decided once, when the value is constructed or decoded, so the
// resolver can switch over it without runtime type inspection.
//
// The zero value is the null preset.
type PresetValue struct {
	kind PresetKind
	text string
	flag bool
}

// String returns a string preset. The text is embedded between single
// quotes as-is; embedded quotes are the caller's responsibility.
func String(s string) PresetValue {
	return PresetValue{kind: KindString, text: s}
}

// Number returns a numeric preset from its decimal text form, which is
// emitted verbatim. The text must be a valid JSON number, e.g. "123" or
// "1.5".
func Number(text string) PresetValue {
	return PresetValue{kind: KindNumber, text: text}
}

// Bool returns a boolean preset, rendered as 1 or 0.
func Bool(b bool) PresetValue {
	return PresetValue{kind: KindBool, flag: b}
}

// Null returns the null preset, rendered as NULL.
func Null() PresetValue {
	return PresetValue{}
}

// Kind returns the underlying type of the preset.
func (v PresetValue) Kind() PresetKind { return v.kind }

// Literal renders the preset as a SQL literal: strings are wrapped in
// single quotes, numbers keep their decimal text, booleans map to 1/0,
// and null becomes NULL.
func (v PresetValue) Literal() string {
	switch v.kind {
	case KindString:
		return "'" + v.text + "'"
	case KindNumber:
		return v.text
	case KindBool:
		if v.flag {
			return "1"
		}
		return "0"
	default:
		return "NULL"
	}
}

// UnmarshalJSON decodes a preset from its JSON form. Numbers keep their
// exact decimal text, so integers and floats round-trip verbatim. Any
// value that is not a string, number, or boolean decodes as null.
func (v *PresetValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case string:
		*v = String(val)
	case json.Number:
		*v = Number(val.String())
	case bool:
		*v = Bool(val)
	default:
		*v = Null()
	}
	return nil
}

// MarshalJSON encodes the preset back to the JSON form it was decoded
// from.
func (v PresetValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.text)
	case KindNumber:
		return []byte(v.text), nil
	case KindBool:
		return json.Marshal(v.flag)
	default:
		return []byte("null"), nil
	}
}

// Presets maps a declared parameter name, sigil included, to its
// override value. A nil map is valid and contains nothing.
type Presets map[string]PresetValue
