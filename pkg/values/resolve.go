package values

// Resolve produces a SQL literal for a single column or parameter
// definition. A preset override keyed by the declared name wins, then an
// inline "=" default from the definition, then a placeholder chosen from
// the type-family table. When nothing applies the literal is NULL.
//
// Resolve never fails and never mutates presets. A nil preset table is
// valid.
func Resolve(raw string, presets Presets) string {
	d := ParseDeclaration(raw)

	if v, ok := presets[d.Name]; ok {
		return v.Literal()
	}

	if d.HasDefault {
		return d.Default
	}

	return familyLiteral(raw)
}
