package transpile

import (
	"reflect"
	"text/template"

	"github.com/quarryhill/sqlweave/pkg/values"
)

func (t *Transpiler) makeFuncMap() template.FuncMap {
	return template.FuncMap{
		// Value synthesis (pkg/values)
		"columntovalue": columnToValue,

		// Logic & control
		"repeat": repeat,
		"list":   list,
		"isSet":  isSet,
	}
}

// columnToValue resolves a column or parameter definition to a SQL
// literal. The optional second argument is the preset table for the
// template being rendered, typically passed as .Presets.
func columnToValue(definition string, presets ...values.Presets) string {
	var p values.Presets
	if len(presets) > 0 {
		p = presets[0]
	}
	return values.Resolve(definition, p)
}

// repeat returns a slice of integers from 0 to count-1.
func repeat(count int) []int {
	if count < 0 {
		return []int{}
	}
	s := make([]int, count)
	for i := 0; i < count; i++ {
		s[i] = i
	}
	return s
}

// list returns a slice containing all the arguments passed to it.
func list(args ...any) []any {
	return args
}

// isSet returns true if a value is not its zero value.
func isSet(val any) bool {
	v := reflect.ValueOf(val)
	if !v.IsValid() {
		return false
	}
	return !v.IsZero()
}
