package transpile

import (
	"testing"

	"github.com/quarryhill/sqlweave/pkg/values"
)

func TestHelperFuncs(t *testing.T) {
	if got := repeat(3); len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Errorf("repeat(3) = %v", got)
	}
	if got := repeat(-1); len(got) != 0 {
		t.Errorf("repeat(-1) = %v, want empty", got)
	}
	if got := list("a", 1); len(got) != 2 || got[0] != "a" || got[1] != 1 {
		t.Errorf("list returned %v", got)
	}
	if isSet("") || isSet(0) || isSet(values.Presets(nil)) {
		t.Error("isSet reported a zero value as set")
	}
	if !isSet("x") || !isSet(values.Presets{"@a": values.Null()}) {
		t.Error("isSet reported a non-zero value as unset")
	}
}

func TestHelperFuncsInTemplates(t *testing.T) {
	ws := setupTestWorkspace(t)
	tp := newTestTranspiler(t, ws, FormatNone)

	tests := []struct {
		name     string
		template string
		presets  values.Presets
		want     string
	}{
		{
			name:     "repeat builds a column list",
			template: `{{range $i := repeat 3}}col{{$i}} INT,{{end}}`,
			want:     "col0 INT,col1 INT,col2 INT,",
		},
		{
			name:     "list feeds a range",
			template: `{{range list "@id INT" "@flag BIT"}}{{columntovalue .}};{{end}}`,
			want:     "845655;1;",
		},
		{
			name:     "isSet with presets",
			template: `{{if isSet .Presets}}has presets{{else}}no presets{{end}}`,
			presets:  values.Presets{"@x": values.Bool(true)},
			want:     "has presets",
		},
		{
			name:     "isSet without presets",
			template: `{{if isSet .Presets}}has presets{{else}}no presets{{end}}`,
			want:     "no presets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tp.ExecuteString(tt.template, tt.presets)
			if err != nil {
				t.Fatalf("ExecuteString failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("rendered %q, want %q", got, tt.want)
			}
		})
	}
}
