package values

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetLiteral(t *testing.T) {
	assert.Equal(t, "'Bob'", String("Bob").Literal())
	assert.Equal(t, "''", String("").Literal())
	assert.Equal(t, "123", Number("123").Literal())
	assert.Equal(t, "1.5", Number("1.5").Literal())
	assert.Equal(t, "1", Bool(true).Literal())
	assert.Equal(t, "0", Bool(false).Literal())
	assert.Equal(t, "NULL", Null().Literal())

	// The zero value is the null preset.
	var zero PresetValue
	assert.Equal(t, "NULL", zero.Literal())
}

func TestPresetUnmarshalJSON(t *testing.T) {
	var table Presets
	data := `{
		"@stringParameter": "preset value",
		"@dateParameter": "2020-01-01T00:00:00",
		"@intParameter": 123,
		"@floatParameter": 1.5,
		"@boolParameter": true,
		"@nullParameter": null,
		"@objectParameter": {"unexpected": 1}
	}`
	require.NoError(t, json.Unmarshal([]byte(data), &table))

	assert.Equal(t, String("preset value"), table["@stringParameter"])
	assert.Equal(t, String("2020-01-01T00:00:00"), table["@dateParameter"])
	assert.Equal(t, Bool(true), table["@boolParameter"])
	assert.Equal(t, Null(), table["@nullParameter"])

	// Anything that is not a string, number or boolean collapses to null.
	assert.Equal(t, KindNull, table["@objectParameter"].Kind())

	// Numbers must keep their exact decimal text.
	assert.Equal(t, "123", table["@intParameter"].Literal())
	assert.Equal(t, "1.5", table["@floatParameter"].Literal())
}

func TestPresetMarshalRoundTrip(t *testing.T) {
	in := Presets{
		"@s": String("a"),
		"@n": Number("42"),
		"@b": Bool(false),
		"@x": Null(),
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Presets
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
