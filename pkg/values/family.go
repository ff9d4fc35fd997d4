package values

import (
	"fmt"
	"strings"
)

// family is one entry in the placeholder table: a lower-case token to
// look for in the definition text and the literal it stands for.
type family struct {
	match       string
	literal     string
	wantsLength bool
}

// families holds the placeholder literal for every recognized SQL Server
// type family. Order matters: more specific tokens come before tokens
// they contain (bigint before int, smallmoney before money,
// smalldatetime before datetime, nvarchar before varchar, varbinary
// before binary), so the first match always wins.
var families = []family{
	{match: "bigint", literal: "6223372036854775807"},
	{match: "smallint", literal: "2515"},
	{match: "tinyint", literal: "12"},
	{match: "int", literal: "845655"},
	{match: "bit", literal: "1"},
	{match: "smallmoney", literal: "5.12"},
	{match: "money", literal: "158.25"},
	{match: "decimal", literal: "1.23434"},
	{match: "numeric", literal: "1.2344"},
	{match: "float", literal: "9.33432"},
	{match: "real", literal: "9.33432"},
	{match: "smalldatetime", literal: "'2020-01-01 11:45'"},
	{match: "datetime", literal: "'2020-01-01 11:45:54'"},
	{match: "nvarchar", literal: "N'A'"},
	{match: "varchar", literal: "'A'"},
	{match: "nchar", literal: "N'X'"},
	{match: "char", literal: "'X'"},
	{match: "ntext", literal: "N'B'"},
	{match: "text", literal: "'B'"},
	{match: "varbinary", literal: "123456 AS VARBINARY(%s)", wantsLength: true},
	{match: "binary", literal: "123456 AS BINARY(%s)", wantsLength: true},
	{match: "geometry", literal: "GEOMETRY::STPointFromText('POINT (100 100)', 0)"},
	{match: "geography", literal: "GEOGRAPHY::STGeomFromText('LINESTRING(-122.360 47.656, -122.343 47.656)', 4326)"},
}

// familyLiteral scans the family table in priority order and returns the
// placeholder literal for the first family whose token occurs in the
// definition. It returns "NULL" when no family matches.
func familyLiteral(raw string) string {
	lowered := strings.ToLower(raw)
	for _, f := range families {
		if !strings.Contains(lowered, f.match) {
			continue
		}
		if f.wantsLength {
			return fmt.Sprintf(f.literal, bracketArg(raw))
		}
		return f.literal
	}
	return "NULL"
}

// bracketArg returns the text between the first "(" and the first ")"
// of the raw definition, or "" when there is no opening bracket.
func bracketArg(raw string) string {
	_, after, ok := strings.Cut(raw, "(")
	if !ok {
		return ""
	}
	arg, _, _ := strings.Cut(after, ")")
	return arg
}
