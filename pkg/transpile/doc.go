/*
Package transpile renders SQL Server code written with Go template
directives into plain SQL files.

A Transpiler wraps text/template with a small function map, most notably
columntovalue, which synthesizes a SQL literal for a column or parameter
definition (see the values package). Templates live under a configurable
templates directory inside a workspace; rendered output goes to a
transpiled directory, or a debug directory for the debug format. Output
formats other than "none" layer format-specific partial templates onto
the template set before rendering, so the same template body can be
wrapped as a CREATE, an ALTER-or-replace, or a debug script.

Per-template preset values are read from a JSON file in the workspace
and handed to columntovalue explicitly; the package keeps no ambient
state between renders.
*/
package transpile
