/*
Package values synthesizes SQL literal values for column and parameter
definitions found in templated SQL Server code.

Given a raw definition such as "@name NVARCHAR(50) = 'Bob'," the package
produces a textual literal suitable for direct embedding in generated SQL.
Resolution follows a strict precedence: a caller-supplied preset override
for the declared name wins, then an inline "=" default from the definition
itself, and finally a representative placeholder chosen by matching the
definition against a fixed, priority-ordered table of type families. When
nothing applies, the literal is NULL.

Resolution is a pure function of its inputs. It never fails, holds no
state, and is safe to call from any number of goroutines.
*/
package values
