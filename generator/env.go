package generator

import "github.com/glyphlang/glyph/ast"

// Environment is the name-to-value binding table for one compilation pass.
// It is owned exclusively by the pass; names are never removed.
type Environment map[ast.Variable]Value

// Lookup returns the Value bound to name. A missing binding is not itself an
// error; callers decide whether it is fatal or an external input.
func (e Environment) Lookup(name ast.Variable) (Value, bool) {
	v, ok := e[name]
	return v, ok
}

// Bind inserts or overwrites the binding for name. It unconditionally
// succeeds.
func (e Environment) Bind(name ast.Variable, v Value) {
	e[name] = v
}
