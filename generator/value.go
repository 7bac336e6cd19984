package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/glyphlang/glyph/ast"
	"github.com/glyphlang/glyph/gates"
)

// Value is everything a name can resolve to during one pass. The set of
// variants is closed; a Value never changes variant after creation, and
// rebinding a name replaces its Value wholesale.
//
// The textual renderings below are relied on by diagnostic output: arrays
// render as a bracketed, comma-separated sequence, struct instances as
// "Name { field: value, ... }" in declaration order.
type Value interface {
	fmt.Stringer
	isValue()
}

// Boolean wraps a gate-backed boolean.
type Boolean struct {
	Bit gates.Boolean
}

// BooleanArray is an ordered sequence of gate-backed booleans. The array
// owns its elements.
type BooleanArray []gates.Boolean

// FieldElement wraps a gate-backed 32-bit integer.
type FieldElement struct {
	Word gates.UInt32
}

// FieldElementArray is an ordered sequence of gate-backed 32-bit integers.
type FieldElementArray []gates.UInt32

// StructDefinition is a struct declaration bound into the environment.
type StructDefinition struct {
	Def ast.Struct
}

// StructExpression is a constructed struct instance. It stores the original
// unevaluated member initializers, not resolved values: field access
// re-resolves the initializer expression on demand.
type StructExpression struct {
	Name    ast.Variable
	Members []ast.StructMember
}

// FunctionDefinition is a function declaration bound into the environment.
// The driver never invokes it; call dispatch is out of scope.
type FunctionDefinition struct {
	Def ast.Function
}

func (Boolean) isValue()            {}
func (BooleanArray) isValue()       {}
func (FieldElement) isValue()       {}
func (FieldElementArray) isValue()  {}
func (StructDefinition) isValue()   {}
func (StructExpression) isValue()   {}
func (FunctionDefinition) isValue() {}

func (v Boolean) String() string { return strconv.FormatBool(v.Bit.Value) }

func (v BooleanArray) String() string {
	parts := make([]string, len(v))
	for i, b := range v {
		parts[i] = strconv.FormatBool(b.Value)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (v FieldElement) String() string { return strconv.FormatUint(uint64(v.Word.Value), 10) }

func (v FieldElementArray) String() string {
	parts := make([]string, len(v))
	for i, u := range v {
		parts[i] = strconv.FormatUint(uint64(u.Value), 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (v StructDefinition) String() string { return "struct " + string(v.Def.Variable) }

func (v StructExpression) String() string {
	members := make([]string, len(v.Members))
	for i, m := range v.Members {
		members[i] = fmt.Sprintf("%s: %s", m.Variable, m.Expr)
	}
	return fmt.Sprintf("%s { %s }", v.Name, strings.Join(members, ", "))
}

func (v FunctionDefinition) String() string { return "function " + string(v.Def.Variable) }
