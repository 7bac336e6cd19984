// Package ast declares the resolved program tree consumed by the constraint
// generator. The tree is produced by the parser and is read-only to every
// package in this module; expression and statement forms are closed sums,
// dispatched by exhaustive type switches in the generator.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Variable is a named identifier. Two variables are the same name iff the
// strings are equal. A bare Variable is also an expression: a use of a name
// whose type is not known syntactically.
type Variable string

func (v Variable) String() string { return string(v) }

func (Variable) expressionNode() {}

// Type of a declared struct field or function parameter.
type Type uint8

const (
	TypeBoolean Type = iota
	TypeU32
	TypeBooleanArray
	TypeU32Array
)

func (t Type) String() string {
	switch t {
	case TypeBoolean:
		return "bool"
	case TypeU32:
		return "u32"
	case TypeBooleanArray:
		return "[bool]"
	case TypeU32Array:
		return "[u32]"
	}
	return "unknown"
}

// Expression is any resolvable right-hand side: a typed boolean or u32
// expression, a bare variable use, a struct literal, or an array access.
type Expression interface {
	fmt.Stringer
	expressionNode()
}

// BooleanExpression is the boolean-typed expression sum.
type BooleanExpression interface {
	Expression
	booleanExpressionNode()
}

// FieldExpression is the u32-typed expression sum.
type FieldExpression interface {
	Expression
	fieldExpressionNode()
}

// boolNode is embedded by every boolean expression form.
type boolNode struct{}

func (boolNode) expressionNode()        {}
func (boolNode) booleanExpressionNode() {}
func (boolNode) boolArrayElementNode()  {}

// fieldNode is embedded by every u32 expression form. A u32 expression may
// also appear as an array index.
type fieldNode struct{}

func (fieldNode) expressionNode()        {}
func (fieldNode) fieldExpressionNode()   {}
func (fieldNode) fieldArrayElementNode() {}
func (fieldNode) rangeOrExpressionNode() {}

// Boolean expression forms.

type BoolValue struct {
	boolNode
	Value bool
}

type BoolVariable struct {
	boolNode
	Name Variable
}

type Not struct {
	boolNode
	Expr BooleanExpression
}

type Or struct {
	boolNode
	Left, Right BooleanExpression
}

type And struct {
	boolNode
	Left, Right BooleanExpression
}

// BoolEq enforces equality of two boolean expressions.
type BoolEq struct {
	boolNode
	Left, Right BooleanExpression
}

// FieldEq enforces equality of two u32 expressions. The enforcement is a
// boolean-typed expression: it resolves to the constant true.
type FieldEq struct {
	boolNode
	Left, Right FieldExpression
}

type BoolIfElse struct {
	boolNode
	Cond       BooleanExpression
	Then, Else BooleanExpression
}

type BoolArray struct {
	boolNode
	Elements []BoolArrayElement
}

// BoolArrayElement is either a boolean expression or a spread of a named
// boolean array.
type BoolArrayElement interface {
	fmt.Stringer
	boolArrayElementNode()
}

type BoolSpread struct {
	Name Variable
}

func (BoolSpread) boolArrayElementNode() {}

func (e BoolValue) String() string    { return strconv.FormatBool(e.Value) }
func (e BoolVariable) String() string { return string(e.Name) }
func (e Not) String() string          { return "!" + e.Expr.String() }
func (e Or) String() string           { return e.Left.String() + " || " + e.Right.String() }
func (e And) String() string          { return e.Left.String() + " && " + e.Right.String() }
func (e BoolEq) String() string       { return e.Left.String() + " == " + e.Right.String() }
func (e FieldEq) String() string      { return e.Left.String() + " == " + e.Right.String() }
func (e BoolIfElse) String() string {
	return fmt.Sprintf("if %s then %s else %s", e.Cond, e.Then, e.Else)
}
func (e BoolArray) String() string { return renderArray(e.Elements) }
func (e BoolSpread) String() string { return "..." + string(e.Name) }

// U32 expression forms.

type Number struct {
	fieldNode
	Value uint32
}

type FieldVariable struct {
	fieldNode
	Name Variable
}

type Add struct {
	fieldNode
	Left, Right FieldExpression
}

type Sub struct {
	fieldNode
	Left, Right FieldExpression
}

type Mul struct {
	fieldNode
	Left, Right FieldExpression
}

type Div struct {
	fieldNode
	Left, Right FieldExpression
}

type Pow struct {
	fieldNode
	Left, Right FieldExpression
}

type FieldIfElse struct {
	fieldNode
	Cond       BooleanExpression
	Then, Else FieldExpression
}

type FieldArray struct {
	fieldNode
	Elements []FieldArrayElement
}

// FieldArrayElement is either a u32 expression or a spread of a named u32
// array.
type FieldArrayElement interface {
	fmt.Stringer
	fieldArrayElementNode()
}

type FieldSpread struct {
	Name Variable
}

func (FieldSpread) fieldArrayElementNode() {}

func (e Number) String() string        { return strconv.FormatUint(uint64(e.Value), 10) }
func (e FieldVariable) String() string { return string(e.Name) }
func (e Add) String() string           { return e.Left.String() + " + " + e.Right.String() }
func (e Sub) String() string           { return e.Left.String() + " - " + e.Right.String() }
func (e Mul) String() string           { return e.Left.String() + " * " + e.Right.String() }
func (e Div) String() string           { return e.Left.String() + " / " + e.Right.String() }
func (e Pow) String() string           { return e.Left.String() + " ** " + e.Right.String() }
func (e FieldIfElse) String() string {
	return fmt.Sprintf("if %s then %s else %s", e.Cond, e.Then, e.Else)
}
func (e FieldArray) String() string  { return renderArray(e.Elements) }
func (e FieldSpread) String() string { return "..." + string(e.Name) }

// Struct literal and array access expressions.

type StructLiteral struct {
	Name    Variable
	Members []StructMember
}

func (StructLiteral) expressionNode() {}

func (e StructLiteral) String() string {
	members := make([]string, len(e.Members))
	for i, m := range e.Members {
		members[i] = fmt.Sprintf("%s: %s", m.Variable, m.Expr)
	}
	return fmt.Sprintf("%s { %s }", e.Name, strings.Join(members, ", "))
}

// ArrayAccess selects a single element or a contiguous range from an
// array-valued expression.
type ArrayAccess struct {
	Array Expression
	Index RangeOrExpression
}

func (ArrayAccess) expressionNode() {}

func (e ArrayAccess) String() string {
	return fmt.Sprintf("%s[%s]", e.Array, e.Index)
}

// RangeOrExpression is either a (from, to) range or a single u32 index.
type RangeOrExpression interface {
	fmt.Stringer
	rangeOrExpressionNode()
}

// Range selects [From, To). A nil bound defaults to the start or the end of
// the array.
type Range struct {
	From, To FieldExpression
}

func (Range) rangeOrExpressionNode() {}

func (r Range) String() string {
	var b strings.Builder
	if r.From != nil {
		b.WriteString(r.From.String())
	}
	b.WriteString("..")
	if r.To != nil {
		b.WriteString(r.To.String())
	}
	return b.String()
}

// Statements.

type Statement interface {
	fmt.Stringer
	statementNode()
}

// Definition binds the result of an expression to a name.
type Definition struct {
	Variable Variable
	Expr     Expression
}

func (Definition) statementNode() {}

func (s Definition) String() string { return fmt.Sprintf("let %s = %s", s.Variable, s.Expr) }

// Return resolves its expressions in order. Results are not bound into the
// environment.
type Return struct {
	Exprs []Expression
}

func (Return) statementNode() {}

func (s Return) String() string {
	exprs := make([]string, len(s.Exprs))
	for i, e := range s.Exprs {
		exprs[i] = e.String()
	}
	return "return " + strings.Join(exprs, ", ")
}

// Declarations.

type StructField struct {
	Variable Variable
	Type     Type
}

type Struct struct {
	Variable Variable
	Fields   []StructField
}

type StructMember struct {
	Variable Variable
	Expr     Expression
}

type Parameter struct {
	Variable Variable
	Type     Type
}

type Function struct {
	Variable   Variable
	Parameters []Parameter
	Statements []Statement
}

// Program is the resolved tree for one compilation pass: struct and function
// declarations plus the top-level statement sequence, in source order.
type Program struct {
	Name       string
	Structs    []Struct
	Functions  []Function
	Statements []Statement
}

func renderArray[E fmt.Stringer](elements []E) string {
	parts := make([]string, len(elements))
	for i, e := range elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
