package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpressionString(t *testing.T) {
	testCases := []struct {
		name string
		e    Expression
		want string
	}{
		{"not", Not{Expr: BoolVariable{Name: "a"}}, "!a"},
		{"and", And{Left: BoolVariable{Name: "a"}, Right: BoolValue{Value: false}}, "a && false"},
		{"field eq", FieldEq{Left: FieldVariable{Name: "x"}, Right: Number{Value: 36}}, "x == 36"},
		{"pow", Pow{Left: Number{Value: 2}, Right: Number{Value: 8}}, "2 ** 8"},
		{
			"if else",
			FieldIfElse{Cond: BoolVariable{Name: "c"}, Then: Number{Value: 1}, Else: Number{Value: 0}},
			"if c then 1 else 0",
		},
		{
			"array",
			FieldArray{Elements: []FieldArrayElement{Number{Value: 1}, FieldSpread{Name: "rest"}}},
			"[1, ...rest]",
		},
		{
			"struct literal",
			StructLiteral{Name: "Point", Members: []StructMember{
				{Variable: "x", Expr: Number{Value: 3}},
				{Variable: "y", Expr: Number{Value: 4}},
			}},
			"Point { x: 3, y: 4 }",
		},
		{
			"index",
			ArrayAccess{Array: Variable("arr"), Index: Number{Value: 2}},
			"arr[2]",
		},
		{
			"range",
			ArrayAccess{Array: Variable("arr"), Index: Range{From: Number{Value: 1}, To: Number{Value: 3}}},
			"arr[1..3]",
		},
		{
			"open range",
			ArrayAccess{Array: Variable("arr"), Index: Range{}},
			"arr[..]",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.e.String())
		})
	}
}

func TestStatementString(t *testing.T) {
	def := Definition{Variable: "s", Expr: Add{Left: Number{Value: 40}, Right: Number{Value: 2}}}
	require.Equal(t, "let s = 40 + 2", def.String())

	ret := Return{Exprs: []Expression{Variable("s"), BoolValue{Value: true}}}
	require.Equal(t, "return s, true", ret.String())
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "bool", TypeBoolean.String())
	require.Equal(t, "u32", TypeU32.String())
}
