package generator

import (
	"fmt"

	"github.com/glyphlang/glyph/ast"
	"github.com/glyphlang/glyph/gates"
)

// boolFromVariable resolves a boolean-typed variable use. A bound name must
// hold a Boolean; an unbound name is a witness input and allocates a fresh
// input gate.
func (g *Generator) boolFromVariable(name ast.Variable) (gates.Boolean, error) {
	if v, ok := g.env.Lookup(name); ok {
		b, ok := v.(Boolean)
		if !ok {
			return gates.Boolean{}, fmt.Errorf("%w: %s is bound to %s, expected a boolean", ErrTypeMismatch, name, v)
		}
		return b.Bit, nil
	}
	val, ok := g.witness.Boolean(string(name))
	if !ok {
		return gates.Boolean{}, fmt.Errorf("%w: no boolean assignment for %s", ErrMissingWitness, name)
	}
	return g.sys.AllocBoolean(string(name), val), nil
}

// boolValue resolves a boolean expression down to its gate-backed boolean.
func (g *Generator) boolValue(e ast.BooleanExpression) (gates.Boolean, error) {
	switch e := e.(type) {
	case ast.BoolVariable:
		return g.boolFromVariable(e.Name)
	case ast.BoolValue:
		return g.sys.ConstantBoolean(e.Value), nil
	default:
		v, err := g.enforceBooleanExpression(e)
		if err != nil {
			return gates.Boolean{}, err
		}
		b, ok := v.(Boolean)
		if !ok {
			return gates.Boolean{}, fmt.Errorf("%w: boolean expression resolved to %s", ErrTypeMismatch, v)
		}
		return b.Bit, nil
	}
}

func (g *Generator) enforceBoolPair(l, r ast.BooleanExpression) (gates.Boolean, gates.Boolean, error) {
	left, err := g.boolValue(l)
	if err != nil {
		return gates.Boolean{}, gates.Boolean{}, err
	}
	right, err := g.boolValue(r)
	if err != nil {
		return gates.Boolean{}, gates.Boolean{}, err
	}
	return left, right, nil
}

// enforceBooleanExpression evaluates a boolean expression, allocating its
// gates, and returns the resulting Value.
func (g *Generator) enforceBooleanExpression(e ast.BooleanExpression) (Value, error) {
	switch e := e.(type) {
	case ast.BoolVariable:
		b, err := g.boolFromVariable(e.Name)
		if err != nil {
			return nil, err
		}
		return Boolean{Bit: b}, nil

	case ast.BoolValue:
		return Boolean{Bit: g.sys.ConstantBoolean(e.Value)}, nil

	case ast.Not:
		a, err := g.boolValue(e.Expr)
		if err != nil {
			return nil, err
		}
		return Boolean{Bit: g.sys.Not(fmt.Sprintf("enforce !%v", a.Value), a)}, nil

	case ast.Or:
		l, r, err := g.enforceBoolPair(e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return Boolean{Bit: g.sys.Or(fmt.Sprintf("enforce %v || %v", l.Value, r.Value), l, r)}, nil

	case ast.And:
		l, r, err := g.enforceBoolPair(e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return Boolean{Bit: g.sys.And(fmt.Sprintf("enforce %v && %v", l.Value, r.Value), l, r)}, nil

	case ast.BoolEq:
		l, r, err := g.enforceBoolPair(e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		if err := g.sys.AssertBooleansEqual("enforce bool equal", l, r); err != nil {
			return nil, err
		}
		return Boolean{Bit: g.sys.ConstantBoolean(true)}, nil

	case ast.FieldEq:
		l, err := g.u32Value(e.Left)
		if err != nil {
			return nil, err
		}
		r, err := g.u32Value(e.Right)
		if err != nil {
			return nil, err
		}
		if err := g.sys.AssertUInt32sEqual("enforce field equal", l, r, g.sys.ConstantBoolean(true)); err != nil {
			return nil, err
		}
		return Boolean{Bit: g.sys.ConstantBoolean(true)}, nil

	case ast.BoolIfElse:
		// witness-time branch: only the taken branch allocates gates
		cond, err := g.boolValue(e.Cond)
		if err != nil {
			return nil, err
		}
		if cond.Value {
			return g.enforceBooleanExpression(e.Then)
		}
		return g.enforceBooleanExpression(e.Else)

	case ast.BoolArray:
		array := make(BooleanArray, 0, len(e.Elements))
		for _, element := range e.Elements {
			switch element := element.(type) {
			case ast.BoolSpread:
				return nil, fmt.Errorf("%w: spread element %s", ErrUnsupported, element)
			case ast.BooleanExpression:
				b, err := g.boolValue(element)
				if err != nil {
					return nil, err
				}
				array = append(array, b)
			default:
				return nil, fmt.Errorf("%w: array element %T", ErrUnsupported, element)
			}
		}
		return array, nil
	}

	return nil, fmt.Errorf("%w: boolean expression %T", ErrUnsupported, e)
}
