package generator

import (
	"fmt"

	"github.com/glyphlang/glyph/ast"
	"github.com/glyphlang/glyph/gates"
)

// u32FromVariable resolves an integer-typed variable use, falling back to
// the witness provider for unbound names.
func (g *Generator) u32FromVariable(name ast.Variable) (gates.UInt32, error) {
	if v, ok := g.env.Lookup(name); ok {
		u, ok := v.(FieldElement)
		if !ok {
			return gates.UInt32{}, fmt.Errorf("%w: %s is bound to %s, expected a field element", ErrTypeMismatch, name, v)
		}
		return u.Word, nil
	}
	val, ok := g.witness.UInt32(string(name))
	if !ok {
		return gates.UInt32{}, fmt.Errorf("%w: no u32 assignment for %s", ErrMissingWitness, name)
	}
	return g.sys.AllocUInt32(string(name), val), nil
}

// u32Value resolves a u32 expression down to its gate-backed integer.
func (g *Generator) u32Value(e ast.FieldExpression) (gates.UInt32, error) {
	switch e := e.(type) {
	case ast.FieldVariable:
		return g.u32FromVariable(e.Name)
	case ast.Number:
		return g.sys.ConstantUInt32(e.Value), nil
	default:
		v, err := g.enforceFieldExpression(e)
		if err != nil {
			return gates.UInt32{}, err
		}
		u, ok := v.(FieldElement)
		if !ok {
			return gates.UInt32{}, fmt.Errorf("%w: field expression resolved to %s", ErrTypeMismatch, v)
		}
		return u.Word, nil
	}
}

func (g *Generator) enforceU32Pair(l, r ast.FieldExpression) (gates.UInt32, gates.UInt32, error) {
	left, err := g.u32Value(l)
	if err != nil {
		return gates.UInt32{}, gates.UInt32{}, err
	}
	right, err := g.u32Value(r)
	if err != nil {
		return gates.UInt32{}, gates.UInt32{}, err
	}
	return left, right, nil
}

// enforceFieldExpression evaluates a u32 expression, allocating its gates,
// and returns the resulting Value.
func (g *Generator) enforceFieldExpression(e ast.FieldExpression) (Value, error) {
	switch e := e.(type) {
	case ast.FieldVariable:
		u, err := g.u32FromVariable(e.Name)
		if err != nil {
			return nil, err
		}
		return FieldElement{Word: u}, nil

	case ast.Number:
		return FieldElement{Word: g.sys.ConstantUInt32(e.Value)}, nil

	case ast.Add:
		l, r, err := g.enforceU32Pair(e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return FieldElement{Word: g.sys.Add(fmt.Sprintf("enforce %d + %d", l.Value, r.Value), l, r)}, nil

	case ast.Sub:
		l, r, err := g.enforceU32Pair(e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return FieldElement{Word: g.sys.Sub(fmt.Sprintf("enforce %d - %d", l.Value, r.Value), l, r)}, nil

	case ast.Mul:
		l, r, err := g.enforceU32Pair(e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return FieldElement{Word: g.sys.Mul(fmt.Sprintf("enforce %d * %d", l.Value, r.Value), l, r)}, nil

	case ast.Div:
		l, r, err := g.enforceU32Pair(e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		res, err := g.sys.Div(fmt.Sprintf("enforce %d / %d", l.Value, r.Value), l, r)
		if err != nil {
			return nil, err
		}
		return FieldElement{Word: res}, nil

	case ast.Pow:
		l, r, err := g.enforceU32Pair(e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return FieldElement{Word: g.sys.Pow(fmt.Sprintf("enforce %d ** %d", l.Value, r.Value), l, r)}, nil

	case ast.FieldIfElse:
		// witness-time branch: only the taken branch allocates gates
		cond, err := g.boolValue(e.Cond)
		if err != nil {
			return nil, err
		}
		if cond.Value {
			return g.enforceFieldExpression(e.Then)
		}
		return g.enforceFieldExpression(e.Else)

	case ast.FieldArray:
		array := make(FieldElementArray, 0, len(e.Elements))
		for _, element := range e.Elements {
			switch element := element.(type) {
			case ast.FieldSpread:
				return nil, fmt.Errorf("%w: spread element %s", ErrUnsupported, element)
			case ast.FieldExpression:
				u, err := g.u32Value(element)
				if err != nil {
					return nil, err
				}
				array = append(array, u)
			default:
				return nil, fmt.Errorf("%w: array element %T", ErrUnsupported, element)
			}
		}
		return array, nil
	}

	return nil, fmt.Errorf("%w: field expression %T", ErrUnsupported, e)
}
