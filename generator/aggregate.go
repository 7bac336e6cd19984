package generator

import (
	"fmt"

	"github.com/glyphlang/glyph/ast"
)

// enforceStructExpression constructs a struct instance. The struct must
// already be declared; declared fields are paired with the supplied members
// positionally and their names must match exactly. Member expressions are
// resolved here for their allocation side effects, but the instance stores
// the unevaluated member list.
func (g *Generator) enforceStructExpression(name ast.Variable, members []ast.StructMember) (Value, error) {
	v, ok := g.env.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: struct %s must be declared before it is constructed", ErrUndefinedName, name)
	}
	def, ok := v.(StructDefinition)
	if !ok {
		return nil, fmt.Errorf("%w: %s is bound to %s, expected a struct definition", ErrTypeMismatch, name, v)
	}

	n := len(def.Def.Fields)
	if len(members) < n {
		n = len(members)
	}
	for i := 0; i < n; i++ {
		field, member := def.Def.Fields[i], members[i]
		if field.Variable != member.Variable {
			return nil, fmt.Errorf("%w: %s declares %s at position %d, literal has %s",
				ErrFieldMismatch, name, field.Variable, i, member.Variable)
		}
		if _, err := g.enforceExpression(member.Expr); err != nil {
			return nil, err
		}
	}

	return StructExpression{Name: name, Members: members}, nil
}

// resolveIndex resolves an index expression to a concrete position. Indices
// are always concrete at generation time; symbolic indexing is not
// supported.
func (g *Generator) resolveIndex(e ast.FieldExpression) (int, error) {
	u, err := g.u32Value(e)
	if err != nil {
		return 0, err
	}
	return int(u.Value), nil
}

// resolveRange resolves the bounds of a range over an array of length n. A
// missing bound defaults to the corresponding end of the array.
func (g *Generator) resolveRange(r ast.Range, n int) (int, int, error) {
	from, to := 0, n
	var err error
	if r.From != nil {
		if from, err = g.resolveIndex(r.From); err != nil {
			return 0, 0, err
		}
	}
	if r.To != nil {
		if to, err = g.resolveIndex(r.To); err != nil {
			return 0, 0, err
		}
	}
	if from > to || to > n {
		return 0, 0, fmt.Errorf("%w: [%d..%d] of array of length %d", ErrIndexOutOfRange, from, to, n)
	}
	return from, to, nil
}

// enforceArrayAccess resolves the array operand, then selects a single
// element or copies a contiguous sub-sequence.
func (g *Generator) enforceArrayAccess(e ast.ArrayAccess) (Value, error) {
	array, err := g.enforceExpression(e.Array)
	if err != nil {
		return nil, err
	}

	switch array := array.(type) {
	case FieldElementArray:
		switch index := e.Index.(type) {
		case ast.Range:
			from, to, err := g.resolveRange(index, len(array))
			if err != nil {
				return nil, err
			}
			return append(FieldElementArray{}, array[from:to]...), nil
		case ast.FieldExpression:
			i, err := g.resolveIndex(index)
			if err != nil {
				return nil, err
			}
			if i >= len(array) {
				return nil, fmt.Errorf("%w: index %d of array of length %d", ErrIndexOutOfRange, i, len(array))
			}
			return FieldElement{Word: array[i]}, nil
		}

	case BooleanArray:
		switch index := e.Index.(type) {
		case ast.Range:
			from, to, err := g.resolveRange(index, len(array))
			if err != nil {
				return nil, err
			}
			return append(BooleanArray{}, array[from:to]...), nil
		case ast.FieldExpression:
			i, err := g.resolveIndex(index)
			if err != nil {
				return nil, err
			}
			if i >= len(array) {
				return nil, fmt.Errorf("%w: index %d of array of length %d", ErrIndexOutOfRange, i, len(array))
			}
			return Boolean{Bit: array[i]}, nil
		}

	default:
		return nil, fmt.Errorf("%w: cannot access element of %s", ErrTypeMismatch, array)
	}

	return nil, fmt.Errorf("%w: index %T", ErrUnsupported, e.Index)
}
