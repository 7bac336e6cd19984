package generator

import (
	"fmt"

	"github.com/glyphlang/glyph/ast"
)

// enforceExpression dispatches an expression to the resolver matching its
// static shape.
func (g *Generator) enforceExpression(e ast.Expression) (Value, error) {
	switch e := e.(type) {
	case ast.BooleanExpression:
		return g.enforceBooleanExpression(e)

	case ast.FieldExpression:
		return g.enforceFieldExpression(e)

	case ast.Variable:
		if v, ok := g.env.Lookup(e); ok {
			return v, nil
		}
		// the type of an unbound variable is whatever the witness carries
		if b, ok := g.witness.Boolean(string(e)); ok {
			return Boolean{Bit: g.sys.AllocBoolean(string(e), b)}, nil
		}
		if u, ok := g.witness.UInt32(string(e)); ok {
			return FieldElement{Word: g.sys.AllocUInt32(string(e), u)}, nil
		}
		return nil, fmt.Errorf("%w: no assignment for variable %s", ErrMissingWitness, e)

	case ast.StructLiteral:
		return g.enforceStructExpression(e.Name, e.Members)

	case ast.ArrayAccess:
		return g.enforceArrayAccess(e)
	}

	return nil, fmt.Errorf("%w: expression %T", ErrUnsupported, e)
}

// enforceStatement executes one top-level statement. Each statement is
// processed exactly once, in sequence.
func (g *Generator) enforceStatement(s ast.Statement) error {
	switch s := s.(type) {
	case ast.Definition:
		result, err := g.enforceExpression(s.Expr)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Variable, err)
		}
		g.log.Debug().Str("variable", string(s.Variable)).Stringer("value", result).Msg("statement result")
		g.env.Bind(s.Variable, result)
		return nil

	case ast.Return:
		for _, e := range s.Exprs {
			switch e := e.(type) {
			case ast.BooleanExpression:
				v, err := g.enforceBooleanExpression(e)
				if err != nil {
					return err
				}
				g.emitReturn(v)
			case ast.FieldExpression:
				v, err := g.enforceFieldExpression(e)
				if err != nil {
					return err
				}
				g.emitReturn(v)
			case ast.Variable:
				v, ok := g.env.Lookup(e)
				if !ok {
					return fmt.Errorf("%w: return of unbound variable %s", ErrUndefinedName, e)
				}
				g.emitReturn(v)
			case ast.StructLiteral:
				return fmt.Errorf("%w: struct-valued return", ErrUnsupported)
			default:
				return fmt.Errorf("%w: return of %T", ErrUnsupported, e)
			}
		}
		return nil
	}

	return fmt.Errorf("%w: statement %T", ErrUnsupported, s)
}

func (g *Generator) emitReturn(v Value) {
	g.log.Info().Stringer("value", v).Msg("return")
	g.returns = append(g.returns, v)
}
