// Package glyph is the constraint-generation backend of the Glyph DSL
// compiler: it turns a resolved program tree into a gate system whose
// satisfying assignments correspond exactly to valid executions of the
// source program.
package glyph

import (
	"math/big"

	"github.com/glyphlang/glyph/ast"
	"github.com/glyphlang/glyph/field"
	"github.com/glyphlang/glyph/gates"
	"github.com/glyphlang/glyph/generator"
	"github.com/glyphlang/glyph/logger"
	"github.com/glyphlang/glyph/witness"
)

// CompileResult holds the gate system of a completed pass and the values
// resolved by Return statements.
type CompileResult struct {
	System  *gates.System
	Returns []generator.Value
}

type config struct {
	witness witness.Provider
}

type Option func(*config)

// WithWitness supplies the external input assignment for the pass.
func WithWitness(p witness.Provider) Option {
	return func(c *config) { c.witness = p }
}

// Compile generates constraints for the program over the given field order.
// Each call owns a fresh gate system; on error the partially filled system
// is discarded.
func Compile(fieldOrder *big.Int, program *ast.Program, opts ...Option) (*CompileResult, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	sys := gates.NewSystem(field.GetFieldFromOrder(fieldOrder))
	returns, err := generator.GenerateConstraints(sys, program, cfg.witness)
	if err != nil {
		return nil, err
	}

	log := logger.Logger()
	stats := sys.Stats()
	log.Info().
		Str("program", program.Name).
		Int("nbWires", stats.NbWires).
		Int("nbGates", stats.NbGates).
		Int("nbInputs", stats.NbInputs).
		Int("nbAssertions", stats.NbAssertions).
		Msg("constraints generated")

	return &CompileResult{System: sys, Returns: returns}, nil
}
