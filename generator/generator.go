// Package generator walks a resolved program tree and emits an arithmetic/
// boolean circuit into a gate system. Evaluation is strictly top-down
// recursive: the program driver folds the statement driver over the
// top-level statements, which dispatch to the boolean, field and aggregate
// resolvers; the same exclusive environment and gate system are threaded
// through every step.
//
// Generation is all-or-nothing: the first fatal condition aborts the pass,
// and gates already allocated are not retracted. Re-running over the same
// system would duplicate allocations, so callers construct a fresh
// gates.System per attempt.
package generator

import (
	"github.com/rs/zerolog"

	"github.com/glyphlang/glyph/ast"
	"github.com/glyphlang/glyph/gates"
	"github.com/glyphlang/glyph/logger"
	"github.com/glyphlang/glyph/witness"
)

type Generator struct {
	sys     *gates.System
	env     Environment
	witness witness.Provider
	log     zerolog.Logger
	returns []Value
}

// New creates a generator over an exclusive gate system. A nil provider
// means no external inputs are available.
func New(sys *gates.System, w witness.Provider) *Generator {
	if w == nil {
		w = witness.Empty
	}
	return &Generator{
		sys:     sys,
		env:     make(Environment),
		witness: w,
		log:     logger.Logger().With().Str("component", "generator").Logger(),
	}
}

// Run seeds the environment with every struct and function declaration, so
// they are resolvable before any statement executes, then executes the
// top-level statements in source order. Declarations are keyed by name;
// on a name collision the last write wins. Function bodies are never
// invoked.
func (g *Generator) Run(program *ast.Program) error {
	for _, s := range program.Structs {
		g.env.Bind(s.Variable, StructDefinition{Def: s})
	}
	for _, f := range program.Functions {
		g.env.Bind(f.Variable, FunctionDefinition{Def: f})
	}

	for _, s := range program.Statements {
		if err := g.enforceStatement(s); err != nil {
			return err
		}
	}
	return nil
}

// Returns reports the values resolved by Return statements, in source
// order. They are observable to the caller but are not circuit outputs.
func (g *Generator) Returns() []Value { return g.returns }

// GenerateConstraints runs a whole pass over a fresh environment and
// returns the resolved return values.
func GenerateConstraints(sys *gates.System, program *ast.Program, w witness.Provider) ([]Value, error) {
	g := New(sys, w)
	if err := g.Run(program); err != nil {
		return nil, err
	}
	return g.Returns(), nil
}
