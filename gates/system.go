// Package gates implements the gate-allocation sink of the constraint
// generator. A System owns the wire table and the gate list for one
// compilation pass; every allocation both computes the wire's concrete value
// for the current witness and records the gate constraining it.
//
// A System is not safe for concurrent use, and a failed pass leaves
// already-allocated gates in place: callers construct a fresh System per
// attempt.
package gates

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark/constraint"

	"github.com/glyphlang/glyph/field"
)

type System struct {
	field field.Field

	// wire values for the current witness; wire 0 is the constant 1
	values []constraint.Element
	gates  []Gate

	// wires known to carry 0 or 1
	booleans *bitset.BitSet

	nbInput  int
	nbAssert int
}

func NewSystem(f field.Field) *System {
	s := &System{
		field:    f,
		booleans: bitset.New(64),
	}
	s.values = append(s.values, f.One())
	s.booleans.Set(0)
	return s
}

func (s *System) Field() field.Field { return s.field }

// NbWires counts allocated wires, including the constant wire 0.
func (s *System) NbWires() int { return len(s.values) }

func (s *System) NbGates() int { return len(s.gates) }

func (s *System) Gates() []Gate { return s.gates }

// WireValue returns the witness value of a wire.
func (s *System) WireValue(i int) constraint.Element { return s.values[i] }

// IsBooleanWire reports whether the wire is known to carry 0 or 1.
func (s *System) IsBooleanWire(i int) bool { return s.booleans.Test(uint(i)) }

func (s *System) newWire(v constraint.Element) int {
	s.values = append(s.values, v)
	return len(s.values) - 1
}

func (s *System) newBooleanWire(v constraint.Element) int {
	w := s.newWire(v)
	s.booleans.Set(uint(w))
	return w
}

type Stats struct {
	NbWires      int
	NbGates      int
	NbInputs     int
	NbAssertions int
}

func (s *System) Stats() Stats {
	return Stats{
		NbWires:      len(s.values),
		NbGates:      len(s.gates),
		NbInputs:     s.nbInput,
		NbAssertions: s.nbAssert,
	}
}
