package gates

import (
	"fmt"
	"strconv"

	"github.com/consensys/gnark/constraint"
)

// Boolean is a gate-backed boolean value: a wire plus its concrete value for
// the current witness.
type Boolean struct {
	Wire  int
	Value bool
}

func (b Boolean) String() string { return strconv.FormatBool(b.Value) }

func (s *System) boolElement(v bool) constraint.Element {
	if v {
		return s.field.One()
	}
	return constraint.Element{}
}

// AllocBoolean allocates an input gate for an externally supplied boolean.
func (s *System) AllocBoolean(label string, v bool) Boolean {
	w := s.newBooleanWire(s.boolElement(v))
	s.gates = append(s.gates, Gate{Op: OpInput, Label: label, Out: w})
	s.nbInput++
	return Boolean{Wire: w, Value: v}
}

// ConstantBoolean allocates a constant gate.
func (s *System) ConstantBoolean(v bool) Boolean {
	w := s.newBooleanWire(s.boolElement(v))
	s.gates = append(s.gates, Gate{Op: OpConst, Label: strconv.FormatBool(v), Out: w})
	return Boolean{Wire: w, Value: v}
}

// Not allocates a negation gate: out = 1 - a.
func (s *System) Not(label string, a Boolean) Boolean {
	v := !a.Value
	w := s.newBooleanWire(s.boolElement(v))
	s.gates = append(s.gates, Gate{Op: OpNot, Label: label, In: []int{a.Wire}, Out: w})
	return Boolean{Wire: w, Value: v}
}

// And allocates a conjunction gate: out = a * b.
func (s *System) And(label string, a, b Boolean) Boolean {
	v := a.Value && b.Value
	w := s.newBooleanWire(s.boolElement(v))
	s.gates = append(s.gates, Gate{Op: OpAnd, Label: label, In: []int{a.Wire, b.Wire}, Out: w})
	return Boolean{Wire: w, Value: v}
}

// Or allocates a disjunction gate: out = a + b - a*b.
func (s *System) Or(label string, a, b Boolean) Boolean {
	v := a.Value || b.Value
	w := s.newBooleanWire(s.boolElement(v))
	s.gates = append(s.gates, Gate{Op: OpOr, Label: label, In: []int{a.Wire, b.Wire}, Out: w})
	return Boolean{Wire: w, Value: v}
}

// AssertBooleansEqual allocates an equality-enforcement gate on two
// booleans. The enforcement is checked eagerly against the witness: unequal
// concrete values fail the allocation.
func (s *System) AssertBooleansEqual(label string, a, b Boolean) error {
	s.gates = append(s.gates, Gate{Op: OpAssertEq, Label: label, In: []int{a.Wire, b.Wire}, Out: -1})
	s.nbAssert++
	if a.Value != b.Value {
		return fmt.Errorf("%w: %s: %v != %v", ErrGateAllocation, label, a.Value, b.Value)
	}
	return nil
}
