package gates

import (
	"fmt"
	"strconv"
)

// UInt32 is a gate-backed 32-bit integer: a wire plus its concrete value for
// the current witness. Arithmetic wraps mod 2^32; the field-level wiring
// that bounds the wire to 32 bits is internal to the system.
type UInt32 struct {
	Wire  int
	Value uint32
}

func (u UInt32) String() string { return strconv.FormatUint(uint64(u.Value), 10) }

func (s *System) u32Wire(v uint32) int {
	return s.newWire(s.field.FromInterface(v))
}

// AllocUInt32 allocates an input gate for an externally supplied integer.
func (s *System) AllocUInt32(label string, v uint32) UInt32 {
	w := s.u32Wire(v)
	s.gates = append(s.gates, Gate{Op: OpInput, Label: label, Out: w})
	s.nbInput++
	return UInt32{Wire: w, Value: v}
}

// ConstantUInt32 allocates a constant gate.
func (s *System) ConstantUInt32(v uint32) UInt32 {
	w := s.u32Wire(v)
	s.gates = append(s.gates, Gate{Op: OpConst, Label: strconv.FormatUint(uint64(v), 10), Out: w})
	return UInt32{Wire: w, Value: v}
}

func (s *System) u32BinaryGate(op Op, label string, a, b UInt32, v uint32) UInt32 {
	w := s.u32Wire(v)
	s.gates = append(s.gates, Gate{Op: op, Label: label, In: []int{a.Wire, b.Wire}, Out: w})
	return UInt32{Wire: w, Value: v}
}

// Add allocates an addition gate, wrapping mod 2^32.
func (s *System) Add(label string, a, b UInt32) UInt32 {
	return s.u32BinaryGate(OpAdd, label, a, b, a.Value+b.Value)
}

// Sub allocates a subtraction gate, wrapping mod 2^32.
func (s *System) Sub(label string, a, b UInt32) UInt32 {
	return s.u32BinaryGate(OpSub, label, a, b, a.Value-b.Value)
}

// Mul allocates a multiplication gate, wrapping mod 2^32.
func (s *System) Mul(label string, a, b UInt32) UInt32 {
	return s.u32BinaryGate(OpMul, label, a, b, a.Value*b.Value)
}

// Div allocates an integer-division gate. A zero divisor fails the
// allocation.
func (s *System) Div(label string, a, b UInt32) (UInt32, error) {
	if b.Value == 0 {
		return UInt32{}, fmt.Errorf("%w: %s: division by zero", ErrGateAllocation, label)
	}
	return s.u32BinaryGate(OpDiv, label, a, b, a.Value/b.Value), nil
}

// Pow allocates an exponentiation gate, wrapping mod 2^32.
func (s *System) Pow(label string, a, b UInt32) UInt32 {
	return s.u32BinaryGate(OpPow, label, a, b, powU32(a.Value, b.Value))
}

func powU32(base, exp uint32) uint32 {
	var res uint32 = 1
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			res *= base
		}
		base *= base
	}
	return res
}

// AssertUInt32sEqual allocates a conditional equality-enforcement gate: the
// equality is enforced only when cond holds. As with booleans, enforcement
// is checked eagerly against the witness.
func (s *System) AssertUInt32sEqual(label string, a, b UInt32, cond Boolean) error {
	s.gates = append(s.gates, Gate{Op: OpAssertEq, Label: label, In: []int{a.Wire, b.Wire}, Out: -1, Cond: cond.Wire})
	s.nbAssert++
	if cond.Value && a.Value != b.Value {
		return fmt.Errorf("%w: %s: %d != %d", ErrGateAllocation, label, a.Value, b.Value)
	}
	return nil
}
