package gates

import "errors"

// ErrGateAllocation is returned when the system rejects an allocation:
// an enforced equality that does not hold for the current witness, or a
// division by zero. Any such failure is fatal to the pass; the caller must
// discard the whole system.
var ErrGateAllocation = errors.New("gate allocation failed")

// Op identifies the operation a gate performs.
type Op uint8

const (
	OpInput Op = iota
	OpConst
	OpNot
	OpAnd
	OpOr
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpAssertEq
)

var opNames = [...]string{
	OpInput:    "input",
	OpConst:    "const",
	OpNot:      "not",
	OpAnd:      "and",
	OpOr:       "or",
	OpAdd:      "add",
	OpSub:      "sub",
	OpMul:      "mul",
	OpDiv:      "div",
	OpPow:      "pow",
	OpAssertEq: "asserteq",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "unknown"
}

// Gate is one allocated constraint. In holds the operand wires, Out the
// result wire (-1 for assertions). For OpAssertEq, Cond is the wire of the
// enforcing condition; wire 0 is the constant 1, so Cond == 0 means the
// equality is enforced unconditionally.
//
// Label is a human-readable allocation-site tag. It is diagnostic only:
// collisions are not checked and the label never affects correctness.
type Gate struct {
	Op    Op
	Label string
	In    []int
	Out   int
	Cond  int
}
