package generator

import "errors"

// Every error below is fatal to the compilation pass: there is no partial
// success and no local recovery, because a partially built constraint system
// is unsound to use. gates.ErrGateAllocation completes the taxonomy for
// failures raised by the sink itself.
var (
	// ErrTypeMismatch: a name or expression resolved to a variant
	// incompatible with the expected one.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUndefinedName: a struct or function name is used but not bound.
	ErrUndefinedName = errors.New("undefined name")

	// ErrFieldMismatch: a struct literal's member names do not positionally
	// match the declaration.
	ErrFieldMismatch = errors.New("struct field mismatch")

	// ErrUnsupported: spreads, struct-valued returns, function invocation.
	ErrUnsupported = errors.New("unsupported construct")

	// ErrIndexOutOfRange: a resolved index or range falls outside the
	// target array.
	ErrIndexOutOfRange = errors.New("array index out of range")

	// ErrMissingWitness: an unbound variable has no external assignment.
	ErrMissingWitness = errors.New("missing witness assignment")
)
