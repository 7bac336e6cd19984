package gates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glyphlang/glyph/field"
	"github.com/glyphlang/glyph/field/babybear"
)

func newTestSystem() *System {
	return NewSystem(field.GetFieldFromOrder(babybear.ScalarField))
}

func TestConstantBoolean(t *testing.T) {
	s := newTestSystem()
	for _, v := range []bool{true, false} {
		b := s.ConstantBoolean(v)
		require.Equal(t, v, b.Value)
		require.True(t, s.IsBooleanWire(b.Wire))
		require.Equal(t, v, s.Field().IsOne(s.WireValue(b.Wire)))
	}
	require.Equal(t, 2, s.NbGates())
	require.Equal(t, 3, s.NbWires()) // constant 1 + two constants
}

func TestConstantUInt32(t *testing.T) {
	s := newTestSystem()
	for _, v := range []uint32{0, 1, 42, 1<<32 - 1} {
		u := s.ConstantUInt32(v)
		require.Equal(t, v, u.Value)
		require.Equal(t, s.Field().FromInterface(v), s.WireValue(u.Wire))
	}
}

func TestLogicGates(t *testing.T) {
	testCases := []struct {
		a, b    bool
		and, or bool
	}{
		{false, false, false, false},
		{false, true, false, true},
		{true, false, false, true},
		{true, true, true, true},
	}
	for _, tc := range testCases {
		s := newTestSystem()
		a := s.ConstantBoolean(tc.a)
		b := s.ConstantBoolean(tc.b)
		require.Equal(t, tc.and, s.And("and", a, b).Value)
		require.Equal(t, tc.or, s.Or("or", a, b).Value)
		require.Equal(t, !tc.a, s.Not("not", a).Value)
		require.Equal(t, 5, s.NbGates())
	}
}

func TestAssertBooleansEqual(t *testing.T) {
	s := newTestSystem()
	a := s.ConstantBoolean(true)
	b := s.ConstantBoolean(true)
	c := s.ConstantBoolean(false)

	require.NoError(t, s.AssertBooleansEqual("enforce bool equal", a, b))
	err := s.AssertBooleansEqual("enforce bool equal", a, c)
	require.ErrorIs(t, err, ErrGateAllocation)

	// the failed assertion is still recorded; the caller discards the system
	require.Equal(t, 2, s.Stats().NbAssertions)
}

func TestAssertUInt32sEqual(t *testing.T) {
	s := newTestSystem()
	x := s.ConstantUInt32(7)
	y := s.ConstantUInt32(8)
	enforced := s.ConstantBoolean(true)
	skipped := s.ConstantBoolean(false)

	require.NoError(t, s.AssertUInt32sEqual("enforce field equal", x, x, enforced))
	require.NoError(t, s.AssertUInt32sEqual("enforce field equal", x, y, skipped))
	err := s.AssertUInt32sEqual("enforce field equal", x, y, enforced)
	require.ErrorIs(t, err, ErrGateAllocation)
}

func TestArithmeticGates(t *testing.T) {
	testCases := []struct {
		name string
		op   func(s *System, a, b UInt32) (UInt32, error)
		a, b uint32
		want uint32
	}{
		{"add", func(s *System, a, b UInt32) (UInt32, error) { return s.Add("add", a, b), nil }, 3, 4, 7},
		{"add wraps", func(s *System, a, b UInt32) (UInt32, error) { return s.Add("add", a, b), nil }, 1<<32 - 1, 1, 0},
		{"sub", func(s *System, a, b UInt32) (UInt32, error) { return s.Sub("sub", a, b), nil }, 10, 4, 6},
		{"sub wraps", func(s *System, a, b UInt32) (UInt32, error) { return s.Sub("sub", a, b), nil }, 0, 1, 1<<32 - 1},
		{"mul", func(s *System, a, b UInt32) (UInt32, error) { return s.Mul("mul", a, b), nil }, 6, 7, 42},
		{"mul wraps", func(s *System, a, b UInt32) (UInt32, error) { return s.Mul("mul", a, b), nil }, 1 << 31, 2, 0},
		{"div", func(s *System, a, b UInt32) (UInt32, error) { return s.Div("div", a, b) }, 7, 2, 3},
		{"pow", func(s *System, a, b UInt32) (UInt32, error) { return s.Pow("pow", a, b), nil }, 3, 4, 81},
		{"pow zero exponent", func(s *System, a, b UInt32) (UInt32, error) { return s.Pow("pow", a, b), nil }, 9, 0, 1},
		{"pow wraps", func(s *System, a, b UInt32) (UInt32, error) { return s.Pow("pow", a, b), nil }, 2, 32, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSystem()
			a := s.ConstantUInt32(tc.a)
			b := s.ConstantUInt32(tc.b)
			res, err := tc.op(s, a, b)
			require.NoError(t, err)
			require.Equal(t, tc.want, res.Value)
			require.Equal(t, s.Field().FromInterface(tc.want), s.WireValue(res.Wire))
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	s := newTestSystem()
	a := s.ConstantUInt32(5)
	zero := s.ConstantUInt32(0)
	_, err := s.Div("div", a, zero)
	require.ErrorIs(t, err, ErrGateAllocation)
}

func TestInputGates(t *testing.T) {
	s := newTestSystem()
	b := s.AllocBoolean("a", true)
	u := s.AllocUInt32("n", 9)
	require.True(t, b.Value)
	require.Equal(t, uint32(9), u.Value)
	require.True(t, s.IsBooleanWire(b.Wire))
	require.False(t, s.IsBooleanWire(u.Wire))

	stats := s.Stats()
	require.Equal(t, 2, stats.NbInputs)
	require.Equal(t, 2, stats.NbGates)
	require.Equal(t, 3, stats.NbWires)
}
