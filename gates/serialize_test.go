package gates

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/stretchr/testify/require"

	"github.com/glyphlang/glyph/field"
	"github.com/glyphlang/glyph/field/babybear"
)

func buildSampleSystem(t *testing.T, f field.Field) *System {
	t.Helper()
	s := NewSystem(f)
	a := s.AllocBoolean("a", true)
	b := s.ConstantBoolean(true)
	require.NoError(t, s.AssertBooleansEqual("enforce bool equal", a, b))
	x := s.AllocUInt32("x", 41)
	y := s.Add("enforce 41 + 1", x, s.ConstantUInt32(1))
	require.NoError(t, s.AssertUInt32sEqual("enforce field equal", y, s.ConstantUInt32(42), b))
	return s
}

func TestSerializeRoundTrip(t *testing.T) {
	fields := map[string]field.Field{
		"babybear": field.GetFieldFromOrder(babybear.ScalarField),
		"bn254":    field.GetFieldFromOrder(ecc.BN254.ScalarField()),
	}
	for name, f := range fields {
		t.Run(name, func(t *testing.T) {
			s := buildSampleSystem(t, f)

			data, err := s.Serialize()
			require.NoError(t, err)

			restored, err := Deserialize(data)
			require.NoError(t, err)

			require.Equal(t, s.Field().Field(), restored.Field().Field())
			require.Equal(t, s.Gates(), restored.Gates())
			require.Equal(t, s.Stats(), restored.Stats())
			for i := 0; i < s.NbWires(); i++ {
				require.Equal(t, s.WireValue(i), restored.WireValue(i))
				require.Equal(t, s.IsBooleanWire(i), restored.IsBooleanWire(i))
			}
		})
	}
}

func TestDeserializeRejectsGarbage(t *testing.T) {
	_, err := Deserialize([]byte{0xde, 0xad, 0xbe, 0xef})
	require.Error(t, err)
}
