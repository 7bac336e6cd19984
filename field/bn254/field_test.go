package bn254

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	var engine Field

	a := engine.FromInterface(12345)
	b := engine.FromInterface(67890)

	require.Equal(t, big.NewInt(12345+67890), engine.ToBigInt(engine.Add(a, b)))
	require.Equal(t, big.NewInt(12345*67890), engine.ToBigInt(engine.Mul(a, b)))

	// subtraction wraps mod p
	diff := engine.ToBigInt(engine.Sub(engine.FromInterface(3), engine.FromInterface(5)))
	want := new(big.Int).Sub(ScalarField, big.NewInt(2))
	require.Equal(t, want, diff)

	neg := engine.Add(a, engine.Neg(a))
	// Cmp avoids reflect.DeepEqual on big.Int internals: a zero produced by
	// fr arithmetic has an empty (non-nil) abs slice, unlike big.NewInt(0).
	require.Equal(t, 0, big.NewInt(0).Cmp(engine.ToBigInt(neg)))
}

func TestInverse(t *testing.T) {
	var engine Field

	a := engine.FromInterface(987654321)
	inv, ok := engine.Inverse(a)
	require.True(t, ok)
	require.True(t, engine.IsOne(engine.Mul(a, inv)))

	_, ok = engine.Inverse(engine.FromInterface(0))
	require.False(t, ok)
}

func TestConversions(t *testing.T) {
	var engine Field

	require.True(t, engine.IsOne(engine.One()))

	u, ok := engine.Uint64(engine.FromInterface(uint64(1) << 40))
	require.True(t, ok)
	require.Equal(t, uint64(1)<<40, u)

	// a negative input reduces mod p
	m := engine.FromInterface(-1)
	want := new(big.Int).Sub(ScalarField, big.NewInt(1))
	require.Equal(t, want, engine.ToBigInt(m))
	_, ok = engine.Uint64(m)
	require.False(t, ok)

	require.Equal(t, "42", engine.String(engine.FromInterface(42)))
	require.Equal(t, 254, engine.FieldBitLen())
}
