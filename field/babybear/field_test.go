package babybear

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	var engine Field

	a := engine.FromInterface(P - 1)
	b := engine.FromInterface(2)

	require.Equal(t, big.NewInt(1), engine.ToBigInt(engine.Add(a, b)))
	require.Equal(t, big.NewInt(P-2), engine.ToBigInt(engine.Mul(a, b)))
	require.Equal(t, big.NewInt(P-2), engine.ToBigInt(engine.Sub(engine.FromInterface(3), engine.FromInterface(5))))
	require.Equal(t, big.NewInt(0), engine.ToBigInt(engine.Add(a, engine.Neg(a))))
}

func TestInverse(t *testing.T) {
	var engine Field

	for _, x := range []uint64{1, 2, 12345, P - 1} {
		a := engine.FromInterface(x)
		inv, ok := engine.Inverse(a)
		require.True(t, ok)
		require.True(t, engine.IsOne(engine.Mul(a, inv)))
	}

	_, ok := engine.Inverse(engine.FromInterface(0))
	require.False(t, ok)
}
