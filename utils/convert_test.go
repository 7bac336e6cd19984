package utils

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromInterface(t *testing.T) {
	testCases := []struct {
		name  string
		input interface{}
		want  int64
	}{
		{"int", 42, 42},
		{"negative int", -7, -7},
		{"uint32", uint32(9), 9},
		{"uint64", uint64(100), 100},
		{"string", "1337", 1337},
		{"hex string", "0x10", 16},
		{"big.Int", *big.NewInt(5), 5},
		{"big.Int pointer", big.NewInt(6), 6},
		{"bytes", []byte{1, 0}, 256},
		{"bool", true, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := FromInterface(tc.input)
			require.Equal(t, big.NewInt(tc.want), &b)
		})
	}
}

func TestFromInterfacePanics(t *testing.T) {
	require.Panics(t, func() { FromInterface(3.14) })
	require.Panics(t, func() { FromInterface("not a number") })
}
