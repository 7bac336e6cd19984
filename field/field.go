// Package field wraps the gnark constraint.Field contract with the modulus
// accessors the gate system needs.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/glyphlang/glyph/field/babybear"
	"github.com/glyphlang/glyph/field/bn254"
)

type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
}

// GetFieldFromOrder returns the engine for the given field order.
func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	if x.Cmp(babybear.ScalarField) == 0 {
		return &babybear.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}
