// Package bn254 implements the field engine for the BN254 scalar field,
// backed by gnark-crypto. Elements are stored in Montgomery form in the
// first fr.Limbs limbs of a constraint.Element.
package bn254

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/constraint"

	"github.com/glyphlang/glyph/utils"
)

var ScalarField = fr.Modulus()

type Field struct{}

func toFr(c constraint.Element) fr.Element {
	var e fr.Element
	copy(e[:], c[:fr.Limbs])
	return e
}

func fromFr(e fr.Element) constraint.Element {
	var c constraint.Element
	copy(c[:], e[:])
	return c
}

func (engine *Field) FromInterface(i interface{}) constraint.Element {
	b := utils.FromInterface(i)
	var e fr.Element
	e.SetBigInt(&b)
	return fromFr(e)
}

func (engine *Field) ToBigInt(c constraint.Element) *big.Int {
	e := toFr(c)
	return e.BigInt(new(big.Int))
}

func (engine *Field) Mul(a, b constraint.Element) constraint.Element {
	x, y := toFr(a), toFr(b)
	x.Mul(&x, &y)
	return fromFr(x)
}

func (engine *Field) Add(a, b constraint.Element) constraint.Element {
	x, y := toFr(a), toFr(b)
	x.Add(&x, &y)
	return fromFr(x)
}

func (engine *Field) Sub(a, b constraint.Element) constraint.Element {
	x, y := toFr(a), toFr(b)
	x.Sub(&x, &y)
	return fromFr(x)
}

func (engine *Field) Neg(a constraint.Element) constraint.Element {
	x := toFr(a)
	x.Neg(&x)
	return fromFr(x)
}

func (engine *Field) Inverse(a constraint.Element) (constraint.Element, bool) {
	x := toFr(a)
	if x.IsZero() {
		return a, false
	}
	x.Inverse(&x)
	return fromFr(x), true
}

func (engine *Field) IsOne(a constraint.Element) bool {
	x := toFr(a)
	return x.IsOne()
}

func (engine *Field) One() constraint.Element {
	var e fr.Element
	e.SetOne()
	return fromFr(e)
}

func (engine *Field) String(a constraint.Element) string {
	x := toFr(a)
	return x.String()
}

func (engine *Field) Uint64(a constraint.Element) (uint64, bool) {
	b := engine.ToBigInt(a)
	return b.Uint64(), b.IsUint64()
}

func (engine *Field) Field() *big.Int {
	return ScalarField
}

func (engine *Field) FieldBitLen() int {
	return fr.Bits
}
