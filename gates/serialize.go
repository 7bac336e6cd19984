package gates

import (
	"fmt"
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark/constraint"
	"github.com/fxamacker/cbor/v2"

	"github.com/glyphlang/glyph/field"
)

// systemSnapshot is the serialized form of a System. The field engine is
// identified by its order and re-resolved on load.
type systemSnapshot struct {
	Field        []byte
	Values       []constraint.Element
	Gates        []Gate
	Booleans     []byte
	NbInputs     int
	NbAssertions int
}

// Serialize encodes the system with deterministic CBOR.
func (s *System) Serialize() ([]byte, error) {
	boolBytes, err := s.booleans.MarshalBinary()
	if err != nil {
		return nil, err
	}
	snapshot := systemSnapshot{
		Field:        s.field.Field().Bytes(),
		Values:       s.values,
		Gates:        s.gates,
		Booleans:     boolBytes,
		NbInputs:     s.nbInput,
		NbAssertions: s.nbAssert,
	}
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(&snapshot)
}

// Deserialize decodes a system serialized by Serialize. The field order must
// identify a known engine.
func Deserialize(data []byte) (*System, error) {
	var snapshot systemSnapshot
	if err := cbor.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	if len(snapshot.Values) == 0 {
		return nil, fmt.Errorf("malformed system: no constant wire")
	}
	booleans := bitset.New(uint(len(snapshot.Values)))
	if err := booleans.UnmarshalBinary(snapshot.Booleans); err != nil {
		return nil, err
	}
	return &System{
		field:    field.GetFieldFromOrder(new(big.Int).SetBytes(snapshot.Field)),
		values:   snapshot.Values,
		gates:    snapshot.Gates,
		booleans: booleans,
		nbInput:  snapshot.NbInputs,
		nbAssert: snapshot.NbAssertions,
	}, nil
}
