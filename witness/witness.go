// Package witness supplies external input values to the constraint
// generator. A variable that is used before it is bound is treated as a
// witness input; the generator asks the Provider for its value by name.
package witness

import (
	"math"

	"github.com/glyphlang/glyph/utils"
)

// Provider answers typed lookups for external inputs. The second return
// reports whether an assignment of that type exists for the name; the
// generator treats a missing assignment as fatal.
type Provider interface {
	Boolean(name string) (bool, bool)
	UInt32(name string) (uint32, bool)
}

// Map is an explicit name-to-value assignment. Boolean entries must be bool;
// integer entries accept anything utils.FromInterface handles, as long as
// the value fits in 32 bits.
type Map map[string]interface{}

func (m Map) Boolean(name string) (bool, bool) {
	v, ok := m[name]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func (m Map) UInt32(name string) (uint32, bool) {
	v, ok := m[name]
	if !ok {
		return 0, false
	}
	if _, isBool := v.(bool); isBool {
		return 0, false
	}
	b := utils.FromInterface(v)
	if !b.IsUint64() || b.Uint64() > math.MaxUint32 {
		return 0, false
	}
	return uint32(b.Uint64()), true
}

// Empty is the provider with no assignments.
var Empty Provider = Map(nil)
