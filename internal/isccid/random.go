package isccid

import (
	"crypto/rand"

	"github.com/iscc-community/iscc-core-go/internal/codec"
)

// Random returns a syntactically valid Code with bits random body bytes.
// Ported from `iscc_core.models.Code.rnd` (spec.md §9 supplement) for use
// in this package's own round-trip property tests; spec.md's Non-goals
// exclude randomization from code *generation* proper, so this is test
// tooling only and is not exposed from internal/generators.
func Random(mt codec.MainType, st codec.SubType, bits int) (Code, error) {
	ln, err := codec.UnitLengthForBits(bits)
	if err != nil {
		return Code{}, err
	}
	body := make([]byte, bits/8)
	if _, err := rand.Read(body); err != nil {
		return Code{}, err
	}
	return FromParts(mt, st, codec.VersionV0, ln, body)
}
