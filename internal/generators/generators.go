// Package generators wires normalized input through the similarity-hashing
// kernels and the codec to produce each of the eight ISCC unit codes
// (spec.md §4.7): Meta, Text, Image, Audio, Video, Mixed, Data, Instance.
package generators

import (
	"fmt"

	"github.com/iscc-community/iscc-core-go/internal/config"
	"github.com/iscc-community/iscc-core-go/internal/isccerr"
)

// checkBits validates a requested code bit-length against spec.md §4.7's
// "multiple of 32 in [32, 256]" rule, common to every generator.
func checkBits(bits int) error {
	if bits < 32 || bits > 256 || bits%32 != 0 {
		return fmt.Errorf("%w: bits must be a multiple of 32 in [32, 256], got %d", isccerr.ErrInvalidBitLength, bits)
	}
	return nil
}

// Options is a convenience alias so callers of this package do not need to
// import internal/config directly just to build a generator call.
type Options = config.Options
