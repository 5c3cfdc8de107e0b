package generators

import (
	"fmt"

	"github.com/iscc-community/iscc-core-go/internal/codec"
	"github.com/iscc-community/iscc-core-go/internal/config"
	"github.com/iscc-community/iscc-core-go/internal/isccerr"
	"github.com/iscc-community/iscc-core-go/internal/isccid"
	"github.com/iscc-community/iscc-core-go/internal/kernels"
)

// MixedResult is the Mixed-Content-Code generator's output.
type MixedResult struct {
	Code isccid.Code
}

// GenMixedCode creates a Mixed-Content-Code from a list of existing
// Content-Code bodies of equal bit length (spec.md §4.7): every bit is
// interpreted as a +-1 vote, the votes are summed across all inputs, and
// the sign of the sum (ties resolving low) becomes the output body — the
// same bitwise-majority rule as SimHash, applied directly to code bodies.
func GenMixedCode(bodies [][]byte, bits int, opts *config.Options) (MixedResult, error) {
	if err := checkBits(bits); err != nil {
		return MixedResult{}, err
	}
	if len(bodies) == 0 {
		return MixedResult{}, fmt.Errorf("%w: empty content-code list", isccerr.ErrInvalidInput)
	}
	want := len(bodies[0])
	for _, b := range bodies {
		if len(b) != want {
			return MixedResult{}, fmt.Errorf("%w: all content-code bodies must have equal length", isccerr.ErrInvalidInput)
		}
	}

	digest := kernels.SimHash(bodies)

	code, err := codec.EncodeComponent(codec.MainTypeContent, codec.SubTypeMixed, codec.VersionV0, bits, digest)
	if err != nil {
		return MixedResult{}, err
	}
	c, err := isccid.FromText(code)
	if err != nil {
		return MixedResult{}, err
	}
	return MixedResult{Code: c}, nil
}
