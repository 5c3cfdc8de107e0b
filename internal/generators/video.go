package generators

import (
	"fmt"

	"github.com/iscc-community/iscc-core-go/internal/codec"
	"github.com/iscc-community/iscc-core-go/internal/config"
	"github.com/iscc-community/iscc-core-go/internal/isccerr"
	"github.com/iscc-community/iscc-core-go/internal/isccid"
	"github.com/iscc-community/iscc-core-go/internal/kernels"
)

// VideoResult is the Video-Code generator's output.
type VideoResult struct {
	Code isccid.Code
}

// GenVideoCode creates a Video-Code from a sequence of MPEG-7 frame
// signature tuples of equal arity (spec.md §4.7): deduplicate the
// signatures (set semantics), sum column-wise, then WTAHash the resulting
// vector and truncate to bits.
func GenVideoCode(frameSignatures [][]int64, bits int, opts *config.Options) (VideoResult, error) {
	if err := checkBits(bits); err != nil {
		return VideoResult{}, err
	}
	if len(frameSignatures) == 0 {
		return VideoResult{}, fmt.Errorf("%w: empty frame signature sequence", isccerr.ErrInvalidInput)
	}

	vecLen := len(frameSignatures[0])
	seen := make(map[string]bool, len(frameSignatures))
	sums := make([]int64, vecLen)
	for _, sig := range frameSignatures {
		if len(sig) != vecLen {
			return VideoResult{}, fmt.Errorf("%w: all frame signatures must have the same arity", isccerr.ErrInvalidInput)
		}
		key := frameSigKey(sig)
		if seen[key] {
			continue
		}
		seen[key] = true
		for i, v := range sig {
			sums[i] += v
		}
	}

	digest := kernels.WTAHash(sums)

	code, err := codec.EncodeComponent(codec.MainTypeContent, codec.SubTypeVideo, codec.VersionV0, bits, digest)
	if err != nil {
		return VideoResult{}, err
	}
	c, err := isccid.FromText(code)
	if err != nil {
		return VideoResult{}, err
	}
	return VideoResult{Code: c}, nil
}

// frameSigKey builds a map key for set-deduplication of frame signature
// tuples.
func frameSigKey(sig []int64) string {
	b := make([]byte, 0, len(sig)*8)
	for _, v := range sig {
		b = append(b,
			byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
			byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
	return string(b)
}
