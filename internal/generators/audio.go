package generators

import (
	"github.com/iscc-community/iscc-core-go/internal/codec"
	"github.com/iscc-community/iscc-core-go/internal/config"
	"github.com/iscc-community/iscc-core-go/internal/isccid"
	"github.com/iscc-community/iscc-core-go/internal/kernels"
)

// AudioResult is the Audio-Code generator's output.
type AudioResult struct {
	Code isccid.Code
}

// GenAudioCode creates an Audio-Code from a Chromaprint-style sequence of
// 32-bit integer features (spec.md §4.7): MinHash the feature sequence and
// truncate to bits.
func GenAudioCode(features []uint32, bits int, opts *config.Options) (AudioResult, error) {
	if err := checkBits(bits); err != nil {
		return AudioResult{}, err
	}
	digest := kernels.MinHash(features)

	code, err := codec.EncodeComponent(codec.MainTypeContent, codec.SubTypeAudio, codec.VersionV0, bits, digest)
	if err != nil {
		return AudioResult{}, err
	}
	c, err := isccid.FromText(code)
	if err != nil {
		return AudioResult{}, err
	}
	return AudioResult{Code: c}, nil
}
