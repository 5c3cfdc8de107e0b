package generators

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/iscc-community/iscc-core-go/internal/bitops"
	"github.com/iscc-community/iscc-core-go/internal/blake3hash"
	"github.com/iscc-community/iscc-core-go/internal/codec"
	"github.com/iscc-community/iscc-core-go/internal/config"
	"github.com/iscc-community/iscc-core-go/internal/isccerr"
	"github.com/iscc-community/iscc-core-go/internal/isccid"
	"github.com/iscc-community/iscc-core-go/internal/kernels"
)

// MetaResult is the Meta-Code generator's output (spec.md §4.7 step 1-7,
// supplemented per SPEC_FULL.md §5 with typed Name/Description fields
// rather than side-channel strings).
type MetaResult struct {
	Code        isccid.Code
	Name        string
	Description string
	MetaHash    string
}

// GenMetaCode creates a Meta-Code from a name and an optional description.
// description may be nil, a string, or a []byte; any other type is rejected
// with ErrInvalidInput (spec.md §9: the polymorphic Python constructor is
// re-architected as named Go constructors, but this one call-site keeps a
// tagged-input parameter because the original API genuinely accepts three
// input shapes for the same field).
func GenMetaCode(name string, description any, bits int, opts *config.Options) (MetaResult, error) {
	if err := checkBits(bits); err != nil {
		return MetaResult{}, err
	}

	normName := trimUTF8(collapseText(name), opts.MetaTrimTitle)

	var (
		metahashPayload []byte
		normExtraText   string
		normExtraBytes  []byte
		extraIsBytes    bool
		haveExtra       bool
	)

	switch d := description.(type) {
	case nil:
		metahashPayload = []byte(normName)
	case string:
		if d == "" {
			metahashPayload = []byte(normName)
			break
		}
		metahashPayload = []byte(d)
		normExtraText = trimUTF8(collapseText(d), opts.MetaTrimExtra)
		haveExtra = true
	case []byte:
		if len(d) == 0 {
			metahashPayload = []byte(normName)
			break
		}
		metahashPayload = append([]byte(nil), d...)
		normExtraBytes = d
		if len(normExtraBytes) > opts.MetaTrimExtra {
			normExtraBytes = normExtraBytes[:opts.MetaTrimExtra]
		}
		extraIsBytes = true
		haveExtra = true
	default:
		return MetaResult{}, fmt.Errorf("%w: description must be nil, string, or []byte", isccerr.ErrInvalidInput)
	}

	digest := softHashMetaV0(normName, normExtraText, normExtraBytes, haveExtra, extraIsBytes, opts)

	code, err := codec.EncodeComponent(codec.MainTypeMeta, codec.SubTypeNone, codec.VersionV0, bits, digest)
	if err != nil {
		return MetaResult{}, err
	}
	c, err := isccid.FromText(code)
	if err != nil {
		return MetaResult{}, err
	}

	metahash := fmt.Sprintf("%x", blake3hash.Sum256(metahashPayload))

	result := MetaResult{Code: c, MetaHash: metahash}
	if normName != "" {
		result.Name = normName
	}
	if haveExtra {
		if extraIsBytes {
			result.Description = base64.StdEncoding.EncodeToString(normExtraBytes)
		} else {
			result.Description = normExtraText
		}
	}
	return result, nil
}

// softHashMetaV0 computes the 256-bit similarity digest from normalized
// title/extra metadata (spec.md §4.7 steps 3-5; `iscc_core.code_meta.
// soft_hash_meta_v0`).
func softHashMetaV0(name, extraText string, extraBytes []byte, haveExtra, extraIsBytes bool, opts *config.Options) []byte {
	titleDigests := ngramDigests([]rune(strings.ToLower(name)), opts.MetaNgramSizeTitle)
	titleHash := kernels.SimHash(titleDigests)

	if !haveExtra {
		return titleHash
	}

	var extraDigests [][]byte
	if extraIsBytes {
		for _, ngram := range slidingWindowBytes(extraBytes, opts.MetaNgramSizeExtraBinary) {
			extraDigests = append(extraDigests, blake3hash.Sum256(ngram))
		}
	} else {
		lower := []rune(strings.ToLower(extraText))
		for _, ngram := range slidingWindowRunes(lower, opts.MetaNgramSizeExtraText) {
			extraDigests = append(extraDigests, blake3hash.Sum256([]byte(string(ngram))))
		}
	}
	extraHash := kernels.SimHash(extraDigests)

	return bitops.Interleave4(titleHash[:16], extraHash[:16])
}

// ngramDigests blake3-hashes every width-rune sliding window of s.
func ngramDigests(s []rune, width int) [][]byte {
	var out [][]byte
	for _, ngram := range slidingWindowRunes(s, width) {
		out = append(out, blake3hash.Sum256([]byte(string(ngram))))
	}
	return out
}
