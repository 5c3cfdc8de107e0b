package isccid

import "github.com/iscc-community/iscc-core-go/internal/codec"

// ComposeISCC merges unit Codes into a single ISCC-composite Code
// (spec.md §4.6 `compose`). Each input must be a non-ISCC unit code; at
// least a Data or Instance unit must be present and no main type may
// repeat.
func ComposeISCC(units ...Code) (Code, error) {
	parts := make([]codec.Unit, len(units))
	for i, u := range units {
		parts[i] = codec.Unit{MainType: u.header.MainType, Body: u.body}
	}
	h, body, err := codec.Compose(parts)
	if err != nil {
		return Code{}, err
	}
	return Code{header: h, body: body}, nil
}

// DecomposeISCC reverses ComposeISCC, returning each constituent unit's
// canonical 64-bit-truncated Code (spec.md §4.6 `decompose`). The original
// content sub-type of a CONTENT unit is not recoverable from the
// composite; decomposed CONTENT units carry SubTypeNone.
func DecomposeISCC(composite Code) ([]Code, error) {
	units, err := codec.Decompose(composite.header, composite.body)
	if err != nil {
		return nil, err
	}
	out := make([]Code, len(units))
	for i, u := range units {
		ln, err := codec.UnitLengthForBits(len(u.Body) * 8)
		if err != nil {
			return nil, err
		}
		out[i] = Code{header: codec.Header{MainType: u.MainType, SubType: codec.SubTypeNone, Version: codec.VersionV0, LengthCode: ln}, body: u.Body}
	}
	return out, nil
}
