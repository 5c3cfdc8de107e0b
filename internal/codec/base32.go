package codec

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/iscc-community/iscc-core-go/internal/isccerr"
)

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// EncodeBase32 encodes b as unpadded, uppercase RFC 4648 base32 (spec.md §4.6).
func EncodeBase32(b []byte) string {
	return b32.EncodeToString(b)
}

// DecodeBase32 decodes an unpadded RFC 4648 base32 string. Input is
// case-insensitive; the caller is expected to have already stripped the
// `ISCC:` prefix and any hyphens/whitespace via Clean.
func DecodeBase32(s string) ([]byte, error) {
	out, err := b32.DecodeString(strings.ToUpper(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", isccerr.ErrInvalidBase32, err)
	}
	return out, nil
}

// Clean strips the `ISCC:` prefix (case-insensitive) plus any hyphens and
// whitespace from a textual ISCC, readying it for DecodeBase32.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 5 && strings.EqualFold(s[:5], "ISCC:") {
		s = s[5:]
	}
	s = strings.TrimPrefix(s, "iscc:")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.Join(strings.Fields(s), "")
	return s
}

// EncodeComponent packs a header for (mt, st, vs, bitLength) and concatenates
// it with digest truncated to bitLength/8 bytes, then base32-encodes the
// result (spec.md §4.6 "encode_component").
func EncodeComponent(mt MainType, st SubType, vs Version, bitLength int, digest []byte) (string, error) {
	if bitLength <= 0 || bitLength%32 != 0 || bitLength > 256 {
		return "", fmt.Errorf("%w: bit length %d", isccerr.ErrInvalidBitLength, bitLength)
	}
	nbytes := bitLength / 8
	if nbytes > len(digest) {
		return "", fmt.Errorf("%w: digest shorter than requested bit length", isccerr.ErrInvalidInput)
	}
	lc, err := UnitLengthForBits(bitLength)
	if err != nil {
		return "", err
	}
	h := Header{MainType: mt, SubType: st, Version: vs, LengthCode: lc}
	body := digest[:nbytes]
	packed := append(WriteHeader(h), body...)
	return EncodeBase32(packed), nil
}
