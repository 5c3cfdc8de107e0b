// Package isccid implements the Code value object: the immutable,
// constructible-from-anything representation of a single ISCC used by
// callers of internal/generators (spec.md §4.8).
package isccid

import (
	"encoding/base64"
	"fmt"
	"math/bits"
	"math/big"

	"github.com/iscc-community/iscc-core-go/internal/codec"
	"github.com/iscc-community/iscc-core-go/internal/isccerr"
	"github.com/mr-tron/base58"
)

// mcPrefix is the two-byte multicodec prefix registered for ISCC
// (spec.md §6: `0xCC 0x01`).
var mcPrefix = []byte{0xcc, 0x01}

// Code is an immutable ISCC value: a header plus its raw body bytes.
type Code struct {
	header codec.Header
	body   []byte
}

// FromParts builds a Code from an explicit header tuple and body bytes. It
// validates that the body's bit length matches the header's declared
// length (spec.md §3 invariant).
func FromParts(mt codec.MainType, st codec.SubType, vs codec.Version, ln codec.LengthCode, body []byte) (Code, error) {
	if !codec.ValidMainType(mt) {
		return Code{}, fmt.Errorf("%w: main type %d", isccerr.ErrUnknownMainType, int(mt))
	}
	if !codec.ValidSubType(mt, st) {
		return Code{}, fmt.Errorf("%w: sub type %d", isccerr.ErrUnknownSubType, int(st))
	}
	if mt != codec.MainTypeISCC {
		wantBits := codec.UnitBitsForLength(ln)
		if len(body)*8 != wantBits {
			return Code{}, fmt.Errorf("%w: body is %d bits, header declares %d", isccerr.ErrInvalidInput, len(body)*8, wantBits)
		}
	}
	return Code{header: codec.Header{MainType: mt, SubType: st, Version: vs, LengthCode: ln}, body: append([]byte(nil), body...)}, nil
}

// FromBytes parses a raw binary-form ISCC (header nibble stream followed by
// body bytes).
func FromBytes(b []byte) (Code, error) {
	h, body, err := codec.ReadHeader(b)
	if err != nil {
		return Code{}, err
	}
	return Code{header: h, body: append([]byte(nil), body...)}, nil
}

// FromText parses a textual ISCC: an optional `ISCC:` prefix, optionally
// with hyphens/whitespace, base32-encoded.
func FromText(s string) (Code, error) {
	raw, err := codec.DecodeBase32(codec.Clean(s))
	if err != nil {
		return Code{}, err
	}
	return FromBytes(raw)
}

// Clone returns a copy of c (Code values are already immutable, so this is
// mostly useful for the polymorphic "construct from a Code" case named in
// spec.md §9).
func (c Code) Clone() Code {
	return Code{header: c.header, body: append([]byte(nil), c.body...)}
}

// Bytes returns the raw binary form: header bytes followed by body bytes.
func (c Code) Bytes() []byte {
	return append(codec.WriteHeader(c.header), c.body...)
}

// HeaderBytes returns just the nibble-packed header prefix.
func (c Code) HeaderBytes() []byte {
	return codec.WriteHeader(c.header)
}

// Hex returns the full binary form (header+body) hex-encoded.
func (c Code) Hex() string {
	return fmt.Sprintf("%x", c.Bytes())
}

// Uint returns the full binary form as a big-endian unsigned integer.
func (c Code) Uint() *big.Int {
	return new(big.Int).SetBytes(c.Bytes())
}

// Code returns the standard `ISCC:`-prefixed base32 text form.
func (c Code) Code() string {
	return "ISCC:" + codec.EncodeBase32(c.Bytes())
}

// String implements fmt.Stringer using Code().
func (c Code) String() string {
	return c.Code()
}

// URI returns the lower-case `iscc:` URI form.
func (c Code) URI() string {
	return "iscc:" + toLower(codec.EncodeBase32(c.Bytes()))
}

// MainType returns the code's main type.
func (c Code) MainType() codec.MainType { return c.header.MainType }

// SubType returns the code's sub type.
func (c Code) SubType() codec.SubType { return c.header.SubType }

// Version returns the code's version.
func (c Code) Version() codec.Version { return c.header.Version }

// BodyBits returns the declared bit-length of the body.
func (c Code) BodyBits() int {
	if c.header.MainType == codec.MainTypeISCC {
		return len(c.body) * 8
	}
	return codec.UnitBitsForLength(c.header.LengthCode)
}

// Body returns the raw body bytes (no header).
func (c Code) Body() []byte {
	return append([]byte(nil), c.body...)
}

// MCBytes returns the binary form with the ISCC multicodec prefix.
func (c Code) MCBytes() []byte {
	return append(append([]byte(nil), mcPrefix...), c.Bytes()...)
}

// MFBase16 returns the multiformat base16 (`f`-prefixed) text encoding.
func (c Code) MFBase16() string {
	return "f" + fmt.Sprintf("%x", c.MCBytes())
}

// MFBase32 returns the multiformat base32 (`b`-prefixed, lower-case) text
// encoding.
func (c Code) MFBase32() string {
	return "b" + toLower(codec.EncodeBase32(c.MCBytes()))
}

// MFBase58BTC returns the multiformat base58-btc (`z`-prefixed) text
// encoding.
func (c Code) MFBase58BTC() string {
	return "z" + base58.Encode(c.MCBytes())
}

// MFBase64URL returns the multiformat base64url-no-padding (`u`-prefixed)
// text encoding.
func (c Code) MFBase64URL() string {
	return "u" + base64.RawURLEncoding.EncodeToString(c.MCBytes())
}

// HammingDistance returns popcount(XOR(a.Body, b.Body)). It is only
// defined when a and b agree in (MainType, SubType, BodyBits); otherwise it
// returns ErrInvalidInput (spec.md §4.8).
func HammingDistance(a, b Code) (int, error) {
	if a.header.MainType != b.header.MainType || a.header.SubType != b.header.SubType || a.BodyBits() != b.BodyBits() {
		return 0, fmt.Errorf("%w: hamming distance requires matching (maintype, subtype, length)", isccerr.ErrInvalidInput)
	}
	dist := 0
	for i := 0; i < len(a.body) && i < len(b.body); i++ {
		dist += bits.OnesCount8(a.body[i] ^ b.body[i])
	}
	return dist, nil
}

func toLower(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'A' && c <= 'Z' {
			out[i] = c + ('a' - 'A')
		}
	}
	return string(out)
}
