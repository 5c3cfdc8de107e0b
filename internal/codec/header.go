package codec

import (
	"fmt"

	"github.com/iscc-community/iscc-core-go/internal/isccerr"
)

// Header is the 4-tuple (MainType, SubType, Version, LengthCode) framing a
// single ISCC unit or composite code (spec.md §3).
type Header struct {
	MainType   MainType
	SubType    SubType
	Version    Version
	LengthCode LengthCode
}

// WriteHeader nibble-packs h per spec.md §6: each field is encoded as a
// variable-length sequence of nibbles (3 payload bits plus a continuation
// flag in the high bit; a field under 8 fits in a single terminal nibble),
// the four fields' nibble sequences are concatenated, then packed two
// nibbles per byte, high nibble first, with a trailing zero nibble if the
// total count is odd.
func WriteHeader(h Header) []byte {
	var nibbles []byte
	nibbles = append(nibbles, encodeVarNibble(int(h.MainType))...)
	nibbles = append(nibbles, encodeVarNibble(int(h.SubType))...)
	nibbles = append(nibbles, encodeVarNibble(int(h.Version))...)
	nibbles = append(nibbles, encodeVarNibble(int(h.LengthCode))...)
	return packNibbles(nibbles)
}

// ReadHeader parses a nibble-packed header prefix of b, returning the
// decoded header and the remaining bytes (the body). It fails with
// ErrHeaderMalformed if a field's nibble sequence runs past the end of b
// without a terminal (high-bit-clear) nibble, and with ErrUnknownMainType /
// ErrUnknownSubType if the decoded enums are out of range.
func ReadHeader(b []byte) (Header, []byte, error) {
	nibbles := unpackNibbles(b)

	var h Header
	pos := 0

	mt, n, err := decodeVarNibble(nibbles, pos)
	if err != nil {
		return Header{}, nil, err
	}
	h.MainType = MainType(mt)
	pos += n

	st, n, err := decodeVarNibble(nibbles, pos)
	if err != nil {
		return Header{}, nil, err
	}
	h.SubType = SubType(st)
	pos += n

	vs, n, err := decodeVarNibble(nibbles, pos)
	if err != nil {
		return Header{}, nil, err
	}
	h.Version = Version(vs)
	pos += n

	ln, n, err := decodeVarNibble(nibbles, pos)
	if err != nil {
		return Header{}, nil, err
	}
	h.LengthCode = LengthCode(ln)
	pos += n

	if !ValidMainType(h.MainType) {
		return Header{}, nil, fmt.Errorf("%w: main type %d", isccerr.ErrUnknownMainType, int(h.MainType))
	}
	if !ValidSubType(h.MainType, h.SubType) {
		return Header{}, nil, fmt.Errorf("%w: sub type %d for main type %s", isccerr.ErrUnknownSubType, int(h.SubType), h.MainType)
	}

	// pos counts consumed nibbles; the body starts at the next whole byte.
	headerNibbleLen := pos
	if headerNibbleLen%2 != 0 {
		headerNibbleLen++ // trailing pad nibble
	}
	headerByteLen := headerNibbleLen / 2
	if headerByteLen > len(b) {
		return Header{}, nil, fmt.Errorf("%w: truncated header", isccerr.ErrHeaderMalformed)
	}
	return h, b[headerByteLen:], nil
}

// encodeVarNibble encodes a single field value as a sequence of nibbles: 3
// payload bits per nibble, high bit set on every nibble but the last.
func encodeVarNibble(v int) []byte {
	var out []byte
	for v >= 8 {
		out = append(out, byte(8|(v&7)))
		v >>= 3
	}
	out = append(out, byte(v))
	return out
}

// decodeVarNibble reads a single field's nibble sequence starting at
// nibbles[pos], returning its value and the number of nibbles consumed.
func decodeVarNibble(nibbles []byte, pos int) (int, int, error) {
	value := 0
	shift := uint(0)
	n := 0
	for {
		if pos+n >= len(nibbles) {
			return 0, 0, fmt.Errorf("%w: truncated field", isccerr.ErrHeaderMalformed)
		}
		nb := nibbles[pos+n]
		value |= int(nb&7) << shift
		n++
		if nb&8 == 0 {
			return value, n, nil
		}
		shift += 3
	}
}

// packNibbles packs a sequence of 4-bit values two per byte, high nibble
// first, padding with a trailing zero nibble if the count is odd.
func packNibbles(nibbles []byte) []byte {
	if len(nibbles)%2 != 0 {
		nibbles = append(nibbles, 0)
	}
	out := make([]byte, len(nibbles)/2)
	for i := 0; i < len(nibbles); i += 2 {
		out[i/2] = nibbles[i]<<4 | nibbles[i+1]
	}
	return out
}

// unpackNibbles splits every byte of b into its high and low nibble, high
// nibble first.
func unpackNibbles(b []byte) []byte {
	out := make([]byte, 0, len(b)*2)
	for _, by := range b {
		out = append(out, by>>4, by&0x0f)
	}
	return out
}
