package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/iscc-community/iscc-core-go/internal/isccerr"
)

func TestHeaderRoundTrip(t *testing.T) {
	cases := []Header{
		{MainType: MainTypeMeta, SubType: SubTypeNone, Version: VersionV0, LengthCode: 1},
		{MainType: MainTypeContent, SubType: SubTypeText, Version: VersionV0, LengthCode: 7},
		{MainType: MainTypeContent, SubType: SubTypeVideo, Version: VersionV0, LengthCode: 3},
		{MainType: MainTypeISCC, SubType: UnitData | UnitInstance, Version: VersionV0, LengthCode: LengthCode(UnitData | UnitInstance)},
		{MainType: MainTypeISCC, SubType: UnitMeta | UnitSemantic | UnitContent | UnitData | UnitInstance, Version: VersionV0, LengthCode: 31},
		{MainType: MainTypeInstance, SubType: SubTypeNone, Version: VersionV0, LengthCode: 0},
	}
	for _, h := range cases {
		packed := WriteHeader(h)
		got, rest, err := ReadHeader(append(packed, 0xaa, 0xbb))
		if err != nil {
			t.Fatalf("ReadHeader(%+v): %v", h, err)
		}
		if got != h {
			t.Fatalf("round trip mismatch: want %+v got %+v", h, got)
		}
		if !bytes.Equal(rest, []byte{0xaa, 0xbb}) {
			t.Fatalf("expected body bytes preserved, got %x", rest)
		}
	}
}

func TestHeaderNibblePacking(t *testing.T) {
	// All fields < 8: MainType=CONTENT(2), SubType=IMAGE(1), Version=V0(0),
	// LengthCode=1 are one nibble each and pack into two bytes, high nibble
	// first.
	h := Header{MainType: MainTypeContent, SubType: SubTypeImage, Version: VersionV0, LengthCode: 1}
	got := WriteHeader(h)
	want := []byte{0x21, 0x01}
	if !bytes.Equal(got, want) {
		t.Fatalf("want %x got %x", want, got)
	}
}

func TestReadHeaderMalformed(t *testing.T) {
	// Both nibbles carry the continuation flag, so the field's varnibble
	// sequence runs past the end of the buffer without a terminal nibble.
	_, _, err := ReadHeader([]byte{0xf8})
	if !errors.Is(err, isccerr.ErrHeaderMalformed) {
		t.Fatalf("expected ErrHeaderMalformed, got %v", err)
	}
}

func TestReadHeaderUnknownMainType(t *testing.T) {
	// MainType nibble = 7, out of the enumerated [0,6] range.
	_, _, err := ReadHeader([]byte{0x70, 0x00})
	if !errors.Is(err, isccerr.ErrUnknownMainType) {
		t.Fatalf("expected ErrUnknownMainType, got %v", err)
	}
}
