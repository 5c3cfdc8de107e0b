package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/iscc-community/iscc-core-go/internal/isccerr"
)

func eightBytes(b byte) []byte {
	out := make([]byte, 8)
	for i := range out {
		out[i] = b
	}
	return out
}

func TestComposeDecomposeRoundTrip(t *testing.T) {
	units := []Unit{
		{MainType: MainTypeMeta, Body: eightBytes(0x11)},
		{MainType: MainTypeContent, Body: eightBytes(0x22)},
		{MainType: MainTypeData, Body: eightBytes(0x33)},
		{MainType: MainTypeInstance, Body: eightBytes(0x44)},
	}
	h, body, err := Compose(units)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if h.MainType != MainTypeISCC {
		t.Fatalf("expected ISCC main type, got %s", h.MainType)
	}
	wantBitmap := UnitMeta | UnitContent | UnitData | UnitInstance
	if h.SubType != wantBitmap {
		t.Fatalf("want bitmap %x got %x", wantBitmap, h.SubType)
	}
	if len(body) != 32 {
		t.Fatalf("want 32-byte composite body, got %d", len(body))
	}

	decomposed, err := Decompose(h, body)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	if len(decomposed) != len(units) {
		t.Fatalf("want %d units back, got %d", len(units), len(decomposed))
	}
	for i, u := range decomposed {
		if u.MainType != units[i].MainType {
			t.Fatalf("unit %d: want type %s got %s", i, units[i].MainType, u.MainType)
		}
		if !bytes.Equal(u.Body, units[i].Body) {
			t.Fatalf("unit %d: body mismatch", i)
		}
	}
}

func TestComposeRejectsDuplicateUnits(t *testing.T) {
	units := []Unit{
		{MainType: MainTypeData, Body: eightBytes(0x01)},
		{MainType: MainTypeData, Body: eightBytes(0x02)},
	}
	_, _, err := Compose(units)
	if !errors.Is(err, isccerr.ErrCompositionInvalid) {
		t.Fatalf("expected ErrCompositionInvalid, got %v", err)
	}
}

func TestComposeRequiresDataOrInstance(t *testing.T) {
	units := []Unit{
		{MainType: MainTypeMeta, Body: eightBytes(0x01)},
		{MainType: MainTypeContent, Body: eightBytes(0x02)},
	}
	_, _, err := Compose(units)
	if !errors.Is(err, isccerr.ErrCompositionInvalid) {
		t.Fatalf("expected ErrCompositionInvalid, got %v", err)
	}
}
