package isccid

import (
	"testing"

	"github.com/iscc-community/iscc-core-go/internal/codec"
)

func TestComposeISCCRoundTrip(t *testing.T) {
	dataCode, err := FromParts(codec.MainTypeData, codec.SubTypeNone, codec.VersionV0, codec.LengthCode(1), make([]byte, 8))
	if err != nil {
		t.Fatalf("FromParts data: %v", err)
	}
	instanceCode, err := FromParts(codec.MainTypeInstance, codec.SubTypeNone, codec.VersionV0, codec.LengthCode(1), bytesOf(8, 0x42))
	if err != nil {
		t.Fatalf("FromParts instance: %v", err)
	}

	composite, err := ComposeISCC(dataCode, instanceCode)
	if err != nil {
		t.Fatalf("ComposeISCC: %v", err)
	}
	if composite.MainType() != codec.MainTypeISCC {
		t.Fatalf("expected ISCC main type, got %s", composite.MainType())
	}

	units, err := DecomposeISCC(composite)
	if err != nil {
		t.Fatalf("DecomposeISCC: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("want 2 units, got %d", len(units))
	}
	if units[1].Body()[0] != 0x42 {
		t.Fatalf("unexpected instance unit body %x", units[1].Body())
	}
}

func bytesOf(n int, v byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = v
	}
	return out
}
