package generators

import (
	"testing"

	"github.com/iscc-community/iscc-core-go/internal/config"
)

func TestGenMixedCodeMajorityVote(t *testing.T) {
	opts := config.DefaultOptions()
	bodies := [][]byte{
		{0xff, 0x00, 0xff, 0x00},
		{0xff, 0x00, 0xff, 0x00},
		{0x00, 0xff, 0x00, 0xff},
	}
	r, err := GenMixedCode(bodies, 32, opts)
	if err != nil {
		t.Fatalf("GenMixedCode: %v", err)
	}
	// Bytes 0 and 2: two votes for 0xff, one for 0x00 -> majority 0xff.
	// Bytes 1 and 3: two votes for 0x00, one for 0xff -> majority 0x00.
	want := []byte{0xff, 0x00, 0xff, 0x00}
	got := r.Code.Body()
	if got[0] != want[0] || got[1] != want[1] || got[2] != want[2] || got[3] != want[3] {
		t.Fatalf("want %x got %x", want, got)
	}
}

func TestGenMixedCodeRejectsUnequalLengths(t *testing.T) {
	opts := config.DefaultOptions()
	bodies := [][]byte{{0xff, 0x00, 0xff, 0x00}, {0xff, 0x00, 0xff}}
	if _, err := GenMixedCode(bodies, 32, opts); err == nil {
		t.Fatal("expected error for unequal body lengths")
	}
}
