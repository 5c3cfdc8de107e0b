package generators

import (
	"bytes"
	"testing"

	"github.com/iscc-community/iscc-core-go/internal/config"
)

func TestGenDataCodeDeterministic(t *testing.T) {
	opts := config.DefaultOptions()
	payload := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 500)
	a, err := GenDataCode(bytes.NewReader(payload), 64, opts)
	if err != nil {
		t.Fatalf("GenDataCode: %v", err)
	}
	b, err := GenDataCode(bytes.NewReader(payload), 64, opts)
	if err != nil {
		t.Fatalf("GenDataCode: %v", err)
	}
	if a.Code.Code() != b.Code.Code() {
		t.Fatalf("expected deterministic output")
	}
}

func TestGenDataCodeDiffersOnChangedInput(t *testing.T) {
	opts := config.DefaultOptions()
	a, err := GenDataCode(bytes.NewReader(bytes.Repeat([]byte("a"), 4096)), 64, opts)
	if err != nil {
		t.Fatalf("GenDataCode: %v", err)
	}
	b, err := GenDataCode(bytes.NewReader(bytes.Repeat([]byte("b"), 4096)), 64, opts)
	if err != nil {
		t.Fatalf("GenDataCode: %v", err)
	}
	if a.Code.Code() == b.Code.Code() {
		t.Fatal("expected different inputs to produce different codes")
	}
}

func TestGenDataCodeEmptyInput(t *testing.T) {
	opts := config.DefaultOptions()
	if _, err := GenDataCode(bytes.NewReader(nil), 64, opts); err != nil {
		t.Fatalf("GenDataCode on empty input: %v", err)
	}
}
