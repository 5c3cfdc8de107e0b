package generators

import (
	"testing"

	"github.com/iscc-community/iscc-core-go/internal/config"
)

func TestGenAudioCodeDeterministic(t *testing.T) {
	opts := config.DefaultOptions()
	features := []uint32{1, 2, 3, 4, 5, 100, 65535}
	a, err := GenAudioCode(features, 256, opts)
	if err != nil {
		t.Fatalf("GenAudioCode: %v", err)
	}
	b, err := GenAudioCode(features, 256, opts)
	if err != nil {
		t.Fatalf("GenAudioCode: %v", err)
	}
	if a.Code.Code() != b.Code.Code() {
		t.Fatalf("expected deterministic output")
	}
}

func TestGenAudioCodeTruncationIsPrefix(t *testing.T) {
	opts := config.DefaultOptions()
	features := []uint32{7, 9, 11, 1000}
	full, err := GenAudioCode(features, 256, opts)
	if err != nil {
		t.Fatalf("GenAudioCode 256: %v", err)
	}
	short, err := GenAudioCode(features, 64, opts)
	if err != nil {
		t.Fatalf("GenAudioCode 64: %v", err)
	}
	fullBody := full.Code.Body()
	shortBody := short.Code.Body()
	for i, b := range shortBody {
		if fullBody[i] != b {
			t.Fatalf("truncation not a prefix at byte %d: %x vs %x", i, fullBody, shortBody)
		}
	}
}

func TestGenAudioCodeRejectsBadBits(t *testing.T) {
	opts := config.DefaultOptions()
	if _, err := GenAudioCode([]uint32{1}, 50, opts); err == nil {
		t.Fatal("expected error for non-multiple-of-32 bits")
	}
}
