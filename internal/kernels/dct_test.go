package kernels

import (
	"math"
	"testing"
)

func TestDCTConstantInputHasZeroACTerms(t *testing.T) {
	v := []float64{4, 4, 4, 4, 4, 4, 4, 4}
	out := DCT(v)
	for i := 1; i < len(out); i++ {
		if math.Abs(out[i]) > 1e-9 {
			t.Fatalf("expected near-zero AC term at %d for constant input, got %v", i, out[i])
		}
	}
}

func TestDCTSingleElement(t *testing.T) {
	out := DCT([]float64{3.14})
	if len(out) != 1 || out[0] != 3.14 {
		t.Fatalf("DCT of length-1 vector should be identity, got %v", out)
	}
}

func TestDCTPanicsOnNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for odd-length DCT input")
		}
	}()
	DCT([]float64{1, 2, 3})
}

func TestDCT2DSquareShape(t *testing.T) {
	m := make([][]float64, 8)
	for i := range m {
		m[i] = make([]float64, 8)
		for j := range m[i] {
			m[i][j] = float64((i + j) % 5)
		}
	}
	out := DCT2D(m)
	if len(out) != 8 {
		t.Fatalf("expected 8 rows, got %d", len(out))
	}
	for _, row := range out {
		if len(row) != 8 {
			t.Fatalf("expected 8 columns, got %d", len(row))
		}
	}
}
