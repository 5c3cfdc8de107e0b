package kernels

import "math"

// DCT computes the 1-D type-II discrete cosine transform of v using
// Project Nayuki's fast recursive algorithm (spec.md §4.4). len(v) must be
// a power of two; DCT panics otherwise, since this is an internal kernel
// invariant rather than a user-facing input to validate.
func DCT(v []float64) []float64 {
	n := len(v)
	switch {
	case n == 1:
		out := make([]float64, 1)
		copy(out, v)
		return out
	case n == 0 || n%2 != 0:
		panic("kernels: DCT input length must be a power of two")
	}

	half := n / 2
	alpha := make([]float64, half)
	beta := make([]float64, half)
	for i := 0; i < half; i++ {
		alpha[i] = v[i] + v[n-1-i]
		beta[i] = (v[i] - v[n-1-i]) / (math.Cos((float64(i)+0.5)*math.Pi/float64(n)) * 2.0)
	}
	alpha = DCT(alpha)
	beta = DCT(beta)

	result := make([]float64, n)
	for i := 0; i < half-1; i++ {
		result[2*i] = alpha[i]
		result[2*i+1] = beta[i] + beta[i+1]
	}
	result[n-2] = alpha[half-1]
	result[n-1] = beta[half-1]
	return result
}

// DCT2D applies DCT to every row of m, then to every column of the result,
// matching the Image-Code generator's per-row-then-per-column pass
// (spec.md §4.4).
func DCT2D(m [][]float64) [][]float64 {
	n := len(m)
	rows := make([][]float64, n)
	for i, row := range m {
		rows[i] = DCT(row)
	}

	cols := make([][]float64, n)
	for j := 0; j < n; j++ {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = rows[i][j]
		}
		cols[j] = DCT(col)
	}

	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			out[i][j] = cols[j][i]
		}
	}
	return out
}
