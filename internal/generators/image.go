package generators

import (
	"fmt"
	"sort"

	"github.com/iscc-community/iscc-core-go/internal/codec"
	"github.com/iscc-community/iscc-core-go/internal/config"
	"github.com/iscc-community/iscc-core-go/internal/isccerr"
	"github.com/iscc-community/iscc-core-go/internal/isccid"
	"github.com/iscc-community/iscc-core-go/internal/kernels"
)

// ImageResult is the Image-Code generator's output.
type ImageResult struct {
	Code isccid.Code
}

// GenImageCode creates a 64-bit Image-Code from a pre-normalized grayscale
// pixel matrix (spec.md §4.7): a 2-D DCT is applied to the matrix, the
// top-left 8x8 coefficient block is compared against its own median, and
// the comparison bits are packed row-major. matrix must be square with a
// power-of-two side (opts.ImageTrim by convention).
func GenImageCode(matrix [][]float64, opts *config.Options) (ImageResult, error) {
	n := len(matrix)
	if n == 0 {
		return ImageResult{}, fmt.Errorf("%w: empty image matrix", isccerr.ErrInvalidInput)
	}
	for _, row := range matrix {
		if len(row) != n {
			return ImageResult{}, fmt.Errorf("%w: image matrix must be square", isccerr.ErrInvalidInput)
		}
	}
	const blockSide = 8
	if n < blockSide {
		return ImageResult{}, fmt.Errorf("%w: image matrix must be at least %dx%d", isccerr.ErrInvalidInput, blockSide, blockSide)
	}

	transformed := kernels.DCT2D(matrix)

	coeffs := make([]float64, 0, blockSide*blockSide)
	for i := 0; i < blockSide; i++ {
		for j := 0; j < blockSide; j++ {
			coeffs = append(coeffs, transformed[i][j])
		}
	}
	median := medianOf(coeffs)

	body := make([]byte, blockSide*blockSide/8)
	for i, v := range coeffs {
		if v > median {
			byteIdx := i / 8
			bitIdx := uint(7 - i%8)
			body[byteIdx] |= 1 << bitIdx
		}
	}

	code, err := codec.EncodeComponent(codec.MainTypeContent, codec.SubTypeImage, codec.VersionV0, opts.ImageBits, body)
	if err != nil {
		return ImageResult{}, err
	}
	c, err := isccid.FromText(code)
	if err != nil {
		return ImageResult{}, err
	}
	return ImageResult{Code: c}, nil
}

// medianOf returns the median of a copy of values, leaving values untouched.
func medianOf(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
