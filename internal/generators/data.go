package generators

import (
	"fmt"
	"io"

	"github.com/iscc-community/iscc-core-go/internal/blake3hash"
	"github.com/iscc-community/iscc-core-go/internal/cdc"
	"github.com/iscc-community/iscc-core-go/internal/codec"
	"github.com/iscc-community/iscc-core-go/internal/config"
	"github.com/iscc-community/iscc-core-go/internal/isccerr"
	"github.com/iscc-community/iscc-core-go/internal/isccid"
	"github.com/iscc-community/iscc-core-go/internal/kernels"
)

// DataResult is the Data-Code generator's output.
type DataResult struct {
	Code isccid.Code
}

// GenDataCode streams src through the content-defined chunker, derives a
// 32-bit feature from each chunk's BLAKE3 digest, and folds the features
// through MinHash64 into a similarity-preserving digest (spec.md §4.7). It
// is single-pass and never materializes the whole input: memory use is
// O(chunk size + sketch size).
func GenDataCode(src io.Reader, bits int, opts *config.Options) (DataResult, error) {
	if err := checkBits(bits); err != nil {
		return DataResult{}, err
	}

	chunker := cdc.NewChunker(src, cdc.Options{
		MinSize:  opts.CDCMinSize,
		AvgSize:  opts.DataAvgChunkSize,
		MaxSize:  opts.CDCMaxSize,
		MaskS:    opts.CDCGearMaskS,
		MaskL:    opts.CDCGearMaskL,
		ReadSize: opts.CDCReadSize,
	})

	var features []uint32
	for {
		chunk, err := chunker.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return DataResult{}, fmt.Errorf("%w: %v", isccerr.ErrIO, err)
		}
		sum := blake3hash.Sum256(chunk)
		features = append(features, uint32(sum[0])<<24|uint32(sum[1])<<16|uint32(sum[2])<<8|uint32(sum[3]))
	}

	digest := kernels.MinHash64(features)

	code, err := codec.EncodeComponent(codec.MainTypeData, codec.SubTypeNone, codec.VersionV0, bits, padTo32Bytes(digest))
	if err != nil {
		return DataResult{}, err
	}
	c, err := isccid.FromText(code)
	if err != nil {
		return DataResult{}, err
	}
	return DataResult{Code: c}, nil
}

// padTo32Bytes right-pads a short digest with zero bytes so EncodeComponent
// can truncate it to any requested bit length up to 256. MinHash64 itself
// only ever produces 64 bits of signal (spec.md §4.2/§4.7: data_bits
// defaults to 64), so bits beyond the first 8 bytes are always zero.
func padTo32Bytes(digest []byte) []byte {
	out := make([]byte, 32)
	copy(out, digest)
	return out
}
