package generators

import (
	"fmt"
	"io"

	"github.com/iscc-community/iscc-core-go/internal/blake3hash"
	"github.com/iscc-community/iscc-core-go/internal/codec"
	"github.com/iscc-community/iscc-core-go/internal/config"
	"github.com/iscc-community/iscc-core-go/internal/isccerr"
	"github.com/iscc-community/iscc-core-go/internal/isccid"
)

// InstanceResult is the Instance-Code generator's output: a pure
// cryptographic identity digest with no similarity semantics (spec.md
// §4.7).
type InstanceResult struct {
	Code     isccid.Code
	DataHash string
	FileSize int64
}

// GenInstanceCode streams src through BLAKE3 in opts.CDCReadSize-byte reads
// (spec.md §4.7, §5) and frames the first bits of the digest as an
// Instance-Code, alongside the full 256-bit datahash and byte count.
func GenInstanceCode(src io.Reader, bits int, opts *config.Options) (InstanceResult, error) {
	if err := checkBits(bits); err != nil {
		return InstanceResult{}, err
	}

	hasher := blake3hash.NewStream()
	readSize := opts.CDCReadSize
	if readSize <= 0 {
		readSize = 64 * 1024
	}
	buf := make([]byte, readSize)
	var total int64
	for {
		n, err := src.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
			total += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return InstanceResult{}, fmt.Errorf("%w: %v", isccerr.ErrIO, err)
		}
		if n == 0 {
			break
		}
	}

	digest := hasher.Sum(nil)

	code, err := codec.EncodeComponent(codec.MainTypeInstance, codec.SubTypeNone, codec.VersionV0, bits, digest)
	if err != nil {
		return InstanceResult{}, err
	}
	c, err := isccid.FromText(code)
	if err != nil {
		return InstanceResult{}, err
	}
	return InstanceResult{
		Code:     c,
		DataHash: fmt.Sprintf("%x", digest),
		FileSize: total,
	}, nil
}
