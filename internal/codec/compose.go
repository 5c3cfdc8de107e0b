package codec

import (
	"fmt"

	"github.com/iscc-community/iscc-core-go/internal/isccerr"
)

// unitOrder is the canonical order in which unit bodies are concatenated
// into a composite ISCC body (spec.md §4.6, §6).
var unitOrder = []struct {
	mt   MainType
	flag SubType
}{
	{MainTypeMeta, UnitMeta},
	{MainTypeSemantic, UnitSemantic},
	{MainTypeContent, UnitContent},
	{MainTypeData, UnitData},
	{MainTypeInstance, UnitInstance},
}

// unitBodyBytes is the number of leading bytes of each unit body carried
// into a composite ISCC.
const unitBodyBytes = 8

// Unit is a single constituent of a composite ISCC: its main type and raw
// body bytes (at least unitBodyBytes long).
type Unit struct {
	MainType MainType
	Body     []byte
}

// Compose merges unit codes into an ISCC-composite header and body
// (spec.md §4.6). The composite SubType/LengthCode is the bitmap of present
// units; the body is the concatenation of each present unit's leading 64
// bits, in canonical order (META, SEMANTIC, CONTENT, DATA, INSTANCE).
// Compose fails with ErrCompositionInvalid if any unit's main type is
// duplicated or if neither DATA nor INSTANCE is present.
func Compose(units []Unit) (Header, []byte, error) {
	seen := make(map[MainType]Unit, len(units))
	for _, u := range units {
		if _, dup := seen[u.MainType]; dup {
			return Header{}, nil, fmt.Errorf("%w: duplicate unit %s", isccerr.ErrCompositionInvalid, u.MainType)
		}
		if len(u.Body) < unitBodyBytes {
			return Header{}, nil, fmt.Errorf("%w: unit %s body shorter than %d bytes", isccerr.ErrCompositionInvalid, u.MainType, unitBodyBytes)
		}
		seen[u.MainType] = u
	}
	if _, hasData := seen[MainTypeData]; !hasData {
		if _, hasInstance := seen[MainTypeInstance]; !hasInstance {
			return Header{}, nil, fmt.Errorf("%w: composite ISCC requires a DATA or INSTANCE unit", isccerr.ErrCompositionInvalid)
		}
	}

	var bitmap SubType
	var body []byte
	for _, entry := range unitOrder {
		u, ok := seen[entry.mt]
		if !ok {
			continue
		}
		bitmap |= entry.flag
		body = append(body, u.Body[:unitBodyBytes]...)
	}

	h := Header{
		MainType:   MainTypeISCC,
		SubType:    bitmap,
		Version:    VersionV0,
		LengthCode: LengthCode(bitmap),
	}
	return h, body, nil
}

// Decompose reverses Compose: given a composite ISCC body and its header's
// unit bitmap, it splits the body into per-unit 64-bit bodies in canonical
// order. The original content sub-type (TEXT/IMAGE/...) of a CONTENT unit
// is not recoverable from a composite code (only "a content unit is
// present" survives composition), so a Unit carries no sub-type at all;
// callers that need the precise sub-type must keep the original unit code
// alongside the composite.
func Decompose(h Header, body []byte) ([]Unit, error) {
	if h.MainType != MainTypeISCC {
		return nil, fmt.Errorf("%w: decompose requires an ISCC-composite header", isccerr.ErrInvalidInput)
	}
	bitmap := h.SubType
	var units []Unit
	offset := 0
	for _, entry := range unitOrder {
		if bitmap&entry.flag == 0 {
			continue
		}
		if offset+unitBodyBytes > len(body) {
			return nil, fmt.Errorf("%w: composite body shorter than bitmap implies", isccerr.ErrCompositionInvalid)
		}
		u := Unit{MainType: entry.mt, Body: append([]byte(nil), body[offset:offset+unitBodyBytes]...)}
		units = append(units, u)
		offset += unitBodyBytes
	}
	if offset != len(body) {
		return nil, fmt.Errorf("%w: composite body length does not match bitmap", isccerr.ErrCompositionInvalid)
	}
	return units, nil
}
