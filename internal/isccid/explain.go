package isccid

import (
	"fmt"
	"strings"

	"github.com/iscc-community/iscc-core-go/internal/codec"
)

// unitLetters maps each composite unit flag to the initial letter used in
// TypeID, in canonical order (spec.md §4.6; `iscc_core.models.Code.type_id`).
var unitLetters = []struct {
	flag   codec.SubType
	letter string
}{
	{codec.UnitMeta, "M"},
	{codec.UnitSemantic, "S"},
	{codec.UnitContent, "C"},
	{codec.UnitData, "D"},
	{codec.UnitInstance, "I"},
}

// TypeID returns a compact, human-readable composite type identifier for
// c's header, suitable for grouping/indexing codes by structural shape
// (ported from `iscc_core.models.Code.type_id`, spec.md §9 supplement).
func (c Code) TypeID() string {
	if c.header.MainType == codec.MainTypeISCC {
		var letters strings.Builder
		for _, ul := range unitLetters {
			if c.header.SubType&ul.flag != 0 {
				letters.WriteString(ul.letter)
			}
		}
		return fmt.Sprintf("ISCC-%s-V%d", letters.String(), int(c.header.Version))
	}
	return fmt.Sprintf("%s-%s-V%d-%d", c.header.MainType, subTypeName(c.header.MainType, c.header.SubType), int(c.header.Version), c.BodyBits())
}

// Explain returns a human-readable description of the code's header and
// body, combining TypeID with the body's hex digest (ported from
// `iscc_core.models.Code.explain`).
func (c Code) Explain() string {
	return fmt.Sprintf("%s-%x", c.TypeID(), c.body)
}

func subTypeName(mt codec.MainType, st codec.SubType) string {
	if mt == codec.MainTypeContent {
		switch st {
		case codec.SubTypeText:
			return "TEXT"
		case codec.SubTypeImage:
			return "IMAGE"
		case codec.SubTypeAudio:
			return "AUDIO"
		case codec.SubTypeVideo:
			return "VIDEO"
		case codec.SubTypeMixed:
			return "MIXED"
		}
	}
	return "NONE"
}
