package pipeline

import (
	"github.com/npillmayer/emojiconv/core/codepoint"
	"github.com/npillmayer/emojiconv/core/emojidata"
	"github.com/npillmayer/emojiconv/core/locale"
	"github.com/npillmayer/emojiconv/input/chart"
)

// GlyphList returns the rendered glyphs of all numbered chart rows, in
// chart order.
func GlyphList(rows []chart.Row, rep *Reporter) []string {
	var glyphs []string
	for _, row := range rows {
		no, ok := row.Number()
		if !ok {
			continue
		}
		rep.Trace("%d %s %s %s", no, row.Name, row.Code, row.Chars)
		glyphs = append(glyphs, row.Chars)
	}
	return glyphs
}

// ShortNames resolves the short names of a locale's annotations, falling
// back to the parent locale's annotations if given, and keeps the entries
// whose first codepoint is listed in table.
func ShortNames(main, fallback *locale.AnnotationMap, table emojidata.Table, rep *Reporter) []ShortNameRecord {
	if fallback != nil {
		for _, a := range main.Annotations() {
			if a.ShortName != locale.FallbackSentinel {
				continue
			}
			if sn, ok := fallback.Get(a.Glyph); ok {
				rep.Warning("%s: short name from parent locale: %s", a.Glyph, sn)
			} else {
				rep.Failure("%s: parent locale has no short name", a.Glyph)
			}
		}
	}
	resolved := locale.Resolve(main, fallback)
	records := make([]ShortNameRecord, 0, len(resolved))
	for _, a := range resolved {
		seq, ok := codepoint.FromGlyph(a.Glyph)
		if !ok {
			rep.Failure("%q: empty glyph", a.ShortName)
			continue
		}
		code := seq.Key()
		if !emojidata.IsKnownEmoji(code, table) {
			rep.Trace("%s %s: not an emoji", code, a.ShortName)
			continue
		}
		rep.Trace("%s %s %s", a.Glyph, code, a.ShortName)
		records = append(records, ShortNameRecord{Glyph: a.Glyph, ShortName: a.ShortName, Code: code})
	}
	return records
}
