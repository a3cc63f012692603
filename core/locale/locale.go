/*
Package locale resolves localized emoji short names.

CLDR annotation files map an emoji glyph to a text-to-speech short name. A
regional locale like fr_CA lists only the names which differ from its parent
locale fr, and marks all others with the fallback sentinel "↑↑↑". Resolve
replaces sentinels by the parent's names.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package locale

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/unicode/norm"
)

// tracer writes to trace with key 'emojiconv'
func tracer() tracing.Trace {
	return tracing.Select("emojiconv")
}

// FallbackSentinel is the short name CLDR uses for "inherit from parent".
const FallbackSentinel = "↑↑↑"

// Annotation is a glyph with its short name.
type Annotation struct {
	Glyph     string
	ShortName string
}

// AnnotationMap maps glyphs to short names and remembers insertion order.
// It is built once with NewAnnotationMap and not changed afterwards.
type AnnotationMap struct {
	m *linkedhashmap.Map
}

// NewAnnotationMap builds a map from annotations. Later annotations for the
// same glyph overwrite the short name but keep the glyph's position.
// Glyph keys are NFC-normalized.
func NewAnnotationMap(anns []Annotation) *AnnotationMap {
	m := linkedhashmap.New()
	for _, a := range anns {
		m.Put(norm.NFC.String(a.Glyph), a.ShortName)
	}
	return &AnnotationMap{m: m}
}

// Merge returns a new map holding all entries of am, followed by the
// entries of other whose glyphs am does not know.
func (am *AnnotationMap) Merge(other *AnnotationMap) *AnnotationMap {
	anns := am.Annotations()
	if other != nil {
		for _, a := range other.Annotations() {
			if _, found := am.Get(a.Glyph); !found {
				anns = append(anns, a)
			}
		}
	}
	return NewAnnotationMap(anns)
}

// Get returns the short name for a glyph.
func (am *AnnotationMap) Get(glyph string) (string, bool) {
	if am == nil {
		return "", false
	}
	v, found := am.m.Get(norm.NFC.String(glyph))
	if !found {
		return "", false
	}
	return v.(string), true
}

// Len is the number of glyphs in am.
func (am *AnnotationMap) Len() int {
	if am == nil {
		return 0
	}
	return am.m.Size()
}

// Annotations returns the entries of am in insertion order.
func (am *AnnotationMap) Annotations() []Annotation {
	if am == nil {
		return nil
	}
	anns := make([]Annotation, 0, am.m.Size())
	it := am.m.Iterator()
	for it.Next() {
		anns = append(anns, Annotation{
			Glyph:     it.Key().(string),
			ShortName: it.Value().(string),
		})
	}
	return anns
}

// Resolve lists the short names of main in insertion order. Sentinel
// values are replaced by the fallback's short name for the same glyph, if a
// fallback map is given. Without a fallback the sentinel is kept as is.
// A sentinel entry which the fallback does not know is left out, as it has
// no short name at all.
func Resolve(main, fallback *AnnotationMap) []Annotation {
	anns := main.Annotations()
	out := make([]Annotation, 0, len(anns))
	for _, a := range anns {
		if a.ShortName == FallbackSentinel && fallback != nil {
			sn, found := fallback.Get(a.Glyph)
			if !found {
				tracer().Debugf("no fallback short name for %q", a.Glyph)
				continue
			}
			a.ShortName = sn
		}
		out = append(out, a)
	}
	return out
}

// Parent returns the parent locale of a regional locale code, e.g. "fr"
// for "fr_CA". The parent is derived from the shape of the code only: it
// exists if the code is longer than 3 characters and has a '_' at index 2.
func Parent(code string) (string, bool) {
	if len(code) > 3 && code[2] == '_' {
		return code[:2], true
	}
	return "", false
}

// Valid checks the length of a locale code. Some main languages have
// 3-letter codes in CLDR, thus 2 to 6 characters are accepted.
func Valid(code string) bool {
	return len(code) >= 2 && len(code) <= 6
}

// DisplayName returns the English name of a locale code, or "" if the code
// is not a known language tag.
func DisplayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return display.English.Tags().Name(tag)
}
