/*
Package resources locates input resources of a conversion run.

Glyph images live in a vendor folder and are looked up by name. A lookup
does not fail for a missing file; it returns a Lookup which is either
found, carrying the file's bytes, or not found. Clients iterate over
candidate names explicitly:

	glyphs := resources.NewGlyphDir(os.DirFS(dir))
	if l := glyphs.Resolve(candidates); l.Found() {
	    use(l.Path, l.Data)
	}

Documents which a run cannot do without (the emoji chart, CLDR annotation
files, emoji reference data) are read with ReadDocument, which turns errors
into application errors.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'emojiconv'.
func tracer() tracing.Trace {
	return tracing.Select("emojiconv")
}
