/*
Package codepoint normalizes emoji codepoint notations into one canonical form.

The same emoji shows up in several notations across our inputs: the Unicode
chart writes "U+1F468 U+200D U+2764 U+FE0F", CLDR annotations carry the
rendered glyph, vendor glyph files encode codepoints into file names, and
emoji-data.txt uses uppercase ranges like "1F600..1F64F". A canonical
Sequence is an ordered list of hex tokens without "U+" or "0x" prefix and
without whitespace, all in one case.

	seq := codepoint.Canonicalize("U+1F468 U+200D U+2764 U+FE0F", codepoint.DefaultOptions())
	seq.Key()     // "1f468 200d 2764"
	seq.FileKey() // "1f468-200d-2764"

Canonicalize is total: it never fails and never filters. An empty input
results in a sequence holding a single empty token; clients check for this
with Sequence.Empty.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package codepoint

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'emojiconv'
func tracer() tracing.Trace {
	return tracing.Select("emojiconv")
}
