/*
Package pipeline implements the conversion runs of emojiconv.

There are four pipelines, each one a linear batch job:

	GlyphList     chart rows → rendered glyphs
	GlyphFiles    chart rows + vendor glyph folder → base64 image records
	ChartImages   chart rows with embedded data URIs → base64 image records
	ShortNames    CLDR annotations (+ parent locale) → short name records

The pure parts take parsed inputs and return records; the Run… functions
around them read the input documents named by a config.Config and write
the output files. Inputs which cannot be read abort a run. Records which
cannot be resolved are dropped and reported through a Reporter, a run
always produces complete output files holding the records it could
resolve.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package pipeline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'emojiconv'
func tracer() tracing.Trace {
	return tracing.Select("emojiconv")
}
