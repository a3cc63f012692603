/*
Package emojidata reads the Unicode emoji property file "emoji-data.txt" and
answers membership questions against it.

Lines of the reference file look like

	1F600..1F64F  ; Emoji                # E1.0   [80] (😀..🙏)    grinning face..folded hands
	231A          ; Emoji                # E0.6    [1] (⌚)       watch

Comment lines start with '#'. Codepoints are uppercase hex, either a single
codepoint or a range "start..end".

Membership is decided by comparing uppercase hex strings, not numbers. This
is correct as long as the bounds of a range and the tested codepoint share
the same number of digits, which holds for the ranges in emoji-data.txt.
Mixed-width ranges are not guarded against.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package emojidata

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'emojiconv'
func tracer() tracing.Trace {
	return tracing.Select("emojiconv")
}
