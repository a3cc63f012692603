/*
Package cldr reads Unicode CLDR annotation files.

Annotation files live in common/annotations/<locale>.xml and
common/annotationsDerived/<locale>.xml of a CLDR release. We are interested
in the text-to-speech annotations only:

	<annotation cp="😀" type="tts">grinning face</annotation>
	<annotation cp="😀">face | grin | grinning face</annotation>

The XML document is read into a tree of golang.org/x/net/html nodes, which
we query with XPath. We use this library for XPath queries:

	github.com/antchfx/xpath

Type Navigator implements xpath.NodeNavigator on html nodes. For a
description of the various methods of interface xpath.NodeNavigator please
refer to the documentation of antchfx/xpath. It is not replicated here.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cldr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'emojiconv'
func tracer() tracing.Trace {
	return tracing.Select("emojiconv")
}
