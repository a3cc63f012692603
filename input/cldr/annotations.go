package cldr

import (
	"io"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/emojiconv/core/locale"
	"golang.org/x/net/html"
)

var ttsQuery = xpath.MustCompile("//annotation[@type='tts']")

// Annotations lists the text-to-speech annotations of a document in
// document order. Annotations without a cp attribute are skipped.
func Annotations(doc *html.Node) []locale.Annotation {
	var anns []locale.Annotation
	iter := ttsQuery.Select(NewNavigator(doc))
	for iter.MoveNext() {
		n, err := CurrentNode(iter.Current())
		if err != nil || n == nil {
			continue
		}
		cp, ok := attr(n, "cp")
		if !ok {
			tracer().Debugf("tts annotation without cp attribute: %q", innerText(n))
			continue
		}
		anns = append(anns, locale.Annotation{Glyph: cp, ShortName: innerText(n)})
	}
	tracer().Debugf("found %d tts annotations", len(anns))
	return anns
}

// ReadAnnotations parses an annotation file and builds the glyph to short
// name map of its text-to-speech annotations.
func ReadAnnotations(r io.Reader) (*locale.AnnotationMap, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return locale.NewAnnotationMap(Annotations(doc)), nil
}
