package codepoint

import (
	"strconv"
	"strings"
)

// Well-known tokens in canonical (lowercase) form.
const (
	Joiner            = "200d" // zero width joiner
	VariationSelector = "fe0f" // emoji presentation selector
)

// Case selects the letter case of canonical tokens.
type Case int

const (
	Lower Case = iota
	Upper
)

// Options control canonicalization. All flags are independent.
type Options struct {
	StripVariationSelector bool // drop U+FE0F tokens
	StripJoiner            bool // drop U+200D tokens
	Case                   Case
}

// DefaultOptions strips variation selectors, keeps joiners and lowercases.
// Joiners are kept because CLDR annotation data encodes them literally.
func DefaultOptions() Options {
	return Options{
		StripVariationSelector: true,
		StripJoiner:            false,
		Case:                   Lower,
	}
}

// Sequence is a canonical codepoint sequence, in presentation order.
type Sequence []string

// Canonicalize converts a raw codepoint field, e.g. "U+1F91D U+FE0F", into a
// canonical sequence of hex tokens.
//
// The result is never nil. If nothing is left after stripping, the result is
// a sequence holding one empty token.
func Canonicalize(raw string, opts Options) Sequence {
	fields := strings.Fields(raw)
	seq := make(Sequence, 0, len(fields))
	for _, f := range fields {
		tok := stripPrefix(f)
		if tok == "" {
			continue
		}
		lower := strings.ToLower(tok)
		if opts.StripVariationSelector && lower == VariationSelector {
			continue
		}
		if opts.StripJoiner && lower == Joiner {
			continue
		}
		if opts.Case == Upper {
			seq = append(seq, strings.ToUpper(tok))
		} else {
			seq = append(seq, lower)
		}
	}
	if len(seq) == 0 {
		return Sequence{""}
	}
	return seq
}

func stripPrefix(tok string) string {
	if len(tok) >= 2 && (tok[0] == 'U' || tok[0] == 'u') && tok[1] == '+' {
		return tok[2:]
	}
	return tok
}

// FromGlyph returns the lowercase codepoint sequence of a rendered glyph.
// Every rune is kept, including joiners and variation selectors.
// For an empty glyph FromGlyph returns false.
func FromGlyph(glyph string) (Sequence, bool) {
	if glyph == "" {
		return nil, false
	}
	seq := make(Sequence, 0, len(glyph)/2)
	for _, r := range glyph {
		seq = append(seq, strconv.FormatInt(int64(r), 16))
	}
	return seq, true
}

// Empty is true for a sequence without any non-empty token.
func (seq Sequence) Empty() bool {
	for _, tok := range seq {
		if tok != "" {
			return false
		}
	}
	return true
}

// Without returns a copy of seq with every occurrence of tok removed.
// Comparison is case-insensitive.
func (seq Sequence) Without(tok string) Sequence {
	out := make(Sequence, 0, len(seq))
	for _, t := range seq {
		if !strings.EqualFold(t, tok) {
			out = append(out, t)
		}
	}
	return out
}

// Key joins the tokens with single spaces. This is the `code` value of
// serialized records.
func (seq Sequence) Key() string {
	return strings.Join(seq, " ")
}

// FileKey joins the tokens with dashes, for file names and CSV columns.
func (seq Sequence) FileKey() string {
	return strings.Join(seq, "-")
}

// Glyph renders seq back to a string. Tokens which are not valid hex are
// skipped.
func (seq Sequence) Glyph() string {
	var b strings.Builder
	for _, tok := range seq {
		if tok == "" {
			continue
		}
		r, err := strconv.ParseUint(tok, 16, 32)
		if err != nil {
			tracer().Debugf("codepoint token %q is not hex", tok)
			continue
		}
		b.WriteRune(rune(r))
	}
	return b.String()
}

// FileKey converts a space separated code value into its dashed form,
// collapsing runs of spaces.
func FileKey(code string) string {
	return strings.Join(strings.Fields(code), "-")
}
