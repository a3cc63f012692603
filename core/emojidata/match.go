package emojidata

import (
	"strings"
)

// Range is a single codepoint (End empty) or an inclusive range of
// codepoints, in uppercase hex.
type Range struct {
	Start, End string
}

// ParseRange reads "1F600" or "1F600..1F64F".
func ParseRange(s string) Range {
	s = strings.TrimSpace(s)
	if start, end, ok := strings.Cut(s, ".."); ok {
		return Range{Start: strings.TrimSpace(start), End: strings.TrimSpace(end)}
	}
	return Range{Start: s}
}

// IsRange is true if r spans more than a single entry.
func (r Range) IsRange() bool {
	return r.End != ""
}

// Contains reports whether an uppercase hex codepoint lies within r, using
// string comparison.
func (r Range) Contains(cp string) bool {
	if !r.IsRange() {
		return cp == r.Start
	}
	return cp >= r.Start && cp <= r.End
}

func (r Range) String() string {
	if r.IsRange() {
		return r.Start + ".." + r.End
	}
	return r.Start
}

// Table is a list of reference ranges. An empty table means "no filter".
type Table []Range

// EmojiTable selects the entries with property "Emoji" and an emoji version
// greater than "E0.0". Versions are compared as strings.
func EmojiTable(entries []Entry) Table {
	var table Table
	for _, e := range entries {
		if e.Property == "Emoji" && e.Version > "E0.0" {
			table = append(table, ParseRange(e.Codepoints))
		}
	}
	return table
}

// IsKnownEmoji reports whether the first codepoint of code is listed in
// table. code is a canonical sequence joined with spaces; trailing modifiers
// are ignored. An empty table accepts every codepoint.
func IsKnownEmoji(code string, table Table) bool {
	if len(table) == 0 {
		return true
	}
	first := ""
	if f := strings.Fields(code); len(f) > 0 {
		first = f[0]
	}
	cp := strings.ToUpper(first)
	for _, r := range table {
		if r.Contains(cp) {
			return true
		}
	}
	return false
}
