package emojidata

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceSample = `# emoji-data.txt
# Date: 2023-02-01

# ================================================

0023          ; Emoji                # E0.0   [1] (#️)       hash sign
00A9          ; Emoji                # E0.6   [1] (©️)       copyright
231A..231B    ; Emoji                # E0.6   [2] (⌚..⌛)    watch..hourglass done
1F600..1F64F  ; Emoji                # E1.0  [80] (😀..🙏)    grinning face..folded hands
1F91D         ; Emoji                # E3.0   [1] (🤝)       handshake
this line is broken
1F3FB..1F3FF  ; Emoji_Modifier       # E1.0   [5] (🏻..🏿)    light skin tone..dark skin tone
`

func TestParseReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojiconv")
	defer teardown()
	//
	p := NewParser(strings.NewReader(referenceSample))
	var entries []Entry
	for p.Next() {
		entries = append(entries, p.Entry)
	}
	require.NoError(t, p.Err())
	require.Len(t, entries, 6)
	assert.Equal(t, Entry{Codepoints: "231A..231B", Property: "Emoji", Version: "E0.6"}, entries[2])
	assert.Equal(t, "Emoji_Modifier", entries[5].Property)
	require.Len(t, p.Skipped, 1)
	assert.Contains(t, p.Skipped[0], "this line is broken")
}

func TestEmojiTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojiconv")
	defer teardown()
	//
	entries, err := Parse(strings.NewReader(referenceSample))
	require.NoError(t, err)
	table := EmojiTable(entries)
	assert.Equal(t, Table{
		{Start: "00A9"},
		{Start: "231A", End: "231B"},
		{Start: "1F600", End: "1F64F"},
		{Start: "1F91D"},
	}, table, "E0.0 entries and non-Emoji properties are dropped")
}

func TestRangeMatch(t *testing.T) {
	table := Table{ParseRange("1F600..1F64F")}
	assert.True(t, IsKnownEmoji("1f612", table))
	assert.False(t, IsKnownEmoji("1F999", table))
	assert.True(t, IsKnownEmoji("1f600 1f3fb", table), "only the first codepoint counts")
	assert.True(t, IsKnownEmoji("1f64f", table), "range bounds are inclusive")
}

func TestSingleMatch(t *testing.T) {
	table := Table{ParseRange("1F91D"), ParseRange(" 00A9 ")}
	assert.True(t, IsKnownEmoji("1f91d", table))
	assert.True(t, IsKnownEmoji("a9", Table{{Start: "A9"}}))
	assert.False(t, IsKnownEmoji("a9", table), "string comparison does not pad digits")
	assert.False(t, IsKnownEmoji("", table))
}

func TestEmptyTableAcceptsAll(t *testing.T) {
	assert.True(t, IsKnownEmoji("1f612", nil))
	assert.True(t, IsKnownEmoji("", Table{}))
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "1F600..1F64F", ParseRange("1F600..1F64F").String())
	assert.Equal(t, "231A", ParseRange("231A").String())
	assert.False(t, ParseRange("231A").IsRange())
}
