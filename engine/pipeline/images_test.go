package pipeline

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/emojiconv/core/config"
	"github.com/npillmayer/emojiconv/core/locate/resources"
	"github.com/npillmayer/emojiconv/core/vendor"
	"github.com/npillmayer/emojiconv/input/chart"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, c color.NRGBA) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func dataURI(data []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}

func readRows(t *testing.T, doc string) []chart.Row {
	rows, err := chart.Read(strings.NewReader(doc))
	require.NoError(t, err)
	return rows
}

const threeRowChart = `<html><body><table>
<tr><td class="rchars">1</td><td class="code">U+1F600</td><td class="chars">&#x1F600;</td><td class="name">grinning face</td></tr>
<tr><td class="rchars">№</td><td class="name">face-smiling</td></tr>
<tr><td class="rchars">3</td><td class="code">U+1F601</td><td class="chars">&#x1F601;</td><td class="name">beaming face</td></tr>
</table></body></html>`

func TestGlyphFilesDropsUnmatchedRows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojiconv")
	defer teardown()
	//
	glyphs := resources.NewGlyphDir(fstest.MapFS{
		"emoji_u1f600.png": &fstest.MapFile{Data: testPNG(t, color.NRGBA{R: 0xff, A: 0xff})},
	})
	rep := NewReporter(config.Trace)
	records := GlyphFiles(context.Background(), readRows(t, threeRowChart), vendor.Google, glyphs,
		ImageOptions{Size: 24, Workers: 2}, rep)
	require.Len(t, records, 1, "header row is skipped, row 3 has no image")
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, "1f600", records[0].Code)
	assert.Equal(t, 1, rep.Dropped())
	assert.Equal(t, 0, rep.Fallbacks())

	data, err := base64.StdEncoding.DecodeString(records[0].Base64)
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Width)
	assert.Equal(t, 24, cfg.Height)
}

func TestGlyphFilesSkinToneFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojiconv")
	defer teardown()
	//
	doc := `<table><tr>
<td class="rchars">12</td>
<td class="code">U+1F9D1 U+200D U+1F91D U+200D U+1F9D1</td>
<td class="name">people holding hands</td>
</tr></table>`
	glyphs := resources.NewGlyphDir(fstest.MapFS{
		"0x1f9d1_u1F91D_u1F9D1.66.png": &fstest.MapFile{Data: testPNG(t, color.NRGBA{B: 0xff, A: 0xff})},
	})
	rep := NewReporter(config.Silent)
	records := GlyphFiles(context.Background(), readRows(t, doc), vendor.Apple, glyphs,
		ImageOptions{Size: 16, Workers: 1}, rep)
	require.Len(t, records, 1)
	assert.Equal(t, "1f9d1 200d 1f91d 200d 1f9d1", records[0].Code)
	assert.Equal(t, 1, rep.Fallbacks())
	assert.Equal(t, 0, rep.Dropped())
}

func TestGlyphFilesDuplicateRows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojiconv")
	defer teardown()
	//
	doc := `<table>
<tr><td class="rchars">1</td><td class="code">U+1F600</td></tr>
<tr><td class="rchars">1</td><td class="code">U+1F600</td></tr>
<tr><td class="rchars">2</td><td class="code"> </td></tr>
</table>`
	glyphs := resources.NewGlyphDir(fstest.MapFS{
		"emoji_u1f600.png": &fstest.MapFile{Data: testPNG(t, color.NRGBA{G: 0xff, A: 0xff})},
	})
	rep := NewReporter(config.Failures)
	records := GlyphFiles(context.Background(), readRows(t, doc), vendor.Google, glyphs,
		ImageOptions{Workers: 4}, rep)
	assert.Len(t, records, 1)
	assert.Equal(t, 2, rep.Dropped(), "duplicate number and empty code are dropped")
}

func TestGlyphFilesCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojiconv")
	defer teardown()
	//
	glyphs := resources.NewGlyphDir(fstest.MapFS{
		"emoji_u1f600.png": &fstest.MapFile{Data: testPNG(t, color.NRGBA{A: 0xff})},
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep := NewReporter(config.Silent)
	records := GlyphFiles(ctx, readRows(t, threeRowChart), vendor.Google, glyphs,
		ImageOptions{Workers: 1}, rep)
	assert.Empty(t, records)
	assert.Equal(t, 2, rep.Dropped(), "cancelled row 1 and missing row 3 are both dropped")
}

func TestChartImages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojiconv")
	defer teardown()
	//
	red := testPNG(t, color.NRGBA{R: 0xff, A: 0xff})
	blue := testPNG(t, color.NRGBA{B: 0xff, A: 0xff})
	doc := fmt.Sprintf(`<table>
<tr><td class="rchars">1</td><td class="code">U+263A U+FE0F</td>
<td class="andr"><img src="%s"></td><td class="andr"><img src="%s"></td><td class="andr"><img src="%s"></td></tr>
<tr><td class="rchars">2</td><td class="code">U+1F600</td>
<td class="andr"><img src="data:image/png;base64,!!!"></td><td class="andr"></td><td class="andr"></td></tr>
<tr><td class="rchars">3</td><td class="code">U+1FAE8</td>
<td class="andr" colspan="3"><img title="[Goog] U+1FAE8" src="%s"></td></tr>
</table>`, dataURI(red), dataURI(blue), dataURI(red), dataURI(blue))
	rows := readRows(t, doc)

	rep := NewReporter(config.Trace)
	records := ChartImages(context.Background(), rows, vendor.Google, ImageOptions{Size: 8, Workers: 2}, rep)
	require.Len(t, records, 2, "row 2 has no Google image")
	assert.Equal(t, "263a", records[0].Code, "variation selector is stripped")
	assert.Equal(t, "1fae8", records[1].Code)
	assert.Equal(t, 1, rep.Dropped())
	assertBlue(t, records[0].Base64)

	rep = NewReporter(config.Silent)
	records = ChartImages(context.Background(), rows, vendor.Apple, ImageOptions{Size: 8}, rep)
	require.Len(t, records, 1, "row 2 holds a broken data URI, row 3 has no Apple image")
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, 2, rep.Dropped())
}

func assertBlue(t *testing.T, b64 string) {
	data, err := base64.StdEncoding.DecodeString(b64)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	r, _, b, _ := img.At(4, 4).RGBA()
	assert.InDelta(t, 0, float64(r), 0x200)
	assert.InDelta(t, 0xffff, float64(b), 0x200)
}

func TestReporterCounters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojiconv")
	defer teardown()
	//
	rep := NewReporter(config.Silent)
	rep.Failure("%d", 1)
	rep.Failure("%d", 2)
	rep.Warning("%d", 3)
	rep.Trace("%d", 4)
	assert.Equal(t, 2, rep.Dropped(), "failures are counted regardless of verbosity")
	assert.Equal(t, 1, rep.Fallbacks())
}
