/*
Package chart reads the Unicode full emoji list.

The list is published at https://unicode.org/emoji/charts/full-emoji-list.html
(or charts-beta for upcoming versions) and is expected as a local copy. Every
emoji is a table row; the cells we are interested in carry CSS classes:

	td.rchars   row number
	td.name     CLDR short name
	td.code     codepoints, e.g. "U+1F600"
	td.chars    the rendered glyph
	td.andr     vendor images, as data URIs

Header rows carry no row number. Row numbers are positive and unique.

We use these libraries for parsing and selecting:

	golang.org/x/net/html
	github.com/andybalholm/cascadia

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package chart

import (
	"bytes"
	"encoding/base64"
	"io"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/emojiconv/core"
	"github.com/npillmayer/emojiconv/core/vendor"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'emojiconv'
func tracer() tracing.Trace {
	return tracing.Select("emojiconv")
}

var (
	rowSelector     = cascadia.MustCompile("table tr")
	numberSelector  = cascadia.MustCompile("td.rchars")
	nameSelector    = cascadia.MustCompile("td.name")
	codeSelector    = cascadia.MustCompile("td.code")
	charsSelector   = cascadia.MustCompile("td.chars")
	androidSelector = cascadia.MustCompile("td.andr")
	imgSelector     = cascadia.MustCompile("img")
)

// Image is an <img> element of a vendor cell.
type Image struct {
	Src   string
	Title string
}

// Cell is a vendor image cell, holding one or more images.
type Cell []Image

// Row is a table row of the emoji chart. All text fields are the raw cell
// texts.
type Row struct {
	No    string
	Name  string
	Code  string
	Chars string
	Cells []Cell
}

// Read parses a chart document and returns all of its table rows, header
// rows included.
func Read(r io.Reader) ([]Row, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "emoji chart is not valid HTML")
	}
	trs := rowSelector.MatchAll(doc)
	rows := make([]Row, 0, len(trs))
	for _, tr := range trs {
		row := Row{
			No:    selectText(numberSelector, tr),
			Name:  selectText(nameSelector, tr),
			Code:  selectText(codeSelector, tr),
			Chars: selectText(charsSelector, tr),
		}
		for _, td := range androidSelector.MatchAll(tr) {
			var cell Cell
			for _, img := range imgSelector.MatchAll(td) {
				cell = append(cell, Image{
					Src:   attr(img, "src"),
					Title: attr(img, "title"),
				})
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}
	tracer().Debugf("emoji chart has %d table rows", len(rows))
	return rows, nil
}

// ReadBytes parses a chart document held in memory.
func ReadBytes(doc []byte) ([]Row, error) {
	return Read(bytes.NewReader(doc))
}

// Number returns the row number. Rows without a positive integer number,
// e.g. header rows, return false.
func (row Row) Number() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(row.No))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// VendorImage returns the image source of a vendor's glyph in this row.
// Rows with three or more image cells are indexed by the vendor's column.
// Rows with a single cell hold images of several vendors, distinguished
// by a title prefix like "[Appl]"; the last matching image wins.
func (row Row) VendorImage(v vendor.Vendor) (string, bool) {
	var src string
	switch {
	case len(row.Cells) > 2:
		if imgs := row.Cells[v.ChartColumn()]; len(imgs) > 0 {
			src = imgs[0].Src
		}
	case len(row.Cells) == 1:
		prefix := "[" + v.ChartTag() + "]"
		for _, img := range row.Cells[0] {
			if strings.HasPrefix(img.Title, prefix) {
				src = img.Src
			}
		}
	}
	return src, src != ""
}

// DecodeDataURI returns the payload of a base64 data URI like
// "data:image/png;base64,iVBORw0…".
func DecodeDataURI(src string) ([]byte, error) {
	_, params, ok := strings.Cut(src, ";")
	if !ok {
		return nil, core.Error(core.EINVALID, "image source is not a data URI")
	}
	_, payload, ok := strings.Cut(params, ",")
	if !ok {
		return nil, core.Error(core.EINVALID, "data URI has no payload")
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "data URI payload is not base64")
	}
	return data, nil
}

// --- Helpers ----------------------------------------------------------

// selectText concatenates the texts of all nodes below n matching sel.
func selectText(sel cascadia.Selector, n *html.Node) string {
	var buf bytes.Buffer
	for _, m := range sel.MatchAll(n) {
		innerText(&buf, m)
	}
	return buf.String()
}

// innerText writes the text between the start and end tags of n.
func innerText(buf *bytes.Buffer, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		buf.WriteString(n.Data)
		return
	case html.CommentNode:
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		innerText(buf, child)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
