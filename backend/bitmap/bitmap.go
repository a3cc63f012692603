/*
Package bitmap scales glyph images to a fixed size and encodes them.

Glyph images are decoded (PNG, GIF, JPEG or WebP), cropped to their centred
square, scaled to a given edge length with a Catmull-Rom filter, and
re-encoded as PNG. The
base64 form of the PNG is what ends up in the output records.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package bitmap

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"

	"github.com/npillmayer/emojiconv/core"
	"github.com/npillmayer/schuko/tracing"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// tracer traces with key 'emojiconv'
func tracer() tracing.Trace {
	return tracing.Select("emojiconv")
}

// DefaultSize is the edge length of output bitmaps.
const DefaultSize = 24

// Resize decodes an image and scales it to size × size pixels. Non-square
// images are cropped to the centred square first, never stretched.
// The result is PNG-encoded.
func Resize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, core.Error(core.EINVALID, "empty image buffer")
	}
	if size <= 0 {
		return nil, core.Error(core.EINVALID, "bitmap size must be positive, is %d", size)
	}
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot decode glyph image")
	}
	b := src.Bounds()
	tracer().Debugf("scaling %s image of %dx%d to %dx%d", format, b.Dx(), b.Dy(), size, size)
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, centredSquare(b), xdraw.Src, nil)
	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot encode scaled glyph")
	}
	return buf.Bytes(), nil
}

// centredSquare is the largest square centred in r.
func centredSquare(r image.Rectangle) image.Rectangle {
	d := min(r.Dx(), r.Dy())
	x := r.Min.X + (r.Dx()-d)/2
	y := r.Min.Y + (r.Dy()-d)/2
	return image.Rect(x, y, x+d, y+d)
}

// Base64 returns the standard base64 encoding of data.
func Base64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Encode scales an image to size × size and returns the base64 encoded PNG.
func Encode(data []byte, size int) (string, error) {
	scaled, err := Resize(data, size)
	if err != nil {
		return "", err
	}
	return Base64(scaled), nil
}
