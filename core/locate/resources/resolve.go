package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/npillmayer/emojiconv/core"
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	documentResourceType
	imageResourceType
	folderResourceType
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case imageResourceType:
		s = fmt.Sprintf("glyph image not found: %s", res)
	case documentResourceType:
		s = fmt.Sprintf("input document not found: %s", res)
	case folderResourceType:
		s = fmt.Sprintf("folder not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	return core.WrapError(e, core.EMISSING, "%s", s)
}

// --- Documents ------------------------------------------------------------

// ReadDocument reads a primary input file of a run. A missing file results
// in an EMISSING error, other failures in EIO.
func ReadDocument(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NotFound(path, documentResourceType)
		}
		return nil, core.WrapError(err, core.EIO, "cannot read %s", path)
	}
	tracer().Debugf("read %d bytes from %s", len(data), path)
	return data, nil
}

// --- Glyph images ---------------------------------------------------------

// Lookup is the outcome of looking for a glyph file: either found, with the
// file's content, or not found.
type Lookup struct {
	Path  string // the path which has been tried last
	Data  []byte // file content, nil if not found
	Tried int    // number of paths tried
	found bool
}

// Found is true if a file has been located.
func (l Lookup) Found() bool {
	return l.found
}

// Err returns nil for a found file and an EMISSING error otherwise.
func (l Lookup) Err() error {
	if l.found {
		return nil
	}
	return NotFound(l.Path, imageResourceType)
}

// GlyphDir is a folder of glyph images.
type GlyphDir struct {
	fsys fs.FS
}

// NewGlyphDir wraps a file system holding a vendor's glyph images.
func NewGlyphDir(fsys fs.FS) *GlyphDir {
	return &GlyphDir{fsys: fsys}
}

// OpenGlyphDir wraps a folder of glyph images. The folder must exist.
func OpenGlyphDir(dir string) (*GlyphDir, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, NotFound(dir, folderResourceType)
	}
	return NewGlyphDir(os.DirFS(dir)), nil
}

// Lookup looks for a single glyph file. Names are slash-separated paths
// relative to the root of the glyph file system.
func (g *GlyphDir) Lookup(name string) Lookup {
	l := Lookup{Path: name, Tried: 1}
	data, err := fs.ReadFile(g.fsys, name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			tracer().Debugf("cannot read glyph %s: %v", name, err)
		}
		return l
	}
	l.Data, l.found = data, true
	return l
}

// Resolve tries candidate names in order and returns the first one found.
// If none is found, the returned Lookup refers to the last candidate.
func (g *GlyphDir) Resolve(candidates []string) Lookup {
	var l Lookup
	for i, name := range candidates {
		l = g.Lookup(name)
		l.Tried = i + 1
		if l.Found() {
			return l
		}
	}
	return l
}
