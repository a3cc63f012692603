/*
Package config holds the configuration of a conversion run.

A Config is created from defaults, optionally overlaid by a YAML file and
finally by command line flags. It is handed to the pipelines explicitly;
nothing in this module reads configuration from global state.

A YAML configuration may set any of the following keys; paths are relative
to `files` unless absolute.

	files: ./files
	chart: full-emoji-list.html
	reference: emoji-data.txt
	cldr: cldr/common
	glyphs: glyphs
	base64: base64
	locales: locale
	size: 24
	workers: 8

An empty `reference` switches off reference filtering.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/npillmayer/emojiconv/core"
	"gopkg.in/yaml.v3"
)

// Verbosity is the level of per-record diagnostics.
type Verbosity int

const (
	Silent   Verbosity = iota // no per-record diagnostics
	Failures                  // records which have been dropped
	Warnings                  // records which needed a fallback
	Trace                     // every record
)

// Config is the configuration of a single run.
type Config struct {
	Files     string `yaml:"files"`     // base directory of inputs and outputs
	Chart     string `yaml:"chart"`     // Unicode full emoji list (HTML)
	Reference string `yaml:"reference"` // emoji-data.txt
	CLDR      string `yaml:"cldr"`      // CLDR 'common' folder
	Glyphs    string `yaml:"glyphs"`    // folder of per-vendor glyph folders
	Base64    string `yaml:"base64"`    // folder of per-vendor base64 output folders
	Locales   string `yaml:"locales"`   // output folder for locale files
	Size      int    `yaml:"size"`      // edge length of output bitmaps
	Workers   int    `yaml:"workers"`   // concurrent image jobs

	Verbosity Verbosity `yaml:"-"`
}

// Default returns the conventional layout of the files folder.
func Default() Config {
	return Config{
		Files:     "./files",
		Chart:     "full-emoji-list.html",
		Reference: "emoji-data.txt",
		CLDR:      "cldr/common",
		Glyphs:    "glyphs",
		Base64:    "base64",
		Locales:   "locale",
		Size:      24,
		Workers:   runtime.NumCPU(),
	}
}

// Load returns the default configuration, overlaid by the YAML file at path.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return conf, core.WrapError(err, core.EMISSING, "configuration file %s not found", path)
		}
		return conf, core.WrapError(err, core.EIO, "cannot read configuration file %s", path)
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, core.WrapError(err, core.EINVALID, "configuration file %s is not valid YAML", path)
	}
	return conf, conf.Validate()
}

// Validate checks numeric settings.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return core.Error(core.EINVALID, "bitmap size must be positive, is %d", c.Size)
	}
	if c.Workers <= 0 {
		return core.Error(core.EINVALID, "number of workers must be positive, is %d", c.Workers)
	}
	return nil
}

// Path resolves a configured path against the files folder.
func (c Config) Path(elem ...string) string {
	p := filepath.Join(elem...)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Files, p)
}

// ChartPath is the location of the Unicode full emoji list.
func (c Config) ChartPath() string {
	return c.Path(c.Chart)
}

// ReferencePath is the location of emoji-data.txt, or "" if filtering is
// switched off.
func (c Config) ReferencePath() string {
	if c.Reference == "" {
		return ""
	}
	return c.Path(c.Reference)
}

// GlyphDir is the folder of a vendor's glyph images.
func (c Config) GlyphDir(vendor string) string {
	return c.Path(c.Glyphs, vendor)
}

// Base64Dir is the output folder for a vendor's base64 files.
func (c Config) Base64Dir(vendor string) string {
	return c.Path(c.Base64, vendor)
}

// VendorJSON is the output path of a vendor's JSON record list.
func (c Config) VendorJSON(vendor string) string {
	return filepath.Join(c.Files, "emoji-list-base64-"+vendor+".json")
}

// VendorCSV is the output path of a vendor's CSV record list.
func (c Config) VendorCSV(vendor string) string {
	return filepath.Join(c.Files, "emoji-list-"+vendor+".csv")
}

// AnnotationsPath is the CLDR annotation file of a locale. kind is
// "annotations" or "annotationsDerived".
func (c Config) AnnotationsPath(kind, locale string) string {
	return c.Path(c.CLDR, kind, locale+".xml")
}

// LocaleBase is the output path of a locale without file extension.
func (c Config) LocaleBase(locale string) string {
	return c.Path(c.Locales, locale)
}
