package pipeline

import (
	"bytes"
	"context"

	"github.com/npillmayer/emojiconv/backend/output"
	"github.com/npillmayer/emojiconv/core/config"
	"github.com/npillmayer/emojiconv/core/emojidata"
	"github.com/npillmayer/emojiconv/core/locale"
	"github.com/npillmayer/emojiconv/core/locate/resources"
	"github.com/npillmayer/emojiconv/core/vendor"
	"github.com/npillmayer/emojiconv/input/chart"
	"github.com/npillmayer/emojiconv/input/cldr"
)

func readChart(path string) ([]chart.Row, error) {
	doc, err := resources.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return chart.ReadBytes(doc)
}

// RunList writes the glyphs of the chart at path into a text file next to
// it, one glyph sequence per line.
func RunList(path string, conf config.Config) (Summary, error) {
	rep := NewReporter(conf.Verbosity)
	rows, err := readChart(path)
	if err != nil {
		return Summary{}, err
	}
	glyphs := GlyphList(rows, rep)
	out := output.ListPath(path)
	if err := output.WriteLines(out, glyphs); err != nil {
		return Summary{}, err
	}
	return summarize(len(glyphs), rep, out), nil
}

// RunGlyphs matches the chart against the glyph folder of a vendor and
// writes the vendor's image records.
func RunGlyphs(ctx context.Context, v vendor.Vendor, conf config.Config) (Summary, error) {
	rep := NewReporter(conf.Verbosity)
	rows, err := readChart(conf.ChartPath())
	if err != nil {
		return Summary{}, err
	}
	glyphs, err := resources.OpenGlyphDir(conf.GlyphDir(v.String()))
	if err != nil {
		return Summary{}, err
	}
	records := GlyphFiles(ctx, rows, v, glyphs, imageOptions(conf), rep)
	return writeImages(records, v, conf, rep)
}

// RunChart extracts the images of a vendor embedded in the chart and writes
// the vendor's image records.
func RunChart(ctx context.Context, v vendor.Vendor, conf config.Config) (Summary, error) {
	rep := NewReporter(conf.Verbosity)
	rows, err := readChart(conf.ChartPath())
	if err != nil {
		return Summary{}, err
	}
	records := ChartImages(ctx, rows, v, imageOptions(conf), rep)
	return writeImages(records, v, conf, rep)
}

func imageOptions(conf config.Config) ImageOptions {
	return ImageOptions{Size: conf.Size, Workers: conf.Workers}
}

func writeImages(records []ImageRecord, v vendor.Vendor, conf config.Config, rep *Reporter) (Summary, error) {
	jsonPath := conf.VendorJSON(v.String())
	csvPath := conf.VendorCSV(v.String())
	b64Dir := conf.Base64Dir(v.String())
	if err := WriteImageRecords(records, jsonPath, csvPath, b64Dir); err != nil {
		return Summary{}, err
	}
	return summarize(len(records), rep, jsonPath, csvPath, b64Dir), nil
}

// LocaleOptions select the annotation sources of a locale run.
type LocaleOptions struct {
	Derived bool // merge annotationsDerived after the annotations
}

// RunLocale resolves the short names of a locale and writes its records.
func RunLocale(code string, opts LocaleOptions, conf config.Config) (Summary, error) {
	rep := NewReporter(conf.Verbosity)
	table, err := readReference(conf)
	if err != nil {
		return Summary{}, err
	}
	main, err := readLocale(code, opts, conf)
	if err != nil {
		return Summary{}, err
	}
	var fallback *locale.AnnotationMap
	if parent, ok := locale.Parent(code); ok {
		if fallback, err = readLocale(parent, opts, conf); err != nil {
			return Summary{}, err
		}
	}
	records := ShortNames(main, fallback, table, rep)
	base := conf.LocaleBase(code)
	jsonPath, csvPath := base+".json", base+".csv"
	if err := WriteShortNameRecords(records, jsonPath, csvPath); err != nil {
		return Summary{}, err
	}
	return summarize(len(records), rep, jsonPath, csvPath), nil
}

// readReference loads the emoji table; without a configured reference file
// the table is empty and filters nothing.
func readReference(conf config.Config) (emojidata.Table, error) {
	path := conf.ReferencePath()
	if path == "" {
		return nil, nil
	}
	data, err := resources.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	entries, err := emojidata.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return emojidata.EmojiTable(entries), nil
}

func readLocale(code string, opts LocaleOptions, conf config.Config) (*locale.AnnotationMap, error) {
	anns, err := readAnnotations(conf.AnnotationsPath("annotations", code))
	if err != nil {
		return nil, err
	}
	if opts.Derived {
		derived, err := readAnnotations(conf.AnnotationsPath("annotationsDerived", code))
		if err != nil {
			return nil, err
		}
		anns = anns.Merge(derived)
	}
	return anns, nil
}

func readAnnotations(path string) (*locale.AnnotationMap, error) {
	doc, err := resources.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return cldr.ReadAnnotations(bytes.NewReader(doc))
}
