package pipeline

import (
	"context"
	"errors"

	"github.com/npillmayer/emojiconv/backend/bitmap"
	"github.com/npillmayer/emojiconv/core/codepoint"
	"github.com/npillmayer/emojiconv/core/locate/resources"
	"github.com/npillmayer/emojiconv/core/vendor"
	"github.com/npillmayer/emojiconv/engine/batch"
	"github.com/npillmayer/emojiconv/input/chart"
)

// ImageOptions control the bitmap stage of the image pipelines.
type ImageOptions struct {
	Size    int // edge length of output bitmaps
	Workers int // concurrent scaling jobs
}

// imageJob is a chart row for which an image has been found.
type imageJob struct {
	id   int
	seq  codepoint.Sequence
	name string
	data []byte
}

// numberedRows yields the chart rows with a valid number and a non-empty
// canonical code, dropping duplicate row numbers.
func numberedRows(rows []chart.Row, rep *Reporter, fn func(int, codepoint.Sequence, chart.Row)) {
	seen := make(map[int]bool, len(rows))
	for _, row := range rows {
		no, ok := row.Number()
		if !ok {
			continue // header rows
		}
		if seen[no] {
			rep.Failure("%d %s: duplicate row number", no, row.Code)
			continue
		}
		seen[no] = true
		seq := codepoint.Canonicalize(row.Code, codepoint.DefaultOptions())
		if seq.Empty() {
			rep.Failure("%d %q: no codepoints", no, row.Name)
			continue
		}
		fn(no, seq, row)
	}
}

// GlyphFiles matches chart rows with the image files of a vendor's glyph
// folder and returns the records of all rows which could be matched and
// scaled. Candidate file names are tried in order; rows without any
// existing file are dropped.
func GlyphFiles(ctx context.Context, rows []chart.Row, v vendor.Vendor, glyphs *resources.GlyphDir,
	opts ImageOptions, rep *Reporter) []ImageRecord {
	//
	var jobs []imageJob
	numberedRows(rows, rep, func(no int, seq codepoint.Sequence, row chart.Row) {
		candidates := vendor.Candidates(seq, v, ".")
		l := glyphs.Resolve(candidates)
		switch {
		case !l.Found():
			rep.Failure("%d %s %v %s", no, seq.Key(), candidates, row.Name)
			return
		case l.Tried > 1:
			rep.Warning("skin tone neutral modifier needed: %d %s %s %s", no, seq.Key(), l.Path, row.Name)
		default:
			rep.Trace("%d %s %s %s", no, seq.Key(), l.Path, row.Name)
		}
		jobs = append(jobs, imageJob{id: no, seq: seq, name: row.Name, data: l.Data})
	})
	return scaleImages(ctx, jobs, opts, rep)
}

// ChartImages extracts a vendor's images embedded as data URIs in the chart
// and returns the records of all rows whose image could be decoded and
// scaled.
func ChartImages(ctx context.Context, rows []chart.Row, v vendor.Vendor,
	opts ImageOptions, rep *Reporter) []ImageRecord {
	//
	var jobs []imageJob
	numberedRows(rows, rep, func(no int, seq codepoint.Sequence, row chart.Row) {
		src, ok := row.VendorImage(v)
		if !ok {
			rep.Failure("%d %s: no %s image in chart", no, seq.Key(), v)
			return
		}
		data, err := chart.DecodeDataURI(src)
		if err != nil {
			rep.Failure("%d %s: %v", no, seq.Key(), err)
			return
		}
		rep.Trace("%d %s %s", no, seq.Key(), row.Name)
		jobs = append(jobs, imageJob{id: no, seq: seq, name: row.Name, data: data})
	})
	return scaleImages(ctx, jobs, opts, rep)
}

func scaleImages(ctx context.Context, jobs []imageJob, opts ImageOptions, rep *Reporter) []ImageRecord {
	size := opts.Size
	if size <= 0 {
		size = bitmap.DefaultSize
	}
	results := batch.Run(ctx, opts.Workers, jobs, func(_ context.Context, j imageJob) (ImageRecord, error) {
		b64, err := bitmap.Encode(j.data, size)
		if err != nil {
			rep.Failure("%d %s %s: %v", j.id, j.seq.Key(), j.name, err)
			return ImageRecord{}, err
		}
		return ImageRecord{ID: j.id, Base64: b64, Code: j.seq.Key()}, nil
	})
	for _, i := range batch.Failures(results) {
		if err := results[i].Err; errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			rep.Failure("%d %s %s: %v", jobs[i].id, jobs[i].seq.Key(), jobs[i].name, err)
		}
	}
	records := batch.Values(results)
	tracer().Debugf("scaled %d of %d images", len(records), len(jobs))
	return records
}
