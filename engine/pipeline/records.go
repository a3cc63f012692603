package pipeline

import (
	"strconv"

	"github.com/npillmayer/emojiconv/backend/output"
	"github.com/npillmayer/emojiconv/core/codepoint"
)

// ImageRecord is an emoji with its scaled vendor bitmap.
type ImageRecord struct {
	ID     int    `json:"id"`     // row number in the emoji chart
	Base64 string `json:"base64"` // base64 encoded PNG
	Code   string `json:"code"`   // canonical codepoints, space separated
}

// ShortNameRecord is an emoji with its localized short name.
type ShortNameRecord struct {
	Glyph     string `json:"c"`
	ShortName string `json:"sn"`
	Code      string `json:"code"`
}

// Summary tells what a run has produced.
type Summary struct {
	Records   int      // number of records written
	Dropped   int      // number of records dropped
	Fallbacks int      // number of records resolved by a fallback
	Files     []string // output files, base64 folders included
}

func summarize(records int, rep *Reporter, files ...string) Summary {
	return Summary{
		Records:   records,
		Dropped:   rep.Dropped(),
		Fallbacks: rep.Fallbacks(),
		Files:     files,
	}
}

// WriteImageRecords writes the JSON list, the CSV list (id, code) and one
// base64 text file per record.
func WriteImageRecords(records []ImageRecord, jsonPath, csvPath, base64Dir string) error {
	files := make(map[string]string, len(records))
	rows := make([][]string, len(records))
	for i, r := range records {
		key := codepoint.FileKey(r.Code)
		files[key] = r.Base64
		rows[i] = []string{strconv.Itoa(r.ID), key}
	}
	if err := output.WriteTextFiles(base64Dir, files); err != nil {
		return err
	}
	if err := output.WriteJSON(jsonPath, records); err != nil {
		return err
	}
	return output.WriteCSV(csvPath, []string{"id", "code"}, rows)
}

// WriteShortNameRecords writes the JSON list and the CSV list (code, sn).
func WriteShortNameRecords(records []ShortNameRecord, jsonPath, csvPath string) error {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{codepoint.FileKey(r.Code), r.ShortName}
	}
	if err := output.WriteJSON(jsonPath, records); err != nil {
		return err
	}
	return output.WriteCSV(csvPath, []string{"code", "sn"}, rows)
}
