/*
Package output writes the result files of a conversion run.

All writers overwrite existing files. Parent folders are created as needed
(with permissions 755).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/npillmayer/emojiconv/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'emojiconv'
func tracer() tracing.Trace {
	return tracing.Select("emojiconv")
}

// WriteFile writes data to path, creating parent folders.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return core.WrapError(err, core.EIO, "cannot create folder %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return core.WrapError(err, core.EIO, "cannot write %s", path)
	}
	tracer().Debugf("wrote %d bytes to %s", len(data), path)
	return nil
}

// JSON returns the compact JSON encoding of v, without HTML escaping and
// without a trailing newline. A nil slice is encoded as an empty array.
func JSON(v interface{}) ([]byte, error) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice && rv.IsNil() {
		return []byte("[]"), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot encode records as JSON")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteJSON writes v as compact JSON to path.
func WriteJSON(path string, v interface{}) error {
	data, err := JSON(v)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// CSV returns header and rows as CSV text, lines separated by "\n" and no
// newline after the last row. Fields with a separator, a quote, a line
// break or leading white space are quoted.
func CSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot encode CSV header")
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot encode CSV rows")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteCSV writes header and rows as CSV to path.
func WriteCSV(path string, header []string, rows [][]string) error {
	data, err := CSV(header, rows)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// WriteLines writes lines joined by "\n" to path.
func WriteLines(path string, lines []string) error {
	return WriteFile(path, []byte(strings.Join(lines, "\n")))
}

// WriteTextFiles writes one file per entry into dir. Keys are file names
// without extension, ".txt" is appended.
func WriteTextFiles(dir string, files map[string]string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return core.WrapError(err, core.EIO, "cannot create folder %s", dir)
	}
	for name, content := range files {
		if err := WriteFile(filepath.Join(dir, name+".txt"), []byte(content)); err != nil {
			return err
		}
	}
	return nil
}

// ListPath derives the output path of a glyph list from the chart path:
// a trailing ".html" is replaced by ".txt", otherwise ".txt" is appended.
func ListPath(chartPath string) string {
	return strings.TrimSuffix(chartPath, ".html") + ".txt"
}
