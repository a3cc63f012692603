package emojidata

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/emojiconv/core"
)

// Entry is a data line of the reference file.
type Entry struct {
	Codepoints string // "1F600" or "1F600..1F64F"
	Property   string // e.g. "Emoji", "Emoji_Presentation"
	Version    string // e.g. "E1.0"
}

// Parser iterates over the data lines of a reference file.
//
//	p := emojidata.NewParser(r)
//	for p.Next() {
//	    e := p.Entry
//	}
//	if err := p.Err(); err != nil { … }
//
// Malformed lines are skipped and remembered in Skipped.
type Parser struct {
	Entry   Entry
	Skipped []string
	scanner *bufio.Scanner
	lineno  int
	err     error
}

// NewParser creates a parser for a reference file.
func NewParser(r io.Reader) *Parser {
	return &Parser{scanner: bufio.NewScanner(r)}
}

// Next advances to the next data line. It returns false at the end of input
// or on a read error.
func (p *Parser) Next() bool {
	for p.scanner.Scan() {
		p.lineno++
		line := strings.TrimSpace(p.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, ok := parseLine(line)
		if !ok {
			msg := fmt.Sprintf("line %d: %q", p.lineno, line)
			tracer().Debugf("skipping malformed reference %s", msg)
			p.Skipped = append(p.Skipped, msg)
			continue
		}
		p.Entry = e
		return true
	}
	if err := p.scanner.Err(); err != nil {
		p.err = core.WrapError(err, core.EIO, "cannot read emoji reference data")
	}
	return false
}

// Err returns the first read error, if any.
func (p *Parser) Err() error {
	return p.err
}

// parseLine splits "codepoints ; property # version description".
func parseLine(line string) (Entry, bool) {
	cp, rest, ok := strings.Cut(line, ";")
	if !ok {
		return Entry{}, false
	}
	prop, comment, ok := strings.Cut(rest, "#")
	if !ok {
		return Entry{}, false
	}
	e := Entry{
		Codepoints: strings.TrimSpace(cp),
		Property:   strings.TrimSpace(prop),
	}
	if f := strings.Fields(comment); len(f) > 0 {
		e.Version = f[0]
	}
	if e.Codepoints == "" {
		return Entry{}, false
	}
	return e, true
}

// Parse reads all entries of a reference file.
func Parse(r io.Reader) ([]Entry, error) {
	p := NewParser(r)
	var entries []Entry
	for p.Next() {
		entries = append(entries, p.Entry)
	}
	tracer().Debugf("read %d reference entries, skipped %d", len(entries), len(p.Skipped))
	return entries, p.Err()
}
