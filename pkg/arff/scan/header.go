package scan

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cognicore/arff/pkg/arff/internalerr"
)

// Attribute is one @attribute declaration: a name and the raw type
// descriptor that followed it (e.g. "REAL" or "{a,b,c}").
type Attribute struct {
	Name string
	Type string
}

// Header is the result of scanning one ARFF source: the declared
// attributes in file order and the data rows that survived the
// missing-value filter, kept verbatim.
type Header struct {
	Attributes []Attribute
	Lines      []string
}

// maxLineSize bounds a single data row; wide rows with thousands of
// features still fit comfortably.
const maxLineSize = 1024 * 1024

// Read consumes the source to completion and classifies every line:
// comments, blanks and non-attribute directives are skipped,
// @attribute declarations are parsed, rows containing an unquoted '?'
// are dropped, and everything else is retained as a data row.
func Read(r io.Reader) (Header, error) {
	var h Header
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line == "\r" || line == " " || line[0] == '%' {
			continue
		}
		if strings.Contains(strings.ToLower(line), "@attribute") {
			attr, err := parseAttribute(line)
			if err != nil {
				return Header{}, err
			}
			if _, dup := seen[attr.Name]; dup {
				return Header{}, fmt.Errorf("%w: duplicate attribute name %q", internalerr.ErrFormat, attr.Name)
			}
			seen[attr.Name] = struct{}{}
			h.Attributes = append(h.Attributes, attr)
			continue
		}
		if line[0] == '@' {
			continue
		}
		if HasMissing(line) {
			continue
		}
		h.Lines = append(h.Lines, line)
	}
	if err := scanner.Err(); err != nil {
		return Header{}, fmt.Errorf("%w: %v", internalerr.ErrUnreadable, err)
	}

	if len(h.Attributes) == 0 {
		return Header{}, fmt.Errorf("%w: no attributes found", internalerr.ErrFormat)
	}
	if len(h.Lines) == 0 {
		return Header{}, fmt.Errorf("%w: no data samples found", internalerr.ErrFormat)
	}
	return h, nil
}

// parseAttribute splits a declaration line into keyword, name and type
// descriptor. The descriptor is everything after the name, re-joined
// with single spaces.
func parseAttribute(line string) (Attribute, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || Trim(fields[1]) == "" {
		return Attribute{}, fmt.Errorf("%w: empty attribute name in line %q", internalerr.ErrFormat, line)
	}
	name := Trim(fields[1])
	typ := Trim(strings.Join(fields[2:], " "))
	if typ == "" {
		return Attribute{}, fmt.Errorf("%w: empty attribute type for attribute %q", internalerr.ErrFormat, name)
	}
	return Attribute{Name: name, Type: typ}, nil
}
