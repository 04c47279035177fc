// Package arff parses ARFF (Attribute-Relation File Format) sources
// into a typed schema, a feature-major numeric matrix and an
// integer-encoded label vector. Categorical values are factorized in
// first-seen order; the class column may be the last attribute, the
// first, or one named by the caller.
package arff

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cognicore/arff/pkg/arff/internalerr"
	"github.com/cognicore/arff/pkg/arff/scan"
)

const version = "1.1.0"

// Version returns the library version string.
func Version() string { return version }

// Load opens path and parses it according to opts.
func Load(path string, opts Options) (*Dataset, error) {
	f, err := openSource(path, opts)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, opts)
}

// Parse reads a complete ARFF source and materializes the dataset.
// Any malformed row aborts the whole load; no partial result is
// returned.
func Parse(r io.Reader, opts Options) (*Dataset, error) {
	if err := validateSelection(opts); err != nil {
		return nil, err
	}

	h, err := scan.Read(r)
	if err != nil {
		return nil, err
	}
	if err := checkDimensions(len(h.Lines), len(h.Attributes), opts); err != nil {
		return nil, err
	}

	sel, err := selectClass(attributesOf(h), opts)
	if err != nil {
		return nil, err
	}

	numeric := classifyNumeric(sel.Features)
	x, y, states, err := materialize(h.Lines, sel, numeric)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		attributes: sel.Features,
		numeric:    numeric,
		className:  sel.Name,
		classType:  sel.Type,
		lines:      h.Lines,
		states:     states,
		x:          x,
		y:          y,
	}, nil
}

// openSource validates the path, applies the file-size guard and opens
// the file.
func openSource(path string, opts Options) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: file name cannot be empty", internalerr.ErrInvalidInput)
	}
	if opts.MaxFileSize > 0 {
		if info, err := os.Stat(path); err == nil && info.Size() > opts.MaxFileSize {
			return nil, fmt.Errorf("%w: file size %d exceeds maximum %d bytes",
				internalerr.ErrLimit, info.Size(), opts.MaxFileSize)
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to open file %s: %v", internalerr.ErrUnreadable, path, err)
	}
	return f, nil
}

func validateSelection(opts Options) error {
	if opts.Class == ClassNamed && opts.ClassName == "" {
		return fmt.Errorf("%w: class name cannot be empty", internalerr.ErrInvalidInput)
	}
	return nil
}

func checkDimensions(samples, features int, opts Options) error {
	if opts.MaxSamples > 0 && samples > opts.MaxSamples {
		return fmt.Errorf("%w: %d samples exceed maximum %d", internalerr.ErrLimit, samples, opts.MaxSamples)
	}
	if opts.MaxFeatures > 0 && features > opts.MaxFeatures {
		return fmt.Errorf("%w: %d attributes exceed maximum %d", internalerr.ErrLimit, features, opts.MaxFeatures)
	}
	return nil
}

func attributesOf(h scan.Header) []Attribute {
	attrs := make([]Attribute, len(h.Attributes))
	for i, a := range h.Attributes {
		attrs[i] = Attribute{Name: a.Name, Type: a.Type}
	}
	return attrs
}

// selection is the outcome of class-attribute extraction: the class
// name/type, the reduced feature list and the original column index
// of the class.
type selection struct {
	Name     string
	Type     string
	Features []Attribute
	LabelIdx int
}

// selectClass removes the class attribute chosen by opts from the
// attribute list and records its original column position.
func selectClass(attrs []Attribute, opts Options) (selection, error) {
	var sel selection
	switch opts.Class {
	case ClassFirst:
		sel = selection{
			Name:     attrs[0].Name,
			Type:     attrs[0].Type,
			Features: attrs[1:],
			LabelIdx: 0,
		}
	case ClassNamed:
		idx := -1
		for i, a := range attrs {
			if a.Name == opts.ClassName {
				idx = i
				break
			}
		}
		if idx < 0 {
			return selection{}, fmt.Errorf("%w: class name %q not found in attributes", internalerr.ErrNotFound, opts.ClassName)
		}
		features := make([]Attribute, 0, len(attrs)-1)
		features = append(features, attrs[:idx]...)
		features = append(features, attrs[idx+1:]...)
		sel = selection{
			Name:     attrs[idx].Name,
			Type:     attrs[idx].Type,
			Features: features,
			LabelIdx: idx,
		}
	default: // ClassLast
		last := len(attrs) - 1
		sel = selection{
			Name:     attrs[last].Name,
			Type:     attrs[last].Type,
			Features: attrs[:last],
			LabelIdx: last,
		}
	}
	if sel.Name == "" {
		return selection{}, fmt.Errorf("%w: class attribute name cannot be empty", internalerr.ErrFormat)
	}
	return sel, nil
}

// classifyNumeric marks each feature numeric when its uppercased type
// descriptor is exactly REAL, INTEGER or NUMERIC. Enumerated sets,
// strings and dates all count as categorical.
func classifyNumeric(features []Attribute) map[string]bool {
	numeric := make(map[string]bool, len(features))
	for _, a := range features {
		t := strings.ToUpper(a.Type)
		numeric[a.Name] = t == "REAL" || t == "INTEGER" || t == "NUMERIC"
	}
	return numeric
}
