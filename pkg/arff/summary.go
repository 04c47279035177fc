package arff

import (
	"io"
	"sort"

	"github.com/cognicore/arff/pkg/arff/scan"
)

// Summary describes a source without materializing its matrix: counts
// of samples, features and distinct class values, plus the feature
// schema. ClassLabels are the distinct class values in sorted order.
type Summary struct {
	NumSamples  int
	NumFeatures int
	NumClasses  int
	ClassName   string
	ClassType   string
	ClassLabels []string
	Features    []Attribute
}

// Summarize opens path and produces its Summary according to opts.
// Header- and limit-related failure modes match Load; data rows are
// only tokenized far enough to count samples and class values.
func Summarize(path string, opts Options) (Summary, error) {
	f, err := openSource(path, opts)
	if err != nil {
		return Summary{}, err
	}
	defer f.Close()
	return SummarizeReader(f, opts)
}

// SummarizeReader is Summarize over an already-open source.
func SummarizeReader(r io.Reader, opts Options) (Summary, error) {
	if err := validateSelection(opts); err != nil {
		return Summary{}, err
	}

	h, err := scan.Read(r)
	if err != nil {
		return Summary{}, err
	}
	if err := checkDimensions(len(h.Lines), len(h.Attributes), opts); err != nil {
		return Summary{}, err
	}

	sel, err := selectClass(attributesOf(h), opts)
	if err != nil {
		return Summary{}, err
	}

	unique := make(map[string]struct{})
	samples := 0
	for _, line := range h.Lines {
		tokens := scan.Fields(line)
		idx := sel.LabelIdx
		if opts.Class == ClassLast {
			// The header may be wider than a short row; the class is
			// whatever comes last.
			idx = len(tokens) - 1
		}
		if idx < 0 || idx >= len(tokens) {
			continue
		}
		if v := tokens[idx]; v != "" {
			unique[v] = struct{}{}
			samples++
		}
	}

	labels := make([]string, 0, len(unique))
	for v := range unique {
		labels = append(labels, v)
	}
	sort.Strings(labels)

	return Summary{
		NumSamples:  samples,
		NumFeatures: len(sel.Features),
		NumClasses:  len(unique),
		ClassName:   sel.Name,
		ClassType:   sel.Type,
		ClassLabels: labels,
		Features:    sel.Features,
	}, nil
}
