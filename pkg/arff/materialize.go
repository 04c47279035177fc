package arff

import (
	"fmt"
	"strconv"

	"github.com/cognicore/arff/pkg/arff/factorize"
	"github.com/cognicore/arff/pkg/arff/internalerr"
	"github.com/cognicore/arff/pkg/arff/scan"
)

// materialize walks every retained data row and fills the
// feature-major matrix X[feature][sample], the label vector and the
// per-attribute states table. Numeric cells are parsed directly;
// categorical columns are accumulated as raw strings and factorized
// once all rows have been seen.
func materialize(lines []string, sel selection, numeric map[string]bool) ([][]float64, []int, map[string][]string, error) {
	numSamples := len(lines)
	numFeatures := len(sel.Features)
	if numFeatures == 0 {
		return nil, nil, nil, fmt.Errorf("%w: no feature attributes found", internalerr.ErrFormat)
	}

	// Resolve numeric/categorical to a position-indexed slice so the
	// row loop never does a map lookup.
	numericAt := make([]bool, numFeatures)
	for i, a := range sel.Features {
		numericAt[i] = numeric[a.Name]
	}

	x := make([][]float64, numFeatures)
	categorical := make([][]string, numFeatures)
	for i := range x {
		x[i] = make([]float64, numSamples)
		if !numericAt[i] {
			categorical[i] = make([]string, 0, numSamples)
		}
	}
	rawLabels := make([]string, 0, numSamples)

	expected := numFeatures + 1
	for sampleIdx, line := range lines {
		tokens := scan.Fields(line)
		if len(tokens) != expected {
			return nil, nil, nil, fmt.Errorf("%w: sample %d has %d tokens, expected %d",
				internalerr.ErrFormat, sampleIdx, len(tokens), expected)
		}

		featureIdx := 0
		for pos, token := range tokens {
			if pos == sel.LabelIdx {
				if token == "" {
					return nil, nil, nil, fmt.Errorf("%w: empty class label at sample %d",
						internalerr.ErrFormat, sampleIdx)
				}
				rawLabels = append(rawLabels, token)
				continue
			}
			if numericAt[featureIdx] {
				v, err := strconv.ParseFloat(token, 64)
				if err != nil {
					return nil, nil, nil, fmt.Errorf("%w: invalid numeric value %q at sample %d, feature %s",
						internalerr.ErrFormat, token, sampleIdx, sel.Features[featureIdx].Name)
				}
				x[featureIdx][sampleIdx] = v
			} else {
				if token == "" {
					return nil, nil, nil, fmt.Errorf("%w: empty categorical value at sample %d, feature %s",
						internalerr.ErrFormat, sampleIdx, sel.Features[featureIdx].Name)
				}
				categorical[featureIdx] = append(categorical[featureIdx], token)
			}
			featureIdx++
		}
	}

	states := make(map[string][]string, numFeatures+1)
	for i, a := range sel.Features {
		if numericAt[i] {
			states[a.Name] = []string{}
			continue
		}
		codes, labels := factorize.Values(categorical[i])
		states[a.Name] = labels
		for sampleIdx, c := range codes {
			x[i][sampleIdx] = float64(c)
		}
	}

	y, classLabels := factorize.Values(rawLabels)
	states[sel.Name] = classLabels

	return x, y, states, nil
}
