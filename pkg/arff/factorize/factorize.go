// Package factorize turns categorical string values into stable
// integer codes: the first distinct value seen gets code 0, the next
// new value code 1, and so on. Codes and display labels are
// deterministic for a given input order.
package factorize

import "unicode"

// Encoder assigns integer codes to string values in first-seen order.
type Encoder struct {
	codes  map[string]int
	labels []string
}

// NewEncoder creates an empty encoder.
func NewEncoder() *Encoder {
	return &Encoder{codes: make(map[string]int)}
}

// Code returns the code for v, assigning the next sequential code if
// v has not been seen before.
func (e *Encoder) Code(v string) int {
	if c, ok := e.codes[v]; ok {
		return c
	}
	c := len(e.labels)
	e.codes[v] = c
	e.labels = append(e.labels, DisplayLabel(v))
	return c
}

// Labels returns the display labels in code order.
func (e *Encoder) Labels() []string {
	return e.labels
}

// Values encodes a whole sequence at once and returns the per-value
// codes together with the display labels in first-seen order.
func Values(vals []string) ([]int, []string) {
	e := NewEncoder()
	codes := make([]int, len(vals))
	for i, v := range vals {
		codes[i] = e.Code(v)
	}
	return codes, e.Labels()
}

// DisplayLabel renders a raw value for presentation. Values made up
// entirely of decimal digits get a "Class " prefix so that a numeric
// class column such as 0/1 reads as "Class 0"/"Class 1".
func DisplayLabel(v string) string {
	if v != "" && allDigits(v) {
		return "Class " + v
	}
	return v
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
