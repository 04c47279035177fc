package arff

// Dataset is the materialized result of one load. It is immutable
// through the regular accessors; the Take variants hand over the
// underlying storage and leave the dataset's copy empty, which avoids
// duplicating large matrices when the caller is the sole consumer.
type Dataset struct {
	attributes []Attribute
	numeric    map[string]bool
	className  string
	classType  string
	lines      []string
	states     map[string][]string
	x          [][]float64
	y          []int
}

// NumSamples returns the number of retained data rows.
func (d *Dataset) NumSamples() int { return len(d.lines) }

// Attributes returns the feature attributes in file order, class
// excluded.
func (d *Dataset) Attributes() []Attribute { return d.attributes }

// Numeric maps each feature name to true when the feature is numeric.
func (d *Dataset) Numeric() map[string]bool { return d.numeric }

// ClassName returns the name of the class attribute.
func (d *Dataset) ClassName() string { return d.className }

// ClassType returns the raw type descriptor of the class attribute.
func (d *Dataset) ClassType() string { return d.classType }

// States maps every attribute name (class included) to its display
// labels in first-seen order. Numeric features map to an empty list.
func (d *Dataset) States() map[string][]string { return d.states }

// Labels returns the display labels of the class column.
func (d *Dataset) Labels() []string { return d.states[d.className] }

// Lines returns the retained raw data rows.
func (d *Dataset) Lines() []string { return d.lines }

// X returns the feature-major matrix: X[feature][sample].
func (d *Dataset) X() [][]float64 { return d.x }

// Y returns the factorized class codes in row order.
func (d *Dataset) Y() []int { return d.y }

// TakeX hands over the feature matrix, leaving the dataset's copy nil.
func (d *Dataset) TakeX() [][]float64 {
	x := d.x
	d.x = nil
	return x
}

// TakeY hands over the label vector, leaving the dataset's copy nil.
func (d *Dataset) TakeY() []int {
	y := d.y
	d.y = nil
	return y
}

// TakeLines hands over the raw data rows, leaving the dataset's copy nil.
func (d *Dataset) TakeLines() []string {
	lines := d.lines
	d.lines = nil
	return lines
}

// TakeStates hands over the states table, leaving the dataset's copy nil.
func (d *Dataset) TakeStates() map[string][]string {
	states := d.states
	d.states = nil
	return states
}

// TakeAttributes hands over the attribute list, leaving the dataset's
// copy nil.
func (d *Dataset) TakeAttributes() []Attribute {
	attrs := d.attributes
	d.attributes = nil
	return attrs
}

// TakeNumeric hands over the numeric-classification table, leaving the
// dataset's copy nil.
func (d *Dataset) TakeNumeric() map[string]bool {
	numeric := d.numeric
	d.numeric = nil
	return numeric
}
