package arff

// Attribute is one declared feature: its name and the raw ARFF type
// descriptor (e.g. "REAL", "INTEGER", "{red,green,blue}").
type Attribute struct {
	Name string
	Type string
}

// ClassPolicy selects which declared attribute is the class column.
type ClassPolicy int

const (
	// ClassLast takes the final declared attribute (ARFF convention).
	ClassLast ClassPolicy = iota
	// ClassFirst takes the first declared attribute.
	ClassFirst
	// ClassNamed takes the attribute matching Options.ClassName.
	ClassNamed
)

// Default resource guards, matching the limits the reference datasets
// were curated under. A zero value in Options disables the guard.
const (
	DefaultMaxFileSize = 100 * 1024 * 1024
	DefaultMaxSamples  = 1_000_000
	DefaultMaxFeatures = 10_000
)

// Options configures a load or summary run.
type Options struct {
	// Class selects the class-attribute policy.
	Class ClassPolicy
	// ClassName names the class attribute; required when Class is
	// ClassNamed, ignored otherwise. Matching is exact and
	// case-sensitive.
	ClassName string

	// MaxFileSize caps the source size in bytes for the path-based
	// entry points. Zero disables the check.
	MaxFileSize int64
	// MaxSamples caps the number of retained data rows. Zero
	// disables the check.
	MaxSamples int
	// MaxFeatures caps the number of declared attributes. Zero
	// disables the check.
	MaxFeatures int
}

// DefaultOptions returns Options with the class taken from the last
// attribute and all resource guards enabled.
func DefaultOptions() Options {
	return Options{
		MaxFileSize: DefaultMaxFileSize,
		MaxSamples:  DefaultMaxSamples,
		MaxFeatures: DefaultMaxFeatures,
	}
}
