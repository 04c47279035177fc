// Package catalog defines the store interface for indexed ARFF
// dataset summaries, so collections of datasets can be browsed
// without re-parsing the files.
package catalog

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Entry is one indexed dataset: the file it came from plus the
// figures of its summary.
type Entry struct {
	ID          string
	Path        string
	ClassName   string
	ClassType   string
	NumSamples  int
	NumFeatures int
	NumClasses  int
	ClassLabels []string
	Features    []Feature
	IndexedAt   time.Time
}

// Feature is a feature name with its declared ARFF type.
type Feature struct {
	Name string
	Type string
}

// Store persists and queries dataset entries. Upserts are keyed by
// Path; re-indexing a file keeps its ID.
type Store interface {
	Close() error

	UpsertEntry(ctx context.Context, e Entry) error
	GetEntry(ctx context.Context, id string) (Entry, bool, error)
	GetEntryByPath(ctx context.Context, path string) (Entry, bool, error)
	ListEntries(ctx context.Context, limit int) ([]Entry, error)
}

// IDGenerator mints catalog entry IDs as ULIDs with monotonic entropy,
// so IDs sort by indexing time.
type IDGenerator struct {
	entropy *ulid.MonotonicEntropy
}

// NewIDGenerator creates an ID generator.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Next returns a fresh entry ID.
func (g *IDGenerator) Next() string {
	return ulid.MustNew(ulid.Now(), g.entropy).String()
}
