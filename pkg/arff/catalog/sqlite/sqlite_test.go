package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cognicore/arff/pkg/arff/catalog"
)

// TestSQLiteBasic tests basic catalog CRUD against a real database file.
func TestSQLiteBasic(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	entry := catalog.Entry{
		ID:          "01HZX0000000000000000000AA",
		Path:        "/data/iris.arff",
		ClassName:   "class",
		ClassType:   "{Iris-setosa,Iris-versicolor,Iris-virginica}",
		NumSamples:  150,
		NumFeatures: 4,
		NumClasses:  3,
		ClassLabels: []string{"Iris-setosa", "Iris-versicolor", "Iris-virginica"},
		Features: []catalog.Feature{
			{Name: "sepallength", Type: "REAL"},
			{Name: "sepalwidth", Type: "REAL"},
			{Name: "petallength", Type: "REAL"},
			{Name: "petalwidth", Type: "REAL"},
		},
		IndexedAt: time.Now(),
	}

	if err := st.UpsertEntry(ctx, entry); err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}

	got, found, err := st.GetEntryByPath(ctx, entry.Path)
	if err != nil {
		t.Fatalf("GetEntryByPath: %v", err)
	}
	if !found {
		t.Fatal("Entry should be found")
	}

	if got.ClassName != "class" || got.NumSamples != 150 {
		t.Errorf("Entry = %+v", got)
	}
	if len(got.ClassLabels) != 3 || got.ClassLabels[0] != "Iris-setosa" {
		t.Errorf("ClassLabels = %v", got.ClassLabels)
	}
	if len(got.Features) != 4 || got.Features[3].Name != "petalwidth" {
		t.Errorf("Features = %v", got.Features)
	}

	if _, found, _ := st.GetEntry(ctx, entry.ID); !found {
		t.Error("GetEntry by ID should find the entry")
	}
	if _, found, _ := st.GetEntryByPath(ctx, "/absent.arff"); found {
		t.Error("Unknown path should not be found")
	}
}

func TestSQLiteUpsertKeepsID(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	first := catalog.Entry{
		ID:          "01HZX0000000000000000000AA",
		Path:        "/data/glass.arff",
		NumSamples:  214,
		ClassLabels: []string{"a", "b"},
		IndexedAt:   time.Now(),
	}
	if err := st.UpsertEntry(ctx, first); err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}

	second := first
	second.ID = "01HZX0000000000000000000BB"
	second.NumSamples = 300
	second.ClassLabels = []string{"a", "b", "c"}
	if err := st.UpsertEntry(ctx, second); err != nil {
		t.Fatalf("UpsertEntry update: %v", err)
	}

	got, found, err := st.GetEntryByPath(ctx, first.Path)
	if err != nil || !found {
		t.Fatalf("GetEntryByPath: found=%v err=%v", found, err)
	}
	if got.ID != first.ID {
		t.Errorf("Re-indexed path should keep its ID, got %q", got.ID)
	}
	if got.NumSamples != 300 || len(got.ClassLabels) != 3 {
		t.Errorf("Entry should be updated: %+v", got)
	}
}

func TestSQLiteListEntries(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	paths := []string{"/data/b.arff", "/data/a.arff", "/data/c.arff"}
	for i, p := range paths {
		e := catalog.Entry{
			ID:        string(rune('A'+i)) + "0000000000000000000000000",
			Path:      p,
			IndexedAt: time.Now(),
		}
		if err := st.UpsertEntry(ctx, e); err != nil {
			t.Fatalf("UpsertEntry %s: %v", p, err)
		}
	}

	entries, err := st.ListEntries(ctx, 0)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].Path != "/data/a.arff" {
		t.Errorf("Entries should be sorted by path, got %s first", entries[0].Path)
	}

	limited, err := st.ListEntries(ctx, 1)
	if err != nil {
		t.Fatalf("ListEntries limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 entry with limit, got %d", len(limited))
	}
}
