package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/arff/pkg/arff"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadParse(t *testing.T) {
	path := writeFile(t, "parse.yaml", `class: named
class_name: Type
max_samples: 500
max_features: 32
`)

	p, err := LoadParse(path)
	if err != nil {
		t.Fatalf("LoadParse: %v", err)
	}

	opts, err := p.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Class != arff.ClassNamed || opts.ClassName != "Type" {
		t.Errorf("Class = %v %q", opts.Class, opts.ClassName)
	}
	if opts.MaxSamples != 500 || opts.MaxFeatures != 32 {
		t.Errorf("Limits = %d/%d", opts.MaxSamples, opts.MaxFeatures)
	}
}

func TestParsePolicyMapping(t *testing.T) {
	cases := map[string]arff.ClassPolicy{
		"":      arff.ClassLast,
		"last":  arff.ClassLast,
		"first": arff.ClassFirst,
		"named": arff.ClassNamed,
	}
	for in, want := range cases {
		opts, err := Parse{Class: in, ClassName: "c"}.Options()
		if err != nil {
			t.Errorf("Options(%q): %v", in, err)
			continue
		}
		if opts.Class != want {
			t.Errorf("Options(%q).Class = %v, want %v", in, opts.Class, want)
		}
	}

	if _, err := (Parse{Class: "middle"}).Options(); err == nil {
		t.Error("unknown policy should be rejected")
	}
}

func TestLoadIndexer(t *testing.T) {
	path := writeFile(t, "indexer.yaml", `database: catalog.db
roots:
  - /data/arff
  - /more/arff
parse:
  class: first
`)

	ix, err := LoadIndexer(path)
	if err != nil {
		t.Fatalf("LoadIndexer: %v", err)
	}
	if ix.Database != "catalog.db" {
		t.Errorf("Database = %q", ix.Database)
	}
	if len(ix.Roots) != 2 {
		t.Errorf("Expected 2 roots, got %d", len(ix.Roots))
	}
	if ix.Parse.Class != "first" {
		t.Errorf("Parse.Class = %q", ix.Parse.Class)
	}
}

func TestLoadIndexerRequiresDatabase(t *testing.T) {
	path := writeFile(t, "indexer.yaml", "roots:\n  - /data\n")
	if _, err := LoadIndexer(path); err == nil {
		t.Error("missing database path should be rejected")
	}
}
