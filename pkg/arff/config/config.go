// Package config loads YAML configuration for the arff tools: parse
// options for the library and settings for the catalog indexer.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/arff/pkg/arff"
)

// Parse is the YAML form of arff.Options.
type Parse struct {
	Class       string `yaml:"class"` // "last" (default), "first" or "named"
	ClassName   string `yaml:"class_name"`
	MaxFileSize int64  `yaml:"max_file_size"`
	MaxSamples  int    `yaml:"max_samples"`
	MaxFeatures int    `yaml:"max_features"`
}

// Options converts the YAML form into arff.Options.
func (p Parse) Options() (arff.Options, error) {
	opts := arff.Options{
		ClassName:   p.ClassName,
		MaxFileSize: p.MaxFileSize,
		MaxSamples:  p.MaxSamples,
		MaxFeatures: p.MaxFeatures,
	}
	switch p.Class {
	case "", "last":
		opts.Class = arff.ClassLast
	case "first":
		opts.Class = arff.ClassFirst
	case "named":
		opts.Class = arff.ClassNamed
	default:
		return arff.Options{}, fmt.Errorf("unknown class policy %q", p.Class)
	}
	return opts, nil
}

// LoadParse loads parse options from a YAML file.
func LoadParse(path string) (*Parse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Parse
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// Indexer configures the catalog indexer: where the catalog database
// lives and which directories to walk for .arff files.
type Indexer struct {
	Database string   `yaml:"database"`
	Roots    []string `yaml:"roots"`
	Parse    Parse    `yaml:"parse"`
}

// LoadIndexer loads indexer settings from a YAML file.
func LoadIndexer(path string) (*Indexer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var ix Indexer
	if err := yaml.Unmarshal(data, &ix); err != nil {
		return nil, err
	}
	if ix.Database == "" {
		return nil, fmt.Errorf("indexer config %s: database path is required", path)
	}

	return &ix, nil
}
