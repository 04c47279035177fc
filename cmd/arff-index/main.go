package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/cognicore/arff/pkg/arff"
	"github.com/cognicore/arff/pkg/arff/catalog"
	"github.com/cognicore/arff/pkg/arff/catalog/sqlite"
	"github.com/cognicore/arff/pkg/arff/config"
)

func main() {
	configPath := flag.String("config", "", "Indexer YAML config (required)")
	flag.Parse()

	if *configPath == "" {
		log.Fatal("--config required")
	}

	cfg, err := config.LoadIndexer(*configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	opts, err := cfg.Parse.Options()
	if err != nil {
		log.Fatal("Invalid parse options:", err)
	}

	ctx := context.Background()

	store, err := sqlite.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to open catalog:", err)
	}
	defer store.Close()

	ids := catalog.NewIDGenerator()
	indexed, failed := 0, 0

	for _, root := range cfg.Roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".arff") {
				return nil
			}

			s, err := arff.Summarize(path, opts)
			if err != nil {
				log.Printf("Skipping %s: %v", path, err)
				failed++
				return nil
			}

			entry := catalog.Entry{
				ID:          ids.Next(),
				Path:        path,
				ClassName:   s.ClassName,
				ClassType:   s.ClassType,
				NumSamples:  s.NumSamples,
				NumFeatures: s.NumFeatures,
				NumClasses:  s.NumClasses,
				ClassLabels: s.ClassLabels,
				Features:    features(s),
				IndexedAt:   time.Now(),
			}
			if err := store.UpsertEntry(ctx, entry); err != nil {
				return err
			}
			indexed++
			return nil
		})
		if err != nil {
			log.Fatalf("Failed to walk %s: %v", root, err)
		}
	}

	log.Printf("Indexed %d datasets (%d skipped) into %s", indexed, failed, cfg.Database)
}

func features(s arff.Summary) []catalog.Feature {
	out := make([]catalog.Feature, len(s.Features))
	for i, f := range s.Features {
		out[i] = catalog.Feature{Name: f.Name, Type: f.Type}
	}
	return out
}
