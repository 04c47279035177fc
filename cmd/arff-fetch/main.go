package main

import (
	"flag"
	"log"
	"os"

	"github.com/cognicore/arff/internal/fetch"
)

func main() {
	var (
		pageURL = flag.String("url", "", "Dataset index page to scan for .arff links (required)")
		outDir  = flag.String("out", "testdata/arff", "Download directory")
		limit   = flag.Int("limit", 0, "Maximum number of files to download (0 = all)")
	)
	flag.Parse()

	if *pageURL == "" {
		log.Fatal("--url required")
	}

	links, err := fetch.Index(*pageURL)
	if err != nil {
		log.Fatal("Failed to scan index page:", err)
	}
	if len(links) == 0 {
		log.Fatal("No .arff links found at ", *pageURL)
	}
	if *limit > 0 && len(links) > *limit {
		links = links[:*limit]
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal("Failed to create output directory:", err)
	}

	downloaded := 0
	for _, link := range links {
		dest, err := fetch.Download(link, *outDir)
		if err != nil {
			log.Printf("Failed to download %s: %v", link, err)
			continue
		}
		log.Printf("Downloaded %s", dest)
		downloaded++
	}

	log.Printf("Done: %d/%d files", downloaded, len(links))
}
