package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/cognicore/arff/pkg/arff"
	"github.com/cognicore/arff/pkg/arff/config"
)

func main() {
	var (
		filePath   = flag.String("file", "", "ARFF file to summarize (required)")
		configPath = flag.String("config", "", "YAML parse options (optional)")
		classFirst = flag.Bool("first", false, "Class attribute is the first declared")
		className  = flag.String("class", "", "Class attribute name (overrides -first)")
	)
	flag.Parse()

	if *filePath == "" {
		log.Fatal("--file required")
	}

	opts := arff.DefaultOptions()
	if *configPath != "" {
		p, err := config.LoadParse(*configPath)
		if err != nil {
			log.Fatal("Failed to load config:", err)
		}
		opts, err = p.Options()
		if err != nil {
			log.Fatal("Invalid config:", err)
		}
	}
	if *classFirst {
		opts.Class = arff.ClassFirst
	}
	if *className != "" {
		opts.Class = arff.ClassNamed
		opts.ClassName = *className
	}

	s, err := arff.Summarize(*filePath, opts)
	if err != nil {
		log.Fatal("Failed to summarize:", err)
	}

	fmt.Printf("%s\n", *filePath)
	fmt.Printf("  samples:  %d\n", s.NumSamples)
	fmt.Printf("  features: %d\n", s.NumFeatures)
	fmt.Printf("  class:    %s (%s), %d values: %s\n",
		s.ClassName, s.ClassType, s.NumClasses, strings.Join(s.ClassLabels, ", "))
	for _, f := range s.Features {
		fmt.Printf("  %-24s %s\n", f.Name, f.Type)
	}
}
