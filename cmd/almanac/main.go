// Package main runs the almanac resolver against an almanac document and
// reports both lowest-location answers with wall-clock timing.
//
// By default the embedded example document is used; pass the path of a
// YAML almanac document to resolve that instead.
package main

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"almanac"
	"almanac/internal/fixture"
)

//go:embed example.yaml
var exampleDoc []byte

func main() {
	seeds, mappings, err := load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "almanac:", err)
		os.Exit(1)
	}

	model, err := almanac.Build(seeds, mappings)
	if err != nil {
		fmt.Fprintln(os.Stderr, "almanac:", err)
		os.Exit(1)
	}

	report("seeds as points", model.LowestLocationForPoints)
	report("seeds as ranges", model.LowestLocationForRanges)
}

func load(args []string) ([]uint64, []almanac.Mapping, error) {
	if len(args) == 0 {
		return fixture.Parse(exampleDoc)
	}

	return fixture.Load(args[0])
}

func report(label string, query func() (uint64, bool)) {
	start := time.Now()

	v, ok := query()
	if !ok {
		fmt.Printf("lowest location (%s): no seeds\n", label)
		return
	}

	fmt.Printf("lowest location (%s): %d in %v\n", label, v, time.Since(start))
}
