// Package fixture loads almanac documents from YAML into the seed list and
// mapping records that almanac.Build consumes.
//
// A document carries the seeds and one section per adjacent category pair,
// each section listing destination-start / source-start / length triples:
//
//	seeds: [79, 14, 55, 13]
//	maps:
//	  - source: seed
//	    destination: soil
//	    ranges:
//	      - [50, 98, 2]
//	      - [52, 50, 48]
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"almanac"
	"almanac/category"
)

// Document is the YAML form of an almanac.
type Document struct {
	Seeds []uint64  `yaml:"seeds"`
	Maps  []Section `yaml:"maps"`
}

// Section holds the rules for one adjacent category pair. Each range is the
// triple [destination start, source start, length].
type Section struct {
	Source      string     `yaml:"source"`
	Destination string     `yaml:"destination"`
	Ranges      [][]uint64 `yaml:"ranges"`
}

// Load reads and parses the almanac document at path.
func Load(path string) (seeds []uint64, mappings []almanac.Mapping, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read almanac document %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML almanac document and assembles its mapping records.
func Parse(data []byte) ([]uint64, []almanac.Mapping, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse almanac YAML: %w", err)
	}

	var mappings []almanac.Mapping

	for _, sec := range doc.Maps {
		src, err := category.Parse(sec.Source)
		if err != nil {
			return nil, nil, fmt.Errorf("section %s-to-%s: %w", sec.Source, sec.Destination, err)
		}

		dst, err := category.Parse(sec.Destination)
		if err != nil {
			return nil, nil, fmt.Errorf("section %s-to-%s: %w", sec.Source, sec.Destination, err)
		}

		for _, r := range sec.Ranges {
			if len(r) != 3 {
				return nil, nil, fmt.Errorf("section %s-to-%s: range needs 3 numbers, got %d", sec.Source, sec.Destination, len(r))
			}

			mappings = append(mappings, almanac.Mapping{
				Source:           src,
				SourceStart:      r[1],
				Length:           r[2],
				Destination:      dst,
				DestinationStart: r[0],
			})
		}
	}

	return doc.Seeds, mappings, nil
}
