package category

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Category

var ErrUnknownCategory = errors.New("unknown category name")

// Category is one stage of the almanac translation chain. The declaration
// order is the chain order: every category translates into the one declared
// after it, and Location is terminal.
type Category int

const (
	Seed Category = iota
	Soil
	Fertilizer
	Water
	Light
	Temperature
	Humidity
	Location

	// Total is the number of chain stages defined
	Total = int(iota)
)

// Next returns the chain successor of c. ok is false at Location, which has
// none, and for values outside the declared range.
func (c Category) Next() (next Category, ok bool) {
	if !c.IsValid() || c == Location {
		return c, false
	}

	return c + 1, true
}

func (c Category) IsValid() bool {
	return c >= Seed && c <= Location
}

// Parse resolves the lowercase stage name used in almanac documents
// ("seed", "soil", ...) to its Category.
func Parse(name string) (Category, error) {
	for c := Seed; c.IsValid(); c++ {
		if strings.ToLower(c.String()) == name {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}
