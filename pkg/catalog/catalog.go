package catalog

import (
	"fmt"
	"strings"
)

// Catalog holds the fixed location set and the current search term, and
// derives the filtered view. The location set is fixed at construction;
// only the search term mutates.
type Catalog struct {
	locations []Location
	byID      map[string]int
	term      string
}

// New builds a catalog from the given locations, preserving their order.
// Returns an error if any location id is empty or duplicated.
func New(locations []Location) (*Catalog, error) {
	c := &Catalog{
		locations: make([]Location, len(locations)),
		byID:      make(map[string]int, len(locations)),
	}
	copy(c.locations, locations)

	for i := range c.locations {
		loc := &c.locations[i]
		if loc.ID == "" {
			return nil, fmt.Errorf("location %d (%s) has empty id", i, loc.Name)
		}
		if _, exists := c.byID[loc.ID]; exists {
			return nil, fmt.Errorf("duplicate location id: %s", loc.ID)
		}
		loc.Normalize()
		c.byID[loc.ID] = i
	}
	return c, nil
}

// SetSearchTerm replaces the current search term verbatim. No trimming or
// normalization happens here; matching handles case folding.
func (c *Catalog) SetSearchTerm(term string) {
	c.term = term
}

// SearchTerm returns the current search term.
func (c *Catalog) SearchTerm() string {
	return c.term
}

// Len returns the size of the full location set.
func (c *Catalog) Len() int {
	return len(c.locations)
}

// Locations returns the full location set in insertion order, ignoring the
// search term.
func (c *Catalog) Locations() []Location {
	out := make([]Location, len(c.locations))
	copy(out, c.locations)
	return out
}

// Get returns the location with the given id, or false if it is unknown.
func (c *Catalog) Get(id string) (Location, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Location{}, false
	}
	return c.locations[i], true
}

// FilteredLocations returns, in original order, every location matching the
// current search term. An empty term matches everything. Matching is
// case-insensitive substring containment against name, any mineral, or type.
func (c *Catalog) FilteredLocations() []Location {
	out := make([]Location, 0, len(c.locations))
	for _, loc := range c.locations {
		if Matches(loc, c.term) {
			out = append(out, loc)
		}
	}
	return out
}

// Matches reports whether loc matches term. Both sides are lower-cased per
// comparison so that callers never have to pre-fold anything.
func Matches(loc Location, term string) bool {
	if term == "" {
		return true
	}
	if containsFold(loc.Name, term) {
		return true
	}
	for _, m := range loc.Minerals {
		if containsFold(m, term) {
			return true
		}
	}
	return containsFold(loc.Type, term)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
