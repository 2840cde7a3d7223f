// Package gazetteer resolves free-text place names to coordinates using a
// fixed lookup table. It stands in for a geocoding service and never errors
// on lookup: an unknown name is a normal outcome.
package gazetteer

import (
	"errors"
	"fmt"
	"route-optimization-service/internal/domain"
	"strings"
)

// Place is a single gazetteer entry.
type Place struct {
	Name string  `json:"name" yaml:"name"`
	Lat  float64 `json:"lat" yaml:"lat"`
	Lon  float64 `json:"lon" yaml:"lon"`
}

type entry struct {
	key    string
	place  Place
	coords domain.Coordinates
}

// Gazetteer is immutable after construction and safe for concurrent use.
type Gazetteer struct {
	entries []entry
}

// DefaultPlaces is the built-in table of major Indian cities.
func DefaultPlaces() []Place {
	return []Place{
		{Name: "Mumbai", Lat: 19.0760, Lon: 72.8777},
		{Name: "Delhi", Lat: 28.7041, Lon: 77.1025},
		{Name: "Bangalore", Lat: 12.9716, Lon: 77.5946},
		{Name: "Chennai", Lat: 13.0827, Lon: 80.2707},
		{Name: "Kolkata", Lat: 22.5726, Lon: 88.3639},
		{Name: "Pune", Lat: 18.5204, Lon: 73.8567},
		{Name: "Hyderabad", Lat: 17.3850, Lon: 78.4867},
		{Name: "Ahmedabad", Lat: 23.0225, Lon: 72.5714},
		{Name: "Jaipur", Lat: 26.9124, Lon: 75.7873},
		{Name: "Surat", Lat: 21.1702, Lon: 72.8311},
	}
}

// Default returns a gazetteer over DefaultPlaces.
func Default() *Gazetteer {
	g, err := New(DefaultPlaces())
	if err != nil {
		panic(fmt.Sprintf("gazetteer: invalid default table: %v", err))
	}
	return g
}

// New builds a gazetteer. Names are matched case-insensitively; a later entry
// with the same name replaces an earlier one but keeps its table position.
func New(places []Place) (*Gazetteer, error) {
	g := &Gazetteer{entries: make([]entry, 0, len(places))}
	index := make(map[string]int, len(places))

	for i, p := range places {
		key := normalize(p.Name)
		if key == "" {
			return nil, fmt.Errorf("new gazetteer: place at index %d: name must not be empty", i)
		}

		coords := domain.Coordinates{Lat: p.Lat, Lon: p.Lon}
		if err := coords.Validate(); err != nil {
			return nil, fmt.Errorf("new gazetteer: place %q: %w", p.Name, err)
		}
		if coords.IsSentinel() {
			return nil, fmt.Errorf("new gazetteer: place %q: (0,0) is reserved for unresolved locations", p.Name)
		}

		e := entry{key: key, place: p, coords: coords}
		if pos, ok := index[key]; ok {
			g.entries[pos] = e
			continue
		}
		index[key] = len(g.entries)
		g.entries = append(g.entries, e)
	}

	if len(g.entries) == 0 {
		return nil, errors.New("new gazetteer: at least one place is required")
	}

	return g, nil
}

// With returns a new gazetteer with extra places layered over g.
func (g *Gazetteer) With(extra []Place) (*Gazetteer, error) {
	if len(extra) == 0 {
		return g, nil
	}
	return New(append(g.Places(), extra...))
}

// Resolve matches name against the table in order. A match is a table key
// contained in the input or the input contained in a table key.
func (g *Gazetteer) Resolve(name string) (domain.NamedLocation, bool) {
	q := normalize(name)
	if q == "" {
		return domain.UnresolvedLocation(name), false
	}

	for _, e := range g.entries {
		if strings.Contains(q, e.key) || strings.Contains(e.key, q) {
			return domain.NamedLocation{Name: name, Coords: e.coords, Resolved: true}, true
		}
	}

	return domain.UnresolvedLocation(name), false
}

// Places returns a copy of the table in match order.
func (g *Gazetteer) Places() []Place {
	out := make([]Place, 0, len(g.entries))
	for _, e := range g.entries {
		out = append(out, e.place)
	}
	return out
}

func (g *Gazetteer) Len() int { return len(g.entries) }

// normalize collapses whitespace and lowercases for matching.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
