package domain

// NamedLocation is a free-text location after gazetteer resolution.
// Unresolved locations keep the caller's name and carry SentinelCoordinates.
type NamedLocation struct {
	Name     string
	Coords   Coordinates
	Resolved bool
}

// UnresolvedLocation builds the placeholder returned for unknown names.
func UnresolvedLocation(name string) NamedLocation {
	return NamedLocation{Name: name, Coords: SentinelCoordinates}
}
