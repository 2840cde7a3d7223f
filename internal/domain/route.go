package domain

// Represents one origin->destination leg of a planned route.
// Segments are computed per call and never cached.
type RouteSegment struct {
	From        NamedLocation
	To          NamedLocation
	DistanceKm  float64
	TimeMinutes float64
	FuelCost    float64
	TollCost    float64
}

// Cost of the segment excluding driver time.
func (s RouteSegment) TotalCost() float64 { return s.FuelCost + s.TollCost }

// Aggregate metrics of a RoutePlan.
// Driver cost only exists at this level; segments do not carry it.
type RouteTotals struct {
	DistanceKm       float64
	TimeMinutes      float64
	FuelCost         float64
	TollCost         float64
	DriverCost       float64
	FuelNeededLiters float64
}

func (t RouteTotals) TimeHours() float64 { return t.TimeMinutes / 60 }

func (t RouteTotals) TotalCost() float64 { return t.FuelCost + t.TollCost + t.DriverCost }

// Represents an ordered, costed route.
// A RoutePlan describes the visiting order of Stops and the segments between
// consecutive stops. It is immutable planning data and contains no side effects.
type RoutePlan struct {
	Stops    []NamedLocation
	Segments []RouteSegment
	Totals   RouteTotals
}

// UnresolvedStops returns the names of stops the gazetteer could not match.
func (p RoutePlan) UnresolvedStops() []string {
	var out []string
	for _, s := range p.Stops {
		if !s.Resolved {
			out = append(out, s.Name)
		}
	}
	return out
}

// StopNames returns stop names in visiting order.
func (p RoutePlan) StopNames() []string {
	out := make([]string, 0, len(p.Stops))
	for _, s := range p.Stops {
		out = append(out, s.Name)
	}
	return out
}
