package services

import "route-optimization-service/internal/domain"

// routeRecommendations turns distance, time and fuel cost thresholds into
// advisory hints. They never change the computed plan.
func routeRecommendations(t domain.RouteTotals, highFuelCost float64) []string {
	var recs []string

	switch {
	case t.DistanceKm > 500:
		recs = append(recs,
			"Long distance trip - consider overnight rest stops",
			"Plan for multiple fuel stops",
		)
	case t.DistanceKm > 200:
		recs = append(recs, "Medium distance trip - one fuel stop may be needed")
	}

	switch hours := t.TimeHours(); {
	case hours > 8:
		recs = append(recs, "Consider splitting journey over multiple days")
	case hours > 4:
		recs = append(recs, "Plan for rest breaks every 2 hours")
	}

	if t.FuelCost > highFuelCost {
		recs = append(recs, "High fuel cost - consider fuel-efficient driving techniques")
	}

	if len(recs) == 0 {
		recs = append(recs,
			"Maintain steady speed for better fuel efficiency",
			"Check weather conditions before departure",
			"Keep emergency contact numbers handy",
		)
	}

	return recs
}
