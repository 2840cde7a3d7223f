package services

import (
	"route-optimization-service/internal/domain"
	"sort"
	"time"
)

// Candidate departure hours are whole hours in [firstDepartureHour, lastDepartureHour].
const (
	firstDepartureHour = 6
	lastDepartureHour  = 22

	peakHourPenalty       = 30.0
	unsociableHourPenalty = 20.0
	travelHourPenalty     = 5.0
	baseDepartureScore    = 100.0
)

// IsPeakHour reports whether hour falls in the morning or evening rush.
func IsPeakHour(hour int) bool {
	return (hour >= 7 && hour <= 10) || (hour >= 17 && hour <= 20)
}

func isModerateHour(hour int) bool {
	return (hour >= 11 && hour <= 16) || (hour >= 21 && hour <= 23)
}

// TrafficLevelAt classifies the traffic expected when departing at hour.
func TrafficLevelAt(hour int) domain.TrafficLevel {
	switch {
	case IsPeakHour(hour):
		return domain.TrafficHeavy
	case isModerateHour(hour):
		return domain.TrafficModerate
	default:
		return domain.TrafficLight
	}
}

// TrafficMultiplier scales free-flow travel time for a departure at hour.
func TrafficMultiplier(hour int) float64 {
	switch TrafficLevelAt(hour) {
	case domain.TrafficHeavy:
		return 1.5
	case domain.TrafficModerate:
		return 1.0
	default:
		return 0.8
	}
}

// DepartureScore rates a departure; higher is better and the result is not
// clamped, so long trips can score below zero.
func DepartureScore(hour int, travelHours float64) float64 {
	score := baseDepartureScore
	if IsPeakHour(hour) {
		score -= peakHourPenalty
	}
	if hour < firstDepartureHour || hour > lastDepartureHour {
		score -= unsociableHourPenalty
	}
	score -= travelHours * travelHourPenalty
	return score
}

// RankDepartures scores every candidate hour for a trip whose free-flow
// duration is baseHours and returns them best first. Equal scores keep
// ascending hour order.
func RankDepartures(baseHours float64) []domain.DepartureOption {
	options := make([]domain.DepartureOption, 0, lastDepartureHour-firstDepartureHour+1)

	for h := firstDepartureHour; h <= lastDepartureHour; h++ {
		adjusted := baseHours * TrafficMultiplier(h)
		arrival, days := domain.TimeOfDayAfter(
			time.Duration(h)*time.Hour + time.Duration(adjusted*float64(time.Hour)),
		)

		options = append(options, domain.DepartureOption{
			DepartureHour:    h,
			ArrivalTime:      arrival,
			ArrivalDayOffset: days,
			TravelTimeHours:  adjusted,
			Traffic:          TrafficLevelAt(h),
			Score:            DepartureScore(h, adjusted),
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})

	return options
}

// RankByPreferredArrival reorders options by how close their arrival
// time-of-day is to preferred, as a same-day linear difference in minutes,
// and returns at most limit of them. The input slice is not modified.
func RankByPreferredArrival(
	options []domain.DepartureOption,
	preferred domain.TimeOfDay,
	limit int,
) []domain.DepartureOption {
	out := make([]domain.DepartureOption, len(options))
	copy(out, options)

	sort.SliceStable(out, func(i, j int) bool {
		return arrivalGap(out[i], preferred) < arrivalGap(out[j], preferred)
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func arrivalGap(o domain.DepartureOption, preferred domain.TimeOfDay) int {
	gap := int(o.ArrivalTime) - int(preferred)
	if gap < 0 {
		return -gap
	}
	return gap
}
