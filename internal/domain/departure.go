package domain

import (
	"fmt"
	"time"
)

type TrafficLevel string

const (
	TrafficLight    TrafficLevel = "Light"
	TrafficModerate TrafficLevel = "Moderate"
	TrafficHeavy    TrafficLevel = "Heavy"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time expressed in minutes after midnight.
type TimeOfDay int

// ParseTimeOfDay parses a 24-hour "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// TimeOfDayAfter returns the wall-clock time reached d after midnight plus
// the number of whole days that elapsed.
func TimeOfDayAfter(d time.Duration) (TimeOfDay, int) {
	mins := int(d / time.Minute)
	return TimeOfDay(mins % minutesPerDay), mins / minutesPerDay
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Represents a candidate departure hour scored against the traffic model.
type DepartureOption struct {
	DepartureHour    int
	ArrivalTime      TimeOfDay
	ArrivalDayOffset int
	TravelTimeHours  float64
	Traffic          TrafficLevel
	Score            float64
}

func (o DepartureOption) DepartureTime() TimeOfDay { return TimeOfDay(o.DepartureHour * 60) }
