package domain

import "fmt"

type WarningCode string

const (
	WarningUnresolvedLocation      WarningCode = "unresolved_location"
	WarningUnparsablePreferredTime WarningCode = "unparsable_preferred_time"
)

// Warning is a non-fatal condition attached to an otherwise successful result.
type Warning struct {
	Code    WarningCode
	Subject string
	Message string
}

func UnresolvedLocationWarning(name string) Warning {
	return Warning{
		Code:    WarningUnresolvedLocation,
		Subject: name,
		Message: fmt.Sprintf("location %q not found; distance estimates involving it are unreliable", name),
	}
}

func UnparsablePreferredTimeWarning(value string) Warning {
	return Warning{
		Code:    WarningUnparsablePreferredTime,
		Subject: value,
		Message: fmt.Sprintf("preferred arrival time %q is not HH:MM; options ranked by score instead", value),
	}
}
