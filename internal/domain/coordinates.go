package domain

import "fmt"

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// SentinelCoordinates stands in for a location the gazetteer could not resolve.
var SentinelCoordinates = Coordinates{}

// IsSentinel reports whether c is exactly the (0,0) placeholder.
func (c Coordinates) IsSentinel() bool { return c.Lat == 0 && c.Lon == 0 }

// Validate checks that latitude and longitude are within range.
func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}
