package types

import (
	"fmt"
	"math"
)

type Coords struct {
	Latitude  float64
	Longitude float64
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Label is the last-resort display name for a coordinate pair
func (c Coords) Label() string {
	return fmt.Sprintf("Location (%.2f, %.2f)", c.Latitude, c.Longitude)
}

// Valid reports whether both components are finite numbers. Ranges are left to the providers.
func (c Coords) Valid() bool {
	return !math.IsNaN(c.Latitude) && !math.IsInf(c.Latitude, 0) &&
		!math.IsNaN(c.Longitude) && !math.IsInf(c.Longitude, 0)
}
