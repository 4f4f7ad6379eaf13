// Package timezone derives IANA zone names from coordinates offline.
package timezone

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// ErrNotFound is returned for coordinates outside every known zone polygon
var ErrNotFound = errors.New("timezone not found")

// Finder looks up the IANA timezone name for a coordinate pair
type Finder interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

type service struct {
	finder tzf.F
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewFinder returns the process-wide finder.
// tzf loads its polygon data into memory, so it is built once.
func NewFinder() (Finder, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns names like "America/New_York" or "Europe/London"
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("%w: lat=%f, lon=%f", ErrNotFound, latitude, longitude)
	}
	return name, nil
}
