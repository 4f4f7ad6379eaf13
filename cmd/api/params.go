package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"weatherwise/internal/types"
	"weatherwise/internal/weather"
)

// Query parameters are parsed by hand: binding would turn an empty value into 0.

func floatParam(c *gin.Context, name string) (float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", weather.ErrInvalidParameter, name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", weather.ErrInvalidParameter, name, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be finite", weather.ErrInvalidParameter, name)
	}
	return v, nil
}

func intParam(c *gin.Context, name string) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", weather.ErrInvalidParameter, name)
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", weather.ErrInvalidParameter, name, err)
	}
	return v, nil
}

func coordsParams(c *gin.Context) (types.Coords, error) {
	lat, err := floatParam(c, "lat")
	if err != nil {
		return types.Coords{}, err
	}
	lon, err := floatParam(c, "lon")
	if err != nil {
		return types.Coords{}, err
	}
	return types.NewCoords(lat, lon), nil
}

// dateParams parses month and day. Calendar legality is left to the archive provider.
func dateParams(c *gin.Context) (month, day int, err error) {
	if month, err = intParam(c, "month"); err != nil {
		return 0, 0, err
	}
	if day, err = intParam(c, "day"); err != nil {
		return 0, 0, err
	}
	return month, day, nil
}
