package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"weatherwise/internal/weather"
)

const (
	msgInvalidCoordinates = "Invalid coordinates."
	msgInvalidParameters  = "Invalid parameters."
	msgNoHistoricalData   = "No historical data found for this date range."
	msgHistoricalFailed   = "Failed to fetch historical data from the API."
	msgInternal           = "Internal server error."
	currentErrorPrefix    = "API Error: "
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid coordinates."`
}

// HistoricalStatsResponse wraps the per-metric historical details
type HistoricalStatsResponse struct {
	HistoricalDetails weather.HistoricalDetails `json:"historicalDetails"`
}

// handleCurrentWeather godoc
// @Summary Get current weather
// @Description Returns current temperature, precipitation and wind speed (km/h) with the place name and local time
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude" example(40.7128)
// @Param lon query number true "Longitude" example(-74.0060)
// @Success 200 {object} weather.CurrentWeather
// @Failure 400 {object} ErrorResponse "Invalid coordinates"
// @Failure 500 {object} ErrorResponse "Upstream failure"
// @Router /api/current-weather [get]
func (app *App) handleCurrentWeather(c *gin.Context) {
	coords, err := coordsParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidCoordinates})
		return
	}

	current, err := app.weatherService.GetCurrent(c.Request.Context(), coords)
	if err != nil {
		if errors.Is(err, weather.ErrInvalidParameter) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidCoordinates})
			return
		}

		app.logger.Error("failed to get current weather",
			"request_id", c.GetString(requestIDKey),
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: currentErrorPrefix + errorDetail(err)})
		return
	}

	c.JSON(http.StatusOK, current)
}

// handleHistoricalStats godoc
// @Summary Get historical statistics for a calendar date
// @Description Compares the given month/day over the past 20 years: daily max temperature, precipitation sum and max wind speed, each with mean, median, min and max
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude" example(40.7128)
// @Param lon query number true "Longitude" example(-74.0060)
// @Param month query int true "Month (1-12)" example(7)
// @Param day query int true "Day of month" example(4)
// @Success 200 {object} HistoricalStatsResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "No historical data"
// @Failure 500 {object} ErrorResponse "Upstream failure"
// @Router /api/historical-stats [get]
func (app *App) handleHistoricalStats(c *gin.Context) {
	coords, err := coordsParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidParameters})
		return
	}
	month, day, err := dateParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidParameters})
		return
	}

	details, err := app.weatherService.GetHistorical(c.Request.Context(), coords, month, day)
	if err != nil {
		switch {
		case errors.Is(err, weather.ErrInvalidParameter):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidParameters})
		case errors.Is(err, weather.ErrNoHistoricalData):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: msgNoHistoricalData})
		default:
			app.logger.Error("failed to get historical stats",
				"request_id", c.GetString(requestIDKey),
				"latitude", coords.Latitude,
				"longitude", coords.Longitude,
				"month", month,
				"day", day,
				"error", err,
			)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgHistoricalFailed})
		}
		return
	}

	c.JSON(http.StatusOK, HistoricalStatsResponse{HistoricalDetails: *details})
}

// errorDetail prefers the provider's own message over our wrapping
func errorDetail(err error) string {
	var upErr *weather.UpstreamError
	if errors.As(err, &upErr) {
		return upErr.Error()
	}
	return err.Error()
}
