package main

// @title WeatherWise API
// @version 1.0
// @description Current conditions and same-date historical statistics for any coordinate.
// @description Weather data from Open-Meteo, place names from OpenStreetMap Nominatim.

// @contact.name WeatherWise

// @license.name MIT

// @BasePath /
// @schemes http https
