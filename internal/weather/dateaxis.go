package weather

import (
	"fmt"
	"time"
)

// DefaultLookbackYears is the number of past years compared by default
const DefaultLookbackYears = 20

// BuildDateAxis returns "YYYY-MM-DD" strings for month/day in each of the
// lookbackYears full years before now, oldest first. Month and day are not
// checked against the calendar, so Feb 29 is produced for every year.
func BuildDateAxis(month, day, lookbackYears int, now time.Time) []string {
	if lookbackYears <= 0 {
		return []string{}
	}

	endYear := now.Year() - 1
	startYear := endYear - (lookbackYears - 1)

	dates := make([]string, 0, lookbackYears)
	for year := startYear; year <= endYear; year++ {
		dates = append(dates, fmt.Sprintf("%d-%02d-%02d", year, month, day))
	}
	return dates
}
