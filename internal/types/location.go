package types

// LocationInfo contains human-readable location metadata for a coordinate
type LocationInfo struct {
	Name      string `json:"locationName" example:"New York, United States"`
	LocalTime string `json:"localTime" example:"03:04 PM, Mon Jan 02"`
}
