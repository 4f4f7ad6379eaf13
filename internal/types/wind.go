package types

// MpsToKph converts meters per second to kilometers per hour
const MpsToKph = 3.6

type WindSpeed struct {
	Mps float64
	Kph float64
}

// NewWindSpeedFromMps converts a possibly missing upstream reading.
// A missing reading becomes a zero speed rather than staying missing.
func NewWindSpeedFromMps(speedInMps *float64) WindSpeed {
	if speedInMps == nil {
		return WindSpeed{}
	}
	return WindSpeed{
		Mps: *speedInMps,
		Kph: *speedInMps * MpsToKph,
	}
}

// WindSeriesToKph converts every element of a daily wind series to km/h.
// The result has the same length as the input and no missing elements.
func WindSeriesToKph(speedsInMps []*float64) []*float64 {
	out := make([]*float64, len(speedsInMps))
	for i, v := range speedsInMps {
		kph := NewWindSpeedFromMps(v).Kph
		out[i] = &kph
	}
	return out
}
