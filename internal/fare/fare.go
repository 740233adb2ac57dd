// Package fare estimates trip distance and fare from raw coordinates.
// It is a pure leaf package: no I/O, no state, deterministic output.
package fare

import "math"

const (
	// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
	EarthRadiusKm = 6371.0

	// RatePerKm is the flat fare rate in baht per kilometre. There is no
	// base fare, minimum fare or surge component.
	RatePerKm = 50
)

// Distance returns the great-circle distance in kilometres between two
// points, rounded to one decimal place (half up).
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	distance := EarthRadiusKm * c

	return math.Round(distance*10) / 10
}

// Fare returns the fare for a distance in whole currency units, rounded up.
func Fare(distanceKm float64) int {
	return int(math.Ceil(distanceKm * RatePerKm))
}

// Estimate computes the rounded distance and the fare derived from it.
// The fare is always computed from the rounded distance, not the raw one;
// reordering these two steps changes the result for some inputs.
func Estimate(lat1, lon1, lat2, lon2 float64) (distanceKm float64, fare int) {
	distanceKm = Distance(lat1, lon1, lat2, lon2)
	return distanceKm, Fare(distanceKm)
}

func toRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
