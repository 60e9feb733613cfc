// Package geo provides great-circle distance math for annotating donor
// notifications. Radius-based donor filtering is intentionally not done here.
package geo

import "math"

const earthRadiusKM = 6371

// DistanceKM returns the haversine distance in kilometers between two
// latitude/longitude pairs expressed in degrees.
func DistanceKM(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKM * c
}
