package utils

import "math"

// earthRadiusKm is the mean sphere radius used by the haversine formula.
const earthRadiusKm = 6371.0

// CalculateDistance returns the great-circle distance in kilometers between
// two coordinates given in degrees. Malformed coordinates (NaN, Inf, or out
// of range) yield +Inf so downstream filters treat them as infinitely far
// instead of failing.
func CalculateDistance(lat1, lng1, lat2, lng2 float64) float64 {
	if !validCoordinate(lat1, lng1) || !validCoordinate(lat2, lng2) {
		return math.Inf(1)
	}

	rlat1 := lat1 * math.Pi / 180
	rlng1 := lng1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlng2 := lng2 * math.Pi / 180

	dlat := rlat2 - rlat1
	dlng := rlng2 - rlng1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlng/2)*math.Sin(dlng/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return c * earthRadiusKm
}

func validCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
