// Package geo provides great-circle distance and coordinate helpers.
package geo

import (
	"math"

	"propscore/internal/model"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometers between two
// points given in decimal degrees, using the haversine formula.
// Callers validate coordinates first; invalid input yields NaN or garbage.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Distance returns the distance in kilometers between two points
func Distance(a, b model.Point) float64 {
	return DistanceKm(a.Lat, a.Lng, b.Lat, b.Lng)
}

// ValidCoordinates reports whether lat/lng are finite and within range
func ValidCoordinates(lat, lng float64) bool {
	return ValidLatitude(lat) && isFinite(lng) && lng >= -180 && lng <= 180
}

// ValidLatitude reports whether lat is finite and within [-90, 90]
func ValidLatitude(lat float64) bool {
	return isFinite(lat) && lat >= -90 && lat <= 90
}

// Box returns the lat/lng rectangle enclosing a circle of radiusKm around
// center. Longitude bounds widen towards the poles and are clamped to
// [-180, 180]; the box is used only for coarse SQL filtering.
func Box(center model.Point, radiusKm float64) model.BoundingBox {
	latDelta := radiusKm / EarthRadiusKm * 180 / math.Pi

	lngDelta := 180.0
	if cos := math.Cos(toRadians(center.Lat)); cos > 1e-9 {
		lngDelta = math.Min(180, latDelta/cos)
	}

	return model.BoundingBox{
		MinLat: math.Max(-90, center.Lat-latDelta),
		MaxLat: math.Min(90, center.Lat+latDelta),
		MinLng: math.Max(-180, center.Lng-lngDelta),
		MaxLng: math.Min(180, center.Lng+lngDelta),
	}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
