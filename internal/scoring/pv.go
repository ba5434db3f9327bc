package scoring

import "propscore/internal/model"

// Photovoltaic suitability weights, summing to 100
const (
	WeightRoofSurface    = 30.0
	WeightParkingSurface = 20.0
	WeightOrientation    = MaxOrientationPoints
	WeightEnergyClass    = MaxEnergyClassPoints
	WeightLocation       = 10.0
)

// Surfaces earning full roof and parking credit, in m²
const (
	FullRoofSurfaceM2    = 1000.0
	FullParkingSurfaceM2 = 500.0
)

// Insolation interpolation across mainland France: full credit at the
// southern latitude, minimum credit at the northern one.
const (
	SouthLatitude         = 42.0
	NorthLatitude         = 51.0
	MaxLocationPoints     = WeightLocation
	MinLocationPoints     = 2.0
	UnknownLocationPoints = 5.0
)

// PV contribution names
const (
	CriterionRoofSurface    = "roofSurface"
	CriterionParkingSurface = "parkingSurface"
	CriterionOrientation    = "orientation"
	CriterionEnergyClass    = "energyClass"
	CriterionLocation       = "location"
)

// ScorePV infers the PV attributes of a listing and scores them
func ScorePV(l model.Listing) model.ScoreBreakdown {
	return ScorePVAttributes(InferPV(l))
}

// ScorePVAttributes scores resolved PV attributes on a 0-100 scale
func ScorePVAttributes(a PVAttributes) model.ScoreBreakdown {
	contributions := map[string]float64{
		CriterionRoofSurface:    surfacePoints(a.RoofSurfaceM2, FullRoofSurfaceM2, WeightRoofSurface),
		CriterionParkingSurface: surfacePoints(a.ParkingSurfaceM2, FullParkingSurfaceM2, WeightParkingSurface),
		CriterionOrientation:    OrientationPoints(a.Orientation),
		CriterionEnergyClass:    EnergyClassPoints(a.EnergyClass),
		CriterionLocation:       LocationPoints(a.Latitude),
	}

	return newBreakdown(contributions, PVLabel)
}

// LocationPoints interpolates insolation credit from latitude, clamped to
// [MinLocationPoints, MaxLocationPoints]. Unknown latitude gets the midpoint.
func LocationPoints(lat *float64) float64 {
	if lat == nil || !isFinite(*lat) {
		return UnknownLocationPoints
	}
	span := MaxLocationPoints - MinLocationPoints
	points := MaxLocationPoints - ((*lat-SouthLatitude)/(NorthLatitude-SouthLatitude))*span
	return clamp(points, MinLocationPoints, MaxLocationPoints)
}

// surfacePoints grows linearly with area up to weight at fullArea
func surfacePoints(area *float64, fullArea, weight float64) float64 {
	if area == nil {
		return 0
	}
	points := *area / fullArea * weight
	if !isFinite(points) {
		return 0
	}
	return clamp(points, 0, weight)
}
