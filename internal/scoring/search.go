package scoring

import (
	"math"

	"propscore/internal/geo"
	"propscore/internal/model"
)

// General search weights, summing to 100
const (
	WeightProximity = 30.0
	WeightType      = 25.0
	WeightSurface   = 15.0
	WeightRent      = 15.0
	WeightFeatures  = 15.0

	// PointsPerFeature is awarded for each requested amenity the listing has
	PointsPerFeature = 5.0
)

// DefaultRadiusKm applies when a search point comes without a usable radius
const DefaultRadiusKm = 10.0

// General search contribution names
const (
	CriterionProximity = "proximity"
	CriterionType      = "type"
	CriterionSurface   = "surface"
	CriterionRent      = "rent"
	CriterionFeatures  = "features"
)

// ScoreSearch scores a listing against general search criteria on a 0-100
// scale. A nil criteria scores every criterion as unconstrained.
func ScoreSearch(l model.Listing, c *model.Criteria) model.ScoreBreakdown {
	if c == nil {
		c = &model.Criteria{}
	}

	contributions := map[string]float64{
		CriterionProximity: proximityPoints(l, c),
		CriterionType:      typePoints(l, c),
		CriterionSurface:   WeightSurface * Range(l.SurfaceM2, c.SurfaceMin, c.SurfaceMax),
		CriterionRent:      WeightRent * Range(l.MonthlyRent, c.RentMin, c.RentMax),
		CriterionFeatures:  featurePoints(l, c),
	}

	return newBreakdown(contributions, SearchLabel)
}

// ProximityPoints decays linearly from WeightProximity at the search point
// to 0 at radiusKm and beyond.
func ProximityPoints(distanceKm, radiusKm float64) float64 {
	if radiusKm <= 0 || !isFinite(radiusKm) {
		radiusKm = DefaultRadiusKm
	}
	points := WeightProximity * (1 - distanceKm/radiusKm)
	if !isFinite(points) {
		return 0
	}
	return clamp(points, 0, WeightProximity)
}

func proximityPoints(l model.Listing, c *model.Criteria) float64 {
	if c.Center == nil {
		return WeightProximity
	}
	lat, lng, ok := l.Position()
	if !ok {
		return WeightProximity
	}
	if !geo.ValidCoordinates(lat, lng) || !geo.ValidCoordinates(c.Center.Lat, c.Center.Lng) {
		return 0
	}

	radius := DefaultRadiusKm
	if c.RadiusKm != nil {
		radius = *c.RadiusKm
	}
	return ProximityPoints(geo.DistanceKm(c.Center.Lat, c.Center.Lng, lat, lng), radius)
}

func typePoints(l model.Listing, c *model.Criteria) float64 {
	if len(c.Types) == 0 {
		return WeightType
	}
	for _, t := range c.Types {
		if t == l.PropertyType {
			return WeightType
		}
	}
	return 0
}

func featurePoints(l model.Listing, c *model.Criteria) float64 {
	if c.RequestedFeatures() == 0 {
		return WeightFeatures
	}

	var points float64
	if c.RequireAccessibility && l.Accessible {
		points += PointsPerFeature
	}
	if c.RequireParking && l.HasParking() {
		points += PointsPerFeature
	}
	if c.RequireAirConditioning && l.AirConditioning {
		points += PointsPerFeature
	}
	return math.Min(points, WeightFeatures)
}
