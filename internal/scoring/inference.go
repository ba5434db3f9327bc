package scoring

import (
	"propscore/internal/geo"
	"propscore/internal/model"
)

// Derivation ratios used when explicit PV surfaces are missing
const (
	// RoofToSurfaceRatio estimates usable roof area from floor surface
	RoofToSurfaceRatio = 0.7
	// SurfacePerParkingSpot is the ground area of one parking spot in m²
	SurfacePerParkingSpot = 12.5
)

// PVAttributes are the fully resolved inputs of the photovoltaic scorer.
// Nil surfaces mean no data was available, even after derivation.
type PVAttributes struct {
	RoofSurfaceM2          *float64
	RoofSurfaceInferred    bool
	ParkingSurfaceM2       *float64
	ParkingSurfaceInferred bool
	Orientation            model.Orientation
	EnergyClass            model.EnergyClass
	Latitude               *float64
}

// InferPV resolves PV attributes from a listing, deriving roof area from
// the floor surface and parking area from the spot count when the explicit
// values are unknown. Latitudes outside [-90, 90] are discarded.
func InferPV(l model.Listing) PVAttributes {
	attrs := PVAttributes{
		Orientation: l.RoofOrientation,
		EnergyClass: l.EnergyClass,
	}

	switch {
	case l.RoofSurfaceM2 != nil:
		attrs.RoofSurfaceM2 = float64Ptr(*l.RoofSurfaceM2)
	case l.SurfaceM2 != nil:
		attrs.RoofSurfaceM2 = float64Ptr(*l.SurfaceM2 * RoofToSurfaceRatio)
		attrs.RoofSurfaceInferred = true
	}

	switch {
	case l.ParkingSurfaceM2 != nil:
		attrs.ParkingSurfaceM2 = float64Ptr(*l.ParkingSurfaceM2)
	case l.ParkingSpots != nil:
		attrs.ParkingSurfaceM2 = float64Ptr(float64(*l.ParkingSpots) * SurfacePerParkingSpot)
		attrs.ParkingSurfaceInferred = true
	}

	if l.Latitude != nil && geo.ValidLatitude(*l.Latitude) {
		attrs.Latitude = float64Ptr(*l.Latitude)
	}

	return attrs
}

func float64Ptr(v float64) *float64 {
	return &v
}
