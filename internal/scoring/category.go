package scoring

import "propscore/internal/model"

// Category table maxima
const (
	MaxOrientationPoints = 25.0
	MaxEnergyClassPoints = 15.0
)

// Defaults for absent or unrecognized categories
const (
	UnknownOrientationPoints = 10.0
	UnknownEnergyClassPoints = 8.0
)

// OrientationPoints maps a roof orientation to its photovoltaic points.
// South-facing roofs score best; flat roofs can host tilted panels.
func OrientationPoints(o model.Orientation) float64 {
	switch o {
	case model.OrientationSouth:
		return 25
	case model.OrientationSouthEast, model.OrientationSouthWest:
		return 20
	case model.OrientationFlat:
		return 15
	case model.OrientationEast, model.OrientationWest, model.OrientationUnknown:
		return UnknownOrientationPoints
	case model.OrientationNorth:
		return 5
	default:
		return UnknownOrientationPoints
	}
}

// EnergyClassPoints maps an energy class to its photovoltaic points.
// The table is inverted: the less efficient the building, the more it
// gains from on-site production.
func EnergyClassPoints(c model.EnergyClass) float64 {
	switch c {
	case model.EnergyClassG:
		return 15
	case model.EnergyClassF:
		return 13
	case model.EnergyClassE:
		return 11
	case model.EnergyClassD:
		return 9
	case model.EnergyClassC:
		return 7
	case model.EnergyClassB:
		return 4
	case model.EnergyClassA:
		return 1
	default:
		return UnknownEnergyClassPoints
	}
}
