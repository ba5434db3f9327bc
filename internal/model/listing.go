package model

import (
	"time"
)

// PropertyType is the commercial category of a listing
type PropertyType string

const (
	PropertyTypeOffice     PropertyType = "bureau"
	PropertyTypeRetail     PropertyType = "commerce"
	PropertyTypeWarehouse  PropertyType = "entrepot"
	PropertyTypeIndustrial PropertyType = "local_activite"
	PropertyTypeLand       PropertyType = "terrain"
	PropertyTypeCoworking  PropertyType = "coworking"
)

// PropertyTypes lists every known property type
var PropertyTypes = []PropertyType{
	PropertyTypeOffice,
	PropertyTypeRetail,
	PropertyTypeWarehouse,
	PropertyTypeIndustrial,
	PropertyTypeLand,
	PropertyTypeCoworking,
}

// Orientation is the main roof orientation of a building.
// The zero value means the orientation is not known.
type Orientation string

const (
	OrientationUnknown   Orientation = ""
	OrientationSouth     Orientation = "sud"
	OrientationSouthEast Orientation = "sud-est"
	OrientationSouthWest Orientation = "sud-ouest"
	OrientationFlat      Orientation = "toit-plat"
	OrientationEast      Orientation = "est"
	OrientationWest      Orientation = "ouest"
	OrientationNorth     Orientation = "nord"
)

// Orientations lists every known orientation, unknown included
var Orientations = []Orientation{
	OrientationSouth,
	OrientationSouthEast,
	OrientationSouthWest,
	OrientationFlat,
	OrientationEast,
	OrientationWest,
	OrientationNorth,
	OrientationUnknown,
}

// EnergyClass is the French DPE energy performance class (A best, G worst).
// The zero value means the class is not known.
type EnergyClass string

const (
	EnergyClassUnknown EnergyClass = ""
	EnergyClassA       EnergyClass = "A"
	EnergyClassB       EnergyClass = "B"
	EnergyClassC       EnergyClass = "C"
	EnergyClassD       EnergyClass = "D"
	EnergyClassE       EnergyClass = "E"
	EnergyClassF       EnergyClass = "F"
	EnergyClassG       EnergyClass = "G"
)

// EnergyClasses lists every known class from most to least efficient
var EnergyClasses = []EnergyClass{
	EnergyClassA,
	EnergyClassB,
	EnergyClassC,
	EnergyClassD,
	EnergyClassE,
	EnergyClassF,
	EnergyClassG,
}

// Listing is the read-only projection of a commercial listing used at scoring time.
// Nil pointers mean the attribute is unknown, never zero.
type Listing struct {
	ID               int64        `json:"id"`
	Title            string       `json:"title"`
	City             string       `json:"city,omitempty"`
	PropertyType     PropertyType `json:"propertyType,omitempty"`
	Latitude         *float64     `json:"latitude,omitempty"`
	Longitude        *float64     `json:"longitude,omitempty"`
	SurfaceM2        *float64     `json:"surface,omitempty"`
	MonthlyRent      *float64     `json:"rent,omitempty"`
	RoofSurfaceM2    *float64     `json:"roofSurface,omitempty"`
	ParkingSurfaceM2 *float64     `json:"parkingSurface,omitempty"`
	ParkingSpots     *int         `json:"parkingSpots,omitempty"`
	RoofOrientation  Orientation  `json:"roofOrientation,omitempty"`
	EnergyClass      EnergyClass  `json:"energyClass,omitempty"`
	Accessible       bool         `json:"accessibility"`
	AirConditioning  bool         `json:"airConditioning"`
	CreatedAt        time.Time    `json:"createdAt"`
}

// Position returns the listing coordinates when both are known
func (l *Listing) Position() (lat, lng float64, ok bool) {
	if l.Latitude == nil || l.Longitude == nil {
		return 0, 0, false
	}
	return *l.Latitude, *l.Longitude, true
}

// HasParking reports whether the listing has at least one parking spot
func (l *Listing) HasParking() bool {
	return l.ParkingSpots != nil && *l.ParkingSpots >= 1
}

// ScoreBreakdown explains a score: the rounded, clamped total, its
// qualitative label and the raw points contributed by each criterion.
type ScoreBreakdown struct {
	Total         int                `json:"total"`
	Label         string             `json:"label"`
	Contributions map[string]float64 `json:"contributions"`
}

// ScoredListing pairs a listing with its score breakdown
type ScoredListing struct {
	Listing   Listing
	Breakdown ScoreBreakdown
}
