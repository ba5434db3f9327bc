package model

// SortKey selects the value candidates are ordered by
type SortKey string

const (
	SortByScore          SortKey = "score"
	SortByID             SortKey = "id"
	SortBySurface        SortKey = "surface"
	SortByRent           SortKey = "rent"
	SortByRoofSurface    SortKey = "roofSurface"
	SortByParkingSurface SortKey = "parkingSurface"
	SortByParkingSpots   SortKey = "parkingSpots"
	SortByTitle          SortKey = "title"
	SortByCity           SortKey = "city"
	SortByType           SortKey = "type"
)

// SortKeys lists every supported sort key
var SortKeys = []SortKey{
	SortByScore,
	SortByID,
	SortBySurface,
	SortByRent,
	SortByRoofSurface,
	SortByParkingSurface,
	SortByParkingSpots,
	SortByTitle,
	SortByCity,
	SortByType,
}

// SortOrder is the sort direction
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Point is a geographic position in decimal degrees
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Criteria is the caller's validated search target. Every field except
// pagination is optional; nil means "no constraint".
type Criteria struct {
	Types    []PropertyType
	City     *string
	Center   *Point
	RadiusKm *float64

	SurfaceMin *float64
	SurfaceMax *float64
	RentMin    *float64
	RentMax    *float64

	RequireAccessibility   bool
	RequireParking         bool
	RequireAirConditioning bool

	// MinScore drops candidates scoring below it before ranking
	MinScore *int

	SortBy SortKey
	Order  SortOrder
	Page   int
	Limit  int
}

// RequestedFeatures returns how many amenities the caller asked for
func (c *Criteria) RequestedFeatures() int {
	n := 0
	for _, requested := range []bool{c.RequireAccessibility, c.RequireParking, c.RequireAirConditioning} {
		if requested {
			n++
		}
	}
	return n
}

// BoundingBox is a lat/lng rectangle used for coarse pre-filtering
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// CandidateFilter holds the coarse, non-scored filters applied by the store
type CandidateFilter struct {
	Types []PropertyType
	City  *string
	Box   *BoundingBox
	Limit int
}

// RankedPage is one page of scored and sorted candidates
type RankedPage struct {
	Items []ScoredListing
	Total int
	Page  int
	Limit int
}

// SearchItem is a listing serialized with its general search score
type SearchItem struct {
	Listing
	Score          int                `json:"score"`
	ScoreLabel     string             `json:"scoreLabel"`
	ScoreBreakdown map[string]float64 `json:"scoreBreakdown"`
}

// SearchResponse represents a general search result page
type SearchResponse struct {
	Items []SearchItem `json:"items"`
	Total int          `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
	Took  int64        `json:"took_ms"`
}

// PVItem is a listing serialized with its photovoltaic suitability score
type PVItem struct {
	Listing
	PVScore     int                `json:"pvScore"`
	PVLabel     string             `json:"pvLabel"`
	PVBreakdown map[string]float64 `json:"pvBreakdown"`
}

// PVSearchResponse represents a photovoltaic search result page
type PVSearchResponse struct {
	Items []PVItem `json:"items"`
	Total int      `json:"total"`
	Page  int      `json:"page"`
	Limit int      `json:"limit"`
	Took  int64    `json:"took_ms"`
}

// PVScoreResponse is the detailed PV report for a single listing
type PVScoreResponse struct {
	PVItem
	RoofSurfaceInferred    bool `json:"roofSurfaceInferred"`
	ParkingSurfaceInferred bool `json:"parkingSurfaceInferred"`
}
