package service

import (
	"math"
	"sort"

	"propscore/internal/model"
	"propscore/internal/scoring"
)

// Mode identifies which composite scorer ranks the candidates
type Mode string

const (
	ModeSearch Mode = "search"
	ModePV     Mode = "pv"
)

// DefaultMaxCandidates bounds the candidates scored per request
const DefaultMaxCandidates = 200

// DefaultPageLimit is used when criteria carry no page size
const DefaultPageLimit = 20

// Ranker scores, filters, sorts and paginates candidate listings.
// It holds no mutable state and is safe for concurrent use.
type Ranker struct {
	maxCandidates int
}

// NewRanker creates a new ranker scoring at most maxCandidates listings
func NewRanker(maxCandidates int) *Ranker {
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}
	return &Ranker{
		maxCandidates: maxCandidates,
	}
}

// MaxCandidates returns the candidate cap applied before scoring
func (r *Ranker) MaxCandidates() int {
	return r.maxCandidates
}

// RankSearch ranks listings by general search relevance
func (r *Ranker) RankSearch(listings []model.Listing, criteria *model.Criteria) *model.RankedPage {
	return r.rank(listings, criteria, func(l model.Listing, c *model.Criteria) model.ScoreBreakdown {
		return scoring.ScoreSearch(l, c)
	})
}

// RankPV ranks listings by photovoltaic suitability
func (r *Ranker) RankPV(listings []model.Listing, criteria *model.Criteria) *model.RankedPage {
	return r.rank(listings, criteria, func(l model.Listing, _ *model.Criteria) model.ScoreBreakdown {
		return scoring.ScorePV(l)
	})
}

// Rank dispatches to the scorer matching mode
func (r *Ranker) Rank(mode Mode, listings []model.Listing, criteria *model.Criteria) *model.RankedPage {
	if mode == ModePV {
		return r.RankPV(listings, criteria)
	}
	return r.RankSearch(listings, criteria)
}

type scoreFunc func(model.Listing, *model.Criteria) model.ScoreBreakdown

func (r *Ranker) rank(listings []model.Listing, criteria *model.Criteria, score scoreFunc) *model.RankedPage {
	if criteria == nil {
		criteria = &model.Criteria{Page: 1, Limit: DefaultPageLimit}
	}
	if len(listings) > r.maxCandidates {
		listings = listings[:r.maxCandidates]
	}

	scored := make([]model.ScoredListing, 0, len(listings))
	for _, listing := range listings {
		breakdown := score(listing, criteria)
		if criteria.MinScore != nil && breakdown.Total < *criteria.MinScore {
			continue
		}
		scored = append(scored, model.ScoredListing{
			Listing:   listing,
			Breakdown: breakdown,
		})
	}

	SortScored(scored, criteria.SortBy, criteria.Order)

	return &model.RankedPage{
		Items: Paginate(scored, criteria.Page, criteria.Limit),
		Total: len(scored),
		Page:  criteria.Page,
		Limit: criteria.Limit,
	}
}

// SortScored stably sorts scored listings by key. An empty order sorts
// scores descending and attributes ascending; unknown keys sort by score.
// Missing numeric attributes compare as 0, missing strings as "".
func SortScored(items []model.ScoredListing, key model.SortKey, order model.SortOrder) {
	if order == "" {
		order = model.SortAsc
		if key == model.SortByScore || key == "" {
			order = model.SortDesc
		}
	}
	desc := order == model.SortDesc

	if textKey, ok := stringKey(key); ok {
		sort.SliceStable(items, func(i, j int) bool {
			a, b := textKey(&items[i]), textKey(&items[j])
			if desc {
				return a > b
			}
			return a < b
		})
		return
	}

	numKey := numericKey(key)
	sort.SliceStable(items, func(i, j int) bool {
		a, b := numKey(&items[i]), numKey(&items[j])
		if desc {
			return a > b
		}
		return a < b
	})
}

func numericKey(key model.SortKey) func(*model.ScoredListing) float64 {
	switch key {
	case model.SortByID:
		return func(s *model.ScoredListing) float64 { return float64(s.Listing.ID) }
	case model.SortBySurface:
		return func(s *model.ScoredListing) float64 { return valueOrZero(s.Listing.SurfaceM2) }
	case model.SortByRent:
		return func(s *model.ScoredListing) float64 { return valueOrZero(s.Listing.MonthlyRent) }
	case model.SortByRoofSurface:
		return func(s *model.ScoredListing) float64 { return valueOrZero(s.Listing.RoofSurfaceM2) }
	case model.SortByParkingSurface:
		return func(s *model.ScoredListing) float64 { return valueOrZero(s.Listing.ParkingSurfaceM2) }
	case model.SortByParkingSpots:
		return func(s *model.ScoredListing) float64 {
			if s.Listing.ParkingSpots == nil {
				return 0
			}
			return float64(*s.Listing.ParkingSpots)
		}
	default:
		return func(s *model.ScoredListing) float64 { return float64(s.Breakdown.Total) }
	}
}

func stringKey(key model.SortKey) (func(*model.ScoredListing) string, bool) {
	switch key {
	case model.SortByTitle:
		return func(s *model.ScoredListing) string { return s.Listing.Title }, true
	case model.SortByCity:
		return func(s *model.ScoredListing) string { return s.Listing.City }, true
	case model.SortByType:
		return func(s *model.ScoredListing) string { return string(s.Listing.PropertyType) }, true
	default:
		return nil, false
	}
}

// valueOrZero treats unknown and NaN values as 0 so the ordering stays total
func valueOrZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) {
		return 0
	}
	return *v
}
