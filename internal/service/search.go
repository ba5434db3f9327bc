package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"propscore/internal/geo"
	"propscore/internal/model"
	"propscore/internal/scoring"
)

// CandidateStore provides coarse-filtered candidate listings
type CandidateStore interface {
	ListCandidates(ctx context.Context, filter model.CandidateFilter) ([]model.Listing, error)
	// GetListing returns nil without error when the listing does not exist
	GetListing(ctx context.Context, id int64) (*model.Listing, error)
}

// SearchService handles search business logic
type SearchService struct {
	store   CandidateStore
	ranker  *Ranker
	metrics *Metrics
	logger  *slog.Logger
}

// NewSearchService creates a new search service. Metrics and logger are optional.
func NewSearchService(
	store CandidateStore,
	ranker *Ranker,
	metrics *Metrics,
	logger *slog.Logger,
) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{
		store:   store,
		ranker:  ranker,
		metrics: metrics,
		logger:  logger,
	}
}

// PVReport is the detailed photovoltaic evaluation of a single listing
type PVReport struct {
	Listing    model.Listing
	Attributes scoring.PVAttributes
	Breakdown  model.ScoreBreakdown
}

// Search ranks candidates by general search relevance
func (s *SearchService) Search(ctx context.Context, criteria *model.Criteria) (*model.RankedPage, error) {
	return s.run(ctx, ModeSearch, criteria)
}

// SearchPV ranks candidates by photovoltaic suitability
func (s *SearchService) SearchPV(ctx context.Context, criteria *model.Criteria) (*model.RankedPage, error) {
	return s.run(ctx, ModePV, criteria)
}

// ScoreListingPV evaluates one listing. Returns nil without error if the listing does not exist.
func (s *SearchService) ScoreListingPV(ctx context.Context, listingID int64) (*PVReport, error) {
	listing, err := s.store.GetListing(ctx, listingID)
	if err != nil {
		s.metrics.IncStoreErrors(ModePV)
		return nil, fmt.Errorf("failed to get listing %d: %w", listingID, err)
	}
	if listing == nil {
		return nil, nil
	}

	attrs := scoring.InferPV(*listing)
	return &PVReport{
		Listing:    *listing,
		Attributes: attrs,
		Breakdown:  scoring.ScorePVAttributes(attrs),
	}, nil
}

func (s *SearchService) run(ctx context.Context, mode Mode, criteria *model.Criteria) (*model.RankedPage, error) {
	startTime := time.Now()

	listings, err := s.store.ListCandidates(ctx, s.candidateFilter(criteria))
	if err != nil {
		s.metrics.IncStoreErrors(mode)
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	page := s.ranker.Rank(mode, listings, criteria)

	// The ranker scores at most MaxCandidates of what the store returned
	scored := len(listings)
	if limit := s.ranker.MaxCandidates(); scored > limit {
		scored = limit
	}

	took := time.Since(startTime)
	s.metrics.ObserveRank(mode, scored, len(page.Items), took.Seconds())
	s.logger.DebugContext(ctx, "ranked candidates",
		slog.String("mode", string(mode)),
		slog.Int("fetched", len(listings)),
		slog.Int("candidates", scored),
		slog.Int("total", page.Total),
		slog.Int("page", page.Page),
		slog.Int("items", len(page.Items)),
		slog.Int64("took_ms", took.Milliseconds()),
	)

	return page, nil
}

// candidateFilter derives the coarse store filter from criteria
func (s *SearchService) candidateFilter(criteria *model.Criteria) model.CandidateFilter {
	filter := model.CandidateFilter{Limit: s.ranker.MaxCandidates()}
	if criteria == nil {
		return filter
	}

	filter.Types = criteria.Types
	filter.City = criteria.City

	if criteria.Center != nil && geo.ValidCoordinates(criteria.Center.Lat, criteria.Center.Lng) {
		radius := scoring.DefaultRadiusKm
		if criteria.RadiusKm != nil && *criteria.RadiusKm > 0 {
			radius = *criteria.RadiusKm
		}
		box := geo.Box(*criteria.Center, radius)
		filter.Box = &box
	}

	return filter
}
