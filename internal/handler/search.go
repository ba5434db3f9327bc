package handler

import (
	"net/http"
	"strconv"
	"time"

	"propscore/internal/model"
	"propscore/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService *service.SearchService
	parser        criteriaParser
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *service.SearchService, defaultLimit, maxLimit int, defaultRadiusKm float64) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		parser: criteriaParser{
			defaultLimit:    defaultLimit,
			maxLimit:        maxLimit,
			defaultRadiusKm: defaultRadiusKm,
		},
	}
}

// Search handles GET /api/v1/listings/search
func (h *SearchHandler) Search(c *gin.Context) {
	startTime := time.Now()

	criteria, err := h.parser.parse(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	page, err := h.searchService.Search(c.Request.Context(), criteria)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	items := make([]model.SearchItem, len(page.Items))
	for i, scored := range page.Items {
		items[i] = model.SearchItem{
			Listing:        scored.Listing,
			Score:          scored.Breakdown.Total,
			ScoreLabel:     scored.Breakdown.Label,
			ScoreBreakdown: scored.Breakdown.Contributions,
		}
	}

	c.JSON(http.StatusOK, model.SearchResponse{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
		Took:  time.Since(startTime).Milliseconds(),
	})
}

// SearchPV handles GET /api/v1/pv/search
func (h *SearchHandler) SearchPV(c *gin.Context) {
	startTime := time.Now()

	criteria, err := h.parser.parse(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	page, err := h.searchService.SearchPV(c.Request.Context(), criteria)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	items := make([]model.PVItem, len(page.Items))
	for i, scored := range page.Items {
		items[i] = pvItem(scored.Listing, scored.Breakdown)
	}

	c.JSON(http.StatusOK, model.PVSearchResponse{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
		Took:  time.Since(startTime).Milliseconds(),
	})
}

// GetPVScore handles GET /api/v1/listings/:id/pv-score
func (h *SearchHandler) GetPVScore(c *gin.Context) {
	listingIDStr := c.Param("id")
	listingID, err := strconv.ParseInt(listingIDStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

	report, err := h.searchService.ScoreListingPV(c.Request.Context(), listingID)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to score listing"})
		return
	}

	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, model.PVScoreResponse{
		PVItem:                 pvItem(report.Listing, report.Breakdown),
		RoofSurfaceInferred:    report.Attributes.RoofSurfaceInferred,
		ParkingSurfaceInferred: report.Attributes.ParkingSurfaceInferred,
	})
}

func pvItem(listing model.Listing, breakdown model.ScoreBreakdown) model.PVItem {
	return model.PVItem{
		Listing:     listing,
		PVScore:     breakdown.Total,
		PVLabel:     breakdown.Label,
		PVBreakdown: breakdown.Contributions,
	}
}
