package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"propscore/internal/model"
	"propscore/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	listings   []model.Listing
	err        error
	lastFilter model.CandidateFilter
}

func (s *stubStore) ListCandidates(_ context.Context, filter model.CandidateFilter) ([]model.Listing, error) {
	s.lastFilter = filter
	return s.listings, s.err
}

func (s *stubStore) GetListing(_ context.Context, id int64) (*model.Listing, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, l := range s.listings {
		if l.ID == id {
			listing := l
			return &listing, nil
		}
	}
	return nil, nil
}

func f(v float64) *float64 { return &v }

func newTestRouter(store *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewSearchService(store, service.NewRanker(0), nil, nil)
	h := NewSearchHandler(svc, 20, 50, 10)

	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/listings/search", h.Search)
	api.GET("/pv/search", h.SearchPV)
	api.GET("/listings/:id/pv-score", h.GetPVScore)
	return router
}

func get(t *testing.T, router *gin.Engine, target string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	if out != nil && rr.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out))
	}
	return rr
}

func TestSearch_Success(t *testing.T) {
	store := &stubStore{listings: []model.Listing{
		{ID: 1, Title: "Bureaux Part-Dieu", PropertyType: model.PropertyTypeOffice, SurfaceM2: f(450), MonthlyRent: f(1500)},
		{ID: 2, Title: "Boutique", PropertyType: model.PropertyTypeRetail, SurfaceM2: f(80)},
	}}
	router := newTestRouter(store)

	var resp model.SearchResponse
	rr := get(t, router, "/api/v1/listings/search?types=bureau&surfaceMin=400&surfaceMax=500&city=Lyon", &resp)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(1), resp.Items[0].ID)
	assert.Equal(t, 100, resp.Items[0].Score)
	assert.Equal(t, "Excellent", resp.Items[0].ScoreLabel)
	assert.Contains(t, resp.Items[0].ScoreBreakdown, "proximity")

	require.NotNil(t, store.lastFilter.City)
	assert.Equal(t, "Lyon", *store.lastFilter.City)
	assert.Equal(t, []model.PropertyType{model.PropertyTypeOffice}, store.lastFilter.Types)
}

func TestSearch_ResponseShape(t *testing.T) {
	router := newTestRouter(&stubStore{listings: []model.Listing{{ID: 3, Title: "Lot"}}})

	rr := get(t, router, "/api/v1/listings/search", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	for _, key := range []string{"items", "total", "page", "limit", "took_ms"} {
		assert.Contains(t, raw, key)
	}
	item := raw["items"].([]interface{})[0].(map[string]interface{})
	for _, key := range []string{"id", "title", "score", "scoreLabel", "scoreBreakdown"} {
		assert.Contains(t, item, key)
	}
}

func TestSearch_EmptyPage(t *testing.T) {
	router := newTestRouter(&stubStore{listings: []model.Listing{{ID: 1}, {ID: 2}}})

	var resp model.SearchResponse
	rr := get(t, router, "/api/v1/listings/search?page=5&limit=2", &resp)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, resp.Total)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
}

func TestSearch_LimitCapped(t *testing.T) {
	router := newTestRouter(&stubStore{})

	var resp model.SearchResponse
	rr := get(t, router, "/api/v1/listings/search?limit=500", &resp)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 50, resp.Limit)
}

func TestSearch_DefaultRadiusAppliedToBox(t *testing.T) {
	store := &stubStore{}
	router := newTestRouter(store)

	rr := get(t, router, "/api/v1/listings/search?lat=45.76&lng=4.84", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, store.lastFilter.Box)
	assert.InDelta(t, 45.76-10/111.195, store.lastFilter.Box.MinLat, 0.001)
}

func TestSearch_BadRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"unknown type", "types=castle"},
		{"malformed surface", "surfaceMin=big"},
		{"infinite rent", "rentMax=Inf"},
		{"lat without lng", "lat=45.7"},
		{"latitude out of range", "lat=95&lng=4"},
		{"non-positive radius", "lat=45&lng=4&radius=0"},
		{"bad boolean", "parking=maybe"},
		{"min score too high", "minScore=101"},
		{"unknown sort", "sort=colour"},
		{"bad order", "order=sideways"},
		{"page zero", "page=0"},
		{"negative limit", "limit=-3"},
	}

	router := newTestRouter(&stubStore{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := get(t, router, "/api/v1/listings/search?"+tt.query, nil)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), "error")
		})
	}
}

func TestSearch_StoreFailure(t *testing.T) {
	router := newTestRouter(&stubStore{err: errors.New("pq: connection refused")})

	rr := get(t, router, "/api/v1/listings/search", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "pq:")
}

func TestSearchPV_Success(t *testing.T) {
	router := newTestRouter(&stubStore{listings: []model.Listing{
		{ID: 1, RoofOrientation: model.OrientationNorth},
		{ID: 2, RoofOrientation: model.OrientationSouth, RoofSurfaceM2: f(1000), EnergyClass: model.EnergyClassG, Latitude: f(43.5)},
	}})

	var resp model.PVSearchResponse
	rr := get(t, router, "/api/v1/pv/search?minScore=30", &resp)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(2), resp.Items[0].ID)
	assert.Equal(t, 79, resp.Items[0].PVScore)
	assert.Equal(t, "Bon", resp.Items[0].PVLabel)
	assert.Contains(t, resp.Items[0].PVBreakdown, "orientation")
}

func TestGetPVScore(t *testing.T) {
	router := newTestRouter(&stubStore{listings: []model.Listing{
		{ID: 9, SurfaceM2: f(1000), RoofOrientation: model.OrientationFlat},
	}})

	var resp model.PVScoreResponse
	rr := get(t, router, "/api/v1/listings/9/pv-score", &resp)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(9), resp.ID)
	assert.True(t, resp.RoofSurfaceInferred)
	assert.False(t, resp.ParkingSurfaceInferred)
	assert.InDelta(t, 21.0, resp.PVBreakdown["roofSurface"], 1e-9)

	assert.Equal(t, http.StatusNotFound, get(t, router, "/api/v1/listings/404/pv-score", nil).Code)
	assert.Equal(t, http.StatusBadRequest, get(t, router, "/api/v1/listings/abc/pv-score", nil).Code)
}

func TestSearch_BadRequestMessages(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"lat=45.7", "lat and lng must be provided together"},
		{"lat=45&lng=200", "coordinates out of range"},
		{"lat=45&lng=4&radius=-1", "radius must be positive"},
		{"minScore=abc", "minScore must be an integer between 0 and 100"},
		{"order=up", "order must be asc or desc"},
		{"page=x", "page must be a positive integer"},
		{"limit=0", "limit must be a positive integer"},
		{"surfaceMax=NaN", "surfaceMax must be a finite number"},
	}

	router := newTestRouter(&stubStore{})
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rr := get(t, router, "/api/v1/listings/search?"+tt.query, nil)
			require.Equal(t, http.StatusBadRequest, rr.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, "Invalid request: "+tt.want, body["error"])
		})
	}
}
