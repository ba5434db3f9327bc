package handler

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"propscore/internal/geo"
	"propscore/internal/model"
	"propscore/internal/utils"

	"github.com/gin-gonic/gin"
)

// criteriaParser turns query parameters into validated search criteria
type criteriaParser struct {
	defaultLimit    int
	maxLimit        int
	defaultRadiusKm float64
}

// parse reads the search query string. Errors are safe to return to the client.
func (p criteriaParser) parse(c *gin.Context) (*model.Criteria, error) {
	criteria := &model.Criteria{
		Page:  1,
		Limit: p.defaultLimit,
	}

	if raw := c.Query("types"); raw != "" {
		types, bad, ok := utils.ParsePropertyTypes(raw)
		if !ok {
			return nil, fmt.Errorf("unknown property type %q", bad)
		}
		criteria.Types = types
	}
	if city := strings.TrimSpace(c.Query("city")); city != "" {
		criteria.City = &city
	}

	if err := p.parseLocation(c, criteria); err != nil {
		return nil, err
	}

	var err error
	if criteria.SurfaceMin, err = optionalFloat(c, "surfaceMin"); err != nil {
		return nil, err
	}
	if criteria.SurfaceMax, err = optionalFloat(c, "surfaceMax"); err != nil {
		return nil, err
	}
	if criteria.RentMin, err = optionalFloat(c, "rentMin"); err != nil {
		return nil, err
	}
	if criteria.RentMax, err = optionalFloat(c, "rentMax"); err != nil {
		return nil, err
	}

	if criteria.RequireAccessibility, err = optionalBool(c, "accessibility"); err != nil {
		return nil, err
	}
	if criteria.RequireParking, err = optionalBool(c, "parking"); err != nil {
		return nil, err
	}
	if criteria.RequireAirConditioning, err = optionalBool(c, "airConditioning"); err != nil {
		return nil, err
	}

	if raw, ok := c.GetQuery("minScore"); ok {
		minScore, err := strconv.Atoi(raw)
		if err != nil || minScore < 0 || minScore > 100 {
			return nil, errors.New("minScore must be an integer between 0 and 100")
		}
		criteria.MinScore = &minScore
	}

	if err := p.parseOrdering(c, criteria); err != nil {
		return nil, err
	}
	return criteria, nil
}

func (p criteriaParser) parseLocation(c *gin.Context, criteria *model.Criteria) error {
	lat, err := optionalFloat(c, "lat")
	if err != nil {
		return err
	}
	lng, err := optionalFloat(c, "lng")
	if err != nil {
		return err
	}
	if (lat == nil) != (lng == nil) {
		return errors.New("lat and lng must be provided together")
	}
	if lat == nil {
		return nil
	}
	if !geo.ValidCoordinates(*lat, *lng) {
		return errors.New("coordinates out of range")
	}
	criteria.Center = &model.Point{Lat: *lat, Lng: *lng}

	radius, err := optionalFloat(c, "radius")
	if err != nil {
		return err
	}
	if radius == nil {
		r := p.defaultRadiusKm
		radius = &r
	} else if *radius <= 0 {
		return errors.New("radius must be positive")
	}
	criteria.RadiusKm = radius
	return nil
}

func (p criteriaParser) parseOrdering(c *gin.Context, criteria *model.Criteria) error {
	if raw := c.Query("sort"); raw != "" {
		key, ok := parseSortKey(raw)
		if !ok {
			return fmt.Errorf("unknown sort key %q", raw)
		}
		criteria.SortBy = key
	}
	switch order := strings.ToLower(c.Query("order")); order {
	case "":
	case string(model.SortAsc), string(model.SortDesc):
		criteria.Order = model.SortOrder(order)
	default:
		return errors.New("order must be asc or desc")
	}

	if raw, ok := c.GetQuery("page"); ok {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return errors.New("page must be a positive integer")
		}
		criteria.Page = page
	}
	if raw, ok := c.GetQuery("limit"); ok {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return errors.New("limit must be a positive integer")
		}
		criteria.Limit = limit
	}
	// Validate and cap limits
	if criteria.Limit > p.maxLimit {
		criteria.Limit = p.maxLimit
	}
	return nil
}

func parseSortKey(raw string) (model.SortKey, bool) {
	for _, key := range model.SortKeys {
		if strings.EqualFold(raw, string(key)) {
			return key, true
		}
	}
	return "", false
}

func optionalFloat(c *gin.Context, name string) (*float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%s must be a finite number", name)
	}
	return &v, nil
}

func optionalBool(c *gin.Context, name string) (bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean", name)
	}
	return v, nil
}
