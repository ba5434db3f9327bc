package scoring

import (
	"math"
	"testing"

	"propscore/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestScorePV_JustBelowExcellent(t *testing.T) {
	l := model.Listing{
		RoofOrientation: model.OrientationSouth,
		EnergyClass:     model.EnergyClassG,
		RoofSurfaceM2:   f(1000),
		Latitude:        f(43.5),
	}

	b := ScorePV(l)

	assert.Equal(t, 30.0, b.Contributions[CriterionRoofSurface])
	assert.Equal(t, 0.0, b.Contributions[CriterionParkingSurface])
	assert.Equal(t, 25.0, b.Contributions[CriterionOrientation])
	assert.Equal(t, 15.0, b.Contributions[CriterionEnergyClass])
	assert.InDelta(t, 8.667, b.Contributions[CriterionLocation], 0.001)
	assert.Equal(t, 79, b.Total)
	assert.Equal(t, LabelGood, b.Label)
}

func TestScorePV_DerivedSurfaces(t *testing.T) {
	l := model.Listing{
		SurfaceM2:    f(500),
		ParkingSpots: i(20),
	}

	b := ScorePV(l)

	// roof 350 m² -> 10.5 pts, parking 250 m² -> 10 pts
	assert.InDelta(t, 10.5, b.Contributions[CriterionRoofSurface], 1e-9)
	assert.InDelta(t, 10, b.Contributions[CriterionParkingSurface], 1e-9)
	assert.Equal(t, UnknownOrientationPoints, b.Contributions[CriterionOrientation])
	assert.Equal(t, UnknownEnergyClassPoints, b.Contributions[CriterionEnergyClass])
	assert.Equal(t, UnknownLocationPoints, b.Contributions[CriterionLocation])
	// 10.5 + 10 + 10 + 8 + 5 = 43.5
	assert.Equal(t, 44, b.Total)
	assert.Equal(t, LabelModerate, b.Label)
}

func TestScorePV_CapsSurfaces(t *testing.T) {
	l := model.Listing{
		RoofSurfaceM2:    f(25000),
		ParkingSurfaceM2: f(4000),
		RoofOrientation:  model.OrientationSouth,
		EnergyClass:      model.EnergyClassG,
		Latitude:         f(40),
	}

	b := ScorePV(l)

	assert.Equal(t, WeightRoofSurface, b.Contributions[CriterionRoofSurface])
	assert.Equal(t, WeightParkingSurface, b.Contributions[CriterionParkingSurface])
	assert.Equal(t, MaxLocationPoints, b.Contributions[CriterionLocation])
	assert.Equal(t, 100, b.Total)
	assert.Equal(t, LabelExcellent, b.Label)
}

func TestScorePV_NoData(t *testing.T) {
	b := ScorePV(model.Listing{})

	// 0 + 0 + 10 + 8 + 5
	assert.Equal(t, 23, b.Total)
	assert.Equal(t, LabelWeak, b.Label)
}

func TestScorePV_NonFiniteSurfacesGetNoCredit(t *testing.T) {
	l := model.Listing{
		RoofSurfaceM2:    f(math.NaN()),
		ParkingSurfaceM2: f(math.Inf(1)),
	}

	b := ScorePV(l)

	assert.Equal(t, 0.0, b.Contributions[CriterionRoofSurface])
	assert.Equal(t, 0.0, b.Contributions[CriterionParkingSurface])
}

func TestLocationPoints(t *testing.T) {
	tests := []struct {
		name string
		lat  *float64
		want float64
	}{
		{"unknown", nil, 5},
		{"south bound", f(42), 10},
		{"north bound", f(51), 2},
		{"midpoint", f(46.5), 6},
		{"south of range is clamped", f(35), 10},
		{"north of range is clamped", f(60), 2},
		{"NaN", f(math.NaN()), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LocationPoints(tt.lat), 1e-9)
		})
	}
}

func TestScorePV_SubScoresWithinWeights(t *testing.T) {
	weights := map[string]float64{
		CriterionRoofSurface:    WeightRoofSurface,
		CriterionParkingSurface: WeightParkingSurface,
		CriterionOrientation:    WeightOrientation,
		CriterionEnergyClass:    WeightEnergyClass,
		CriterionLocation:       WeightLocation,
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	assert.Equal(t, 100.0, total)

	for _, o := range model.Orientations {
		for _, e := range append(model.EnergyClasses, model.EnergyClassUnknown) {
			for _, surface := range []*float64{nil, f(0), f(-50), f(800), f(5000)} {
				b := ScorePV(model.Listing{
					SurfaceM2:       surface,
					ParkingSpots:    i(7),
					RoofOrientation: o,
					EnergyClass:     e,
					Latitude:        f(48),
				})

				var sum float64
				for name, points := range b.Contributions {
					assert.GreaterOrEqual(t, points, 0.0, name)
					assert.LessOrEqual(t, points, weights[name], name)
					sum += points
				}
				assert.Equal(t, int(math.Round(sum)), b.Total)
			}
		}
	}
}
