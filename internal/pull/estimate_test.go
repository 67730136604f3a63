package pull

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magforce/internal/grades"
)

func TestEstimateReferenceScenario(t *testing.T) {
	// 20×10 mm N52: the documented reference magnet.
	result, err := Estimate(Spec{DiameterMM: 20, HeightMM: 10, Grade: "N52"})
	require.NoError(t, err)

	assert.InDelta(t, 696.9, result.ForceN, 1.0)
	assert.InDelta(t, 71.1, result.ForceKg, 0.2)
}

func TestEstimateKilogramsAreNewtonsOverGravity(t *testing.T) {
	specs := []Spec{
		{DiameterMM: 5, HeightMM: 2, Grade: "N35"},
		{DiameterMM: 20, HeightMM: 10, Grade: "N52"},
		{DiameterMM: 60, HeightMM: 30, Grade: "N55"},
	}
	for _, spec := range specs {
		result, err := Estimate(spec)
		require.NoError(t, err)
		assert.Equal(t, result.ForceN/9.81, result.ForceKg, "spec %+v", spec)
	}
}

func TestEstimateUnknownGradePropagates(t *testing.T) {
	_, err := Estimate(Spec{DiameterMM: 10, HeightMM: 5, Grade: "Z99"})
	require.Error(t, err)

	var unknownErr *grades.UnknownGradeError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "Z99", unknownErr.Grade)
}

func TestEstimateDiameterMonotonicity(t *testing.T) {
	previous := 0.0
	for _, diameter := range []float64{1, 2, 5, 10, 20, 50, 100} {
		result, err := Estimate(Spec{DiameterMM: diameter, HeightMM: 10, Grade: "N42"})
		require.NoError(t, err)
		assert.Greater(t, result.ForceN, previous, "diameter %v", diameter)
		previous = result.ForceN
	}
}

func TestEstimateHeightHasNoEffect(t *testing.T) {
	// Height enters the report but not the formula; the 0.9 derating
	// stands in for gap and thickness effects. Must hold exactly.
	base, err := Estimate(Spec{DiameterMM: 20, HeightMM: 1, Grade: "N52"})
	require.NoError(t, err)

	for _, height := range []float64{0.5, 2, 10, 100, 10000} {
		result, err := Estimate(Spec{DiameterMM: 20, HeightMM: height, Grade: "N52"})
		require.NoError(t, err)
		assert.Equal(t, base.ForceN, result.ForceN, "height %v", height)
		assert.Equal(t, base.ForceKg, result.ForceKg, "height %v", height)
	}
}

func TestEstimateGradeOrdering(t *testing.T) {
	// Grade labels sort in ascending Br order, so force must strictly
	// increase along the table.
	previous := 0.0
	for _, grade := range grades.List() {
		result, err := Estimate(Spec{DiameterMM: 20, HeightMM: 10, Grade: grade})
		require.NoError(t, err)
		assert.Greater(t, result.ForceN, previous, "grade %s", grade)
		previous = result.ForceN
	}
}

func TestEstimateIdempotent(t *testing.T) {
	spec := Spec{DiameterMM: 12.5, HeightMM: 3.2, Grade: "N48"}
	first, err := Estimate(spec)
	require.NoError(t, err)
	second, err := Estimate(spec)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
