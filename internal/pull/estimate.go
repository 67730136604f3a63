// Package pull estimates the contact pull force of a cylindrical
// neodymium magnet against a flat mild-steel surface using a simplified
// closed-form magnetic-circuit approximation.
package pull

import (
	"math"

	"magforce/internal/grades"
)

const (
	// Permeability constant of the simplified circuit model (T·m/A).
	mu0 = 4e-7

	// Fixed derating from residual to working flux density. It absorbs
	// gap and thickness effects, which is why height never enters the
	// formula.
	derating = 0.9

	// Newtons per kilogram-force.
	gravity = 9.81
)

// Spec describes one cylindrical magnet to estimate.
type Spec struct {
	DiameterMM float64
	HeightMM   float64
	Grade      string
}

// Result is the estimated pull force in both customary units.
type Result struct {
	ForceKg float64
	ForceN  float64
}

// Estimate computes the pull force for a magnet in direct contact with a
// flat steel surface. Callers must ensure DiameterMM and HeightMM are
// positive; an unknown grade propagates the grade table's
// *grades.UnknownGradeError unchanged.
//
// The function is pure: identical specs yield bit-identical results.
func Estimate(spec Spec) (Result, error) {
	br, err := grades.Lookup(spec.Grade)
	if err != nil {
		return Result{}, err
	}

	d := spec.DiameterMM / 1000
	area := math.Pi * (d / 2) * (d / 2)

	b := br * derating
	forceN := (b * b * area) / (2 * mu0)

	return Result{
		ForceKg: forceN / gravity,
		ForceN:  forceN,
	}, nil
}
