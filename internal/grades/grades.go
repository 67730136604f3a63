// Package grades holds the neodymium grade table consumed by the
// pull-force estimator: a fixed mapping from grade label (N35..N55) to
// residual flux density Br in tesla.
package grades

import (
	"fmt"
	"sort"
)

// Br values approximate manufacturer-published residual flux densities.
// The table is initialized once and never mutated.
var table = map[string]float64{
	"N35": 1.23,
	"N38": 1.26,
	"N40": 1.29,
	"N42": 1.32,
	"N45": 1.35,
	"N48": 1.38,
	"N50": 1.43,
	"N52": 1.48,
	"N55": 1.50,
}

// UnknownGradeError reports a grade label missing from the table.
type UnknownGradeError struct {
	Grade string
}

func (e *UnknownGradeError) Error() string {
	return fmt.Sprintf("unknown magnet grade %q", e.Grade)
}

// Lookup returns the residual flux density Br (tesla) for a grade label.
// Labels are case-sensitive; callers normalize user input before lookup.
func Lookup(grade string) (float64, error) {
	br, ok := table[grade]
	if !ok {
		return 0, &UnknownGradeError{Grade: grade}
	}
	return br, nil
}

// List returns all known grade labels in ascending lexicographic order.
func List() []string {
	labels := make([]string, 0, len(table))
	for g := range table {
		labels = append(labels, g)
	}
	sort.Strings(labels)
	return labels
}
