package dpll

import (
	"maps"
	"slices"

	"dpll/internal/cnf"
)

// Assignment maps variables to truth values. It is partial during search and
// total over the input formula's variables once a satisfying leaf is reached.
type Assignment map[int64]bool

func (a Assignment) clone() Assignment {
	return maps.Clone(a)
}

// Satisfies reports whether every clause of the formula contains at least one
// literal made true by the assignment. Unassigned variables satisfy nothing.
func (a Assignment) Satisfies(f cnf.Formula) bool {
	for _, clause := range f {
		satisfied := false
		for _, literal := range clause {
			value, assigned := a[abs(literal)]
			if assigned && value == (literal > 0) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// Literals returns the assignment in signed-literal form sorted by variable,
// the shape DIMACS solution lines use.
func (a Assignment) Literals() []int64 {
	variables := make([]int64, 0, len(a))
	for variable := range a {
		variables = append(variables, variable)
	}
	slices.Sort(variables)

	literals := make([]int64, 0, len(variables))
	for _, variable := range variables {
		if a[variable] {
			literals = append(literals, variable)
		} else {
			literals = append(literals, -variable)
		}
	}
	return literals
}

func abs(literal int64) int64 {
	if literal < 0 {
		return -literal
	}
	return literal
}
