package dpll

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"dpll/internal/cnf"
)

// eliminatePureLiterals assigns every pure literal true and drops the clauses
// it satisfies. A variable is pure when it occurs with a single polarity
// across the remaining clauses, so the step can only remove clauses and never
// produces a conflict. Pure variables are processed in ascending order to
// keep runs reproducible.
func (s *Solver) eliminatePureLiterals(formula cnf.Formula, assignment Assignment) cnf.Formula {
	positive := mapset.NewSet[int64]()
	negative := mapset.NewSet[int64]()

	for _, clause := range formula {
		for _, literal := range clause {
			if literal > 0 {
				positive.Add(literal)
			} else {
				negative.Add(-literal)
			}
		}
	}

	assign := func(pure []int64, value bool) {
		slices.Sort(pure)
		for _, variable := range pure {
			if _, assigned := assignment[variable]; assigned {
				continue
			}
			assignment[variable] = value
			s.stats.PureLiterals++

			literal := variable
			if !value {
				literal = -variable
			}
			formula = cnf.Simplify(formula, literal)
		}
	}

	assign(positive.Difference(negative).ToSlice(), true)
	assign(negative.Difference(positive).ToSlice(), false)

	return formula
}
