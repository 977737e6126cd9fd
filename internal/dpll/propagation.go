package dpll

import (
	"github.com/samber/lo"

	"dpll/internal/cnf"
)

// propagateUnits repeatedly forces the literal of the first unit clause in
// clause order, extending the assignment in place, until no unit clause
// remains. It returns false when simplification produces an empty clause,
// which ends propagation immediately.
func (s *Solver) propagateUnits(formula cnf.Formula, assignment Assignment) (cnf.Formula, bool) {
	for {
		unit, found := lo.Find(formula, func(clause cnf.Clause) bool { return len(clause) == 1 })
		if !found {
			return formula, true
		}

		literal := unit[0]
		assignment[abs(literal)] = literal > 0
		s.stats.UnitPropagations++

		formula = cnf.Simplify(formula, literal)
		if formula.HasEmptyClause() {
			return nil, false
		}
	}
}
