package dpll

import (
	"dpll/internal/cnf"
)

// Solver decides satisfiability of CNF formulas with the classic DPLL
// procedure: unit propagation and pure-literal elimination followed by
// chronological backtracking over a branch variable.
//
// A Solver is not safe for concurrent use; concurrent Solve calls require
// separate instances.
type Solver struct {
	stats Statistics
}

func New() *Solver {
	return &Solver{}
}

// Solve decides the formula and, when satisfiable, returns a satisfying
// assignment covering every variable of the input: variables the search never
// had to constrain are reported false. The caller's formula is never mutated;
// the search works on simplified copies.
//
// The only error is malformed input (a zero literal), detected before the
// search starts. An unsatisfiable formula is a regular (false, nil, nil)
// result, not an error.
func (s *Solver) Solve(formula cnf.Formula) (bool, Assignment, error) {
	if err := formula.Validate(); err != nil {
		return false, nil, err
	}

	variables := formula.Variables()
	s.stats = Statistics{
		Variables: len(variables),
		Clauses:   len(formula),
	}

	satisfiable, assignment := s.dpll(formula.Clone(), Assignment{})
	if !satisfiable {
		return false, nil, nil
	}

	// Variables untouched by the search are don't-cares; default them to
	// false so the assignment is total over the input.
	for _, variable := range variables {
		if _, assigned := assignment[variable]; !assigned {
			assignment[variable] = false
		}
	}
	return true, assignment, nil
}

// Statistics returns the counters of the most recent Solve call.
func (s *Solver) Statistics() Statistics {
	return s.stats
}

func (s *Solver) dpll(formula cnf.Formula, assignment Assignment) (bool, Assignment) {
	if len(formula) == 0 {
		return true, assignment
	}
	if formula.HasEmptyClause() {
		return false, nil
	}

	formula, ok := s.propagateUnits(formula, assignment)
	if !ok {
		return false, nil
	}
	if len(formula) == 0 {
		return true, assignment
	}

	formula = s.eliminatePureLiterals(formula, assignment)
	if len(formula) == 0 {
		return true, assignment
	}

	variable := chooseVariable(formula)

	s.stats.Decisions++
	trueBranch := assignment.clone()
	trueBranch[variable] = true
	if satisfiable, leaf := s.dpll(cnf.Simplify(formula, variable), trueBranch); satisfiable {
		return true, leaf
	}

	s.stats.Backtracks++
	falseBranch := assignment.clone()
	falseBranch[variable] = false
	return s.dpll(cnf.Simplify(formula, -variable), falseBranch)
}

// chooseVariable picks the branch variable: the variable of the first literal
// of the first remaining clause. The policy is deliberately fixed since it
// determines decision counts and branch order.
func chooseVariable(formula cnf.Formula) int64 {
	return abs(formula[0][0])
}
