// Package visual renders solver results and statistics for display. Nothing
// in the solver depends on it.
package visual

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"

	"dpll/internal/cnf"
	"dpll/internal/dpll"
)

const separator = "============================================================"

// Render writes the verdict, the assignment table and a per-clause
// verification of the assignment against the original formula.
func Render(w io.Writer, formula cnf.Formula, satisfiable bool, assignment dpll.Assignment) {
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "SAT SOLVER RESULT")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Formula: %v\n", formula)
	fmt.Fprintf(w, "Clauses: %v\n", len(formula))

	if !satisfiable {
		fmt.Fprintln(w, "UNSATISFIABLE")
		fmt.Fprintln(w, "No satisfying assignment exists.")
		return
	}

	fmt.Fprintln(w, "SATISFIABLE")
	variables := make([]int64, 0, len(assignment))
	for variable := range assignment {
		variables = append(variables, variable)
	}
	slices.Sort(variables)
	for _, variable := range variables {
		fmt.Fprintf(w, "  x%d = %v\n", variable, assignment[variable])
	}

	fmt.Fprintln(w, "Verification:")
	for i, clause := range formula {
		satisfiedBy := lo.Filter(clause, func(literal int64, _ int) bool {
			variable := literal
			if variable < 0 {
				variable = -variable
			}
			value, assigned := assignment[variable]
			return assigned && value == (literal > 0)
		})

		if len(satisfiedBy) == 0 {
			fmt.Fprintf(w, "  clause %d: NOT SATISFIED\n", i+1)
			continue
		}
		witnesses := lo.Map(satisfiedBy, func(literal int64, _ int) string { return fmt.Sprint(literal) })
		fmt.Fprintf(w, "  clause %d: satisfied by %v\n", i+1, strings.Join(witnesses, ", "))
	}
}

// RenderStatistics writes the solver's counters.
func RenderStatistics(w io.Writer, stats dpll.Statistics) {
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "SOLVER STATISTICS")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Variables: %v\n", stats.Variables)
	fmt.Fprintf(w, "Clauses: %v\n", stats.Clauses)
	fmt.Fprintf(w, "Decisions: %v\n", stats.Decisions)
	fmt.Fprintf(w, "Unit propagations: %v\n", stats.UnitPropagations)
	fmt.Fprintf(w, "Pure literals: %v\n", stats.PureLiterals)
	fmt.Fprintf(w, "Backtracks: %v\n", stats.Backtracks)
}
