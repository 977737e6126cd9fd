package cnf

import (
	"fmt"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Clause is a disjunction of literals. A positive literal asserts its
// variable, a negative literal asserts its negation. Literals are never zero.
type Clause []int64

// Formula is a conjunction of clauses. Clause order does not affect
// satisfiability, but it fixes the order in which unit clauses are discovered,
// so it must be preserved for runs to be reproducible.
type Formula []Clause

func (c Clause) Clone() Clause {
	return slices.Clone(c)
}

// Tautological reports whether the clause contains some literal together with
// its negation. Such a clause is satisfied under every assignment.
func (c Clause) Tautological() bool {
	literals := mapset.NewSet[int64]()
	for _, literal := range c {
		if literals.Contains(-literal) {
			return true
		}
		literals.Add(literal)
	}
	return false
}

func (f Formula) Clone() Formula {
	clone := make(Formula, len(f))
	for i, clause := range f {
		clone[i] = clause.Clone()
	}
	return clone
}

// Validate rejects malformed formulas before any search is attempted. The
// only malformation is a zero literal, since zero terminates clauses in
// DIMACS and cannot name a variable.
func (f Formula) Validate() error {
	for i, clause := range f {
		for _, literal := range clause {
			if literal == 0 {
				return fmt.Errorf("clause %v contains a zero literal", i)
			}
		}
	}
	return nil
}

// Variables returns every variable referenced by the formula in ascending
// order.
func (f Formula) Variables() []int64 {
	variables := mapset.NewSet[int64]()
	for _, clause := range f {
		for _, literal := range clause {
			variables.Add(abs(literal))
		}
	}
	sorted := variables.ToSlice()
	slices.Sort(sorted)
	return sorted
}

func (f Formula) MaxVar() int64 {
	var maxVar int64
	for _, clause := range f {
		for _, literal := range clause {
			maxVar = max(maxVar, abs(literal))
		}
	}
	return maxVar
}

// HasEmptyClause reports whether any clause has no literals left. An empty
// clause cannot be satisfied, so its presence witnesses unsatisfiability of
// the formula.
func (f Formula) HasEmptyClause() bool {
	return slices.ContainsFunc(f, func(clause Clause) bool { return len(clause) == 0 })
}

// String renders the formula as a human-readable conjunction, e.g.
// (x1 ∨ ¬x2) ∧ (x2 ∨ x3). The empty formula renders as TRUE and a formula
// with an empty clause as FALSE.
func (f Formula) String() string {
	if len(f) == 0 {
		return "TRUE"
	}

	clauses := make([]string, 0, len(f))
	for _, clause := range f {
		if len(clause) == 0 {
			return "FALSE"
		}
		literals := make([]string, 0, len(clause))
		for _, literal := range clause {
			if literal > 0 {
				literals = append(literals, fmt.Sprintf("x%d", literal))
			} else {
				literals = append(literals, fmt.Sprintf("¬x%d", -literal))
			}
		}
		clauses = append(clauses, fmt.Sprintf("(%v)", strings.Join(literals, " ∨ ")))
	}
	return strings.Join(clauses, " ∧ ")
}

// ToDIMACS transforms the formula into the DIMACS-CNF string format.
func (f Formula) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", f.MaxVar(), len(f))
	for _, clause := range f {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

func abs(literal int64) int64 {
	if literal < 0 {
		return -literal
	}
	return literal
}
