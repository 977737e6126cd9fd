package cnf

import (
	"fmt"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

// Simplify returns the formula under the assumption that literal is true:
// clauses containing the literal are satisfied and dropped, and the literal's
// negation is removed from every surviving clause. A surviving clause stripped
// down to zero literals signals a conflict, observable via HasEmptyClause.
func Simplify(f Formula, literal int64) Formula {
	simplified := make(Formula, 0, len(f))
	for _, clause := range f {
		if slices.Contains(clause, literal) {
			continue
		}
		simplified = append(simplified, lo.Filter(clause, func(l int64, _ int) bool { return l != -literal }))
	}
	return simplified
}

// SimplifyAll applies Simplify for each literal in order. With no literals the
// formula is returned unchanged.
func SimplifyAll(f Formula, literals []int64) Formula {
	for _, literal := range literals {
		f = Simplify(f, literal)
	}
	return f
}

// Dedupe removes tautological clauses and duplicate clauses. Within a kept
// clause, repeated literals are collapsed and literals sorted, so clauses that
// differ only in literal order count as duplicates.
func Dedupe(f Formula) Formula {
	seen := mapset.NewSet[string]()
	deduped := make(Formula, 0, len(f))

	for _, clause := range f {
		if clause.Tautological() {
			continue
		}

		canonical := slices.Clone(clause)
		slices.Sort(canonical)
		canonical = slices.Compact(canonical)

		key := strings.Join(lo.Map(canonical, func(l int64, _ int) string { return fmt.Sprint(l) }), " ")
		if seen.Contains(key) {
			continue
		}
		seen.Add(key)
		deduped = append(deduped, canonical)
	}
	return deduped
}
