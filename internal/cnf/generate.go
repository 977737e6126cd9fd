package cnf

import (
	"math/rand"
)

// GenerateRandom builds a random formula with the requested shape. Each
// clause draws clauseLength distinct variables (capped at numVars) and flips
// a coin for each polarity. The same seed always yields the same formula.
func GenerateRandom(numVars, numClauses, clauseLength int, seed int64) Formula {
	random := rand.New(rand.NewSource(seed))
	formula := make(Formula, 0, numClauses)

	for i := 0; i < numClauses; i++ {
		selected := random.Perm(numVars)[:min(clauseLength, numVars)]

		clause := make(Clause, 0, len(selected))
		for _, variable := range selected {
			literal := int64(variable + 1)
			if random.Float64() < 0.5 {
				literal = -literal
			}
			clause = append(clause, literal)
		}
		formula = append(formula, clause)
	}
	return formula
}

// Generate3SAT builds a random 3-SAT instance. The clause-to-variable ratio
// controls hardness; instances near ratio 4.3 sit at the satisfiability
// phase transition.
func Generate3SAT(numVars int, ratio float64, seed int64) Formula {
	return GenerateRandom(numVars, int(float64(numVars)*ratio), 3, seed)
}

// GeneratePigeonhole encodes placing holes+1 pigeons into the given number of
// holes: every pigeon must take at least one hole, and no two pigeons may
// share one. The encoding is unsatisfiable for every holes >= 1.
func GeneratePigeonhole(holes int) Formula {
	variable := func(pigeon, hole int) int64 {
		return int64(pigeon*holes + hole + 1)
	}

	formula := Formula{}

	for pigeon := 0; pigeon < holes+1; pigeon++ {
		clause := make(Clause, 0, holes)
		for hole := 0; hole < holes; hole++ {
			clause = append(clause, variable(pigeon, hole))
		}
		formula = append(formula, clause)
	}

	for hole := 0; hole < holes; hole++ {
		for first := 0; first < holes+1; first++ {
			for second := first + 1; second < holes+1; second++ {
				formula = append(formula, Clause{-variable(first, hole), -variable(second, hole)})
			}
		}
	}
	return formula
}
