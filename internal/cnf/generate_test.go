package cnf

import (
	"math/rand"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomShape(t *testing.T) {
	for i := 0; i < 10; i++ {
		// Arrange
		numVars := rand.Intn(20) + 3
		numClauses := rand.Intn(50) + 1
		seed := rand.Int63()

		// Act
		formula := GenerateRandom(numVars, numClauses, 3, seed)

		// Assert
		assert.Len(t, formula, numClauses)
		for _, clause := range formula {
			assert.Len(t, clause, 3)

			variables := mapset.NewSet[int64]()
			for _, literal := range clause {
				assert.NotZero(t, literal)
				assert.LessOrEqual(t, abs(literal), int64(numVars))
				variables.Add(abs(literal))
			}

			// Variables within a clause are distinct
			assert.Equal(t, len(clause), variables.Cardinality())
		}
	}
}

func TestGenerateRandomReproducible(t *testing.T) {
	// Act
	first := GenerateRandom(15, 60, 3, 42)
	second := GenerateRandom(15, 60, 3, 42)
	other := GenerateRandom(15, 60, 3, 43)

	// Assert
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestGenerate3SAT(t *testing.T) {
	// Act
	formula := Generate3SAT(10, 4.3, 42)

	// Assert
	assert.Len(t, formula, 43)
	for _, clause := range formula {
		assert.Len(t, clause, 3)
	}
}

func TestGeneratePigeonhole(t *testing.T) {
	// Arrange: 4 pigeons into 3 holes
	holes := 3

	// Act
	formula := GeneratePigeonhole(holes)

	// Assert: 4 at-least-one-hole clauses plus 3 * C(4,2) exclusion clauses
	assert.Len(t, formula, 4+3*6)
	assert.Equal(t, int64(12), formula.MaxVar())
	assert.NoError(t, formula.Validate())

	for i, clause := range formula {
		if i < 4 {
			assert.Len(t, clause, holes)
		} else {
			assert.Len(t, clause, 2)
		}
	}
}
