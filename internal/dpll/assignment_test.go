package dpll

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dpll/internal/cnf"
)

func TestSatisfies(t *testing.T) {
	// Arrange
	formula := cnf.Formula{{1, 2}, {-1, 3}, {-2, -3}}

	// Assert
	assert.True(t, Assignment{1: true, 2: false, 3: true}.Satisfies(formula))
	assert.False(t, Assignment{1: false, 2: true, 3: true}.Satisfies(formula)) // clause 3 fails
	assert.False(t, Assignment{1: true}.Satisfies(formula))                    // partial: clause 2 unwitnessed
	assert.True(t, Assignment{}.Satisfies(cnf.Formula{}))
}

func TestLiterals(t *testing.T) {
	// Arrange
	assignment := Assignment{3: false, 1: true, 2: true}

	// Act
	literals := assignment.Literals()

	// Assert
	assert.Equal(t, []int64{1, 2, -3}, literals)
}
