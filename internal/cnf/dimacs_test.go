package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDIMACS(t *testing.T) {
	t.Run("Header and clauses", func(t *testing.T) {
		// Arrange
		input := "p cnf 3 2\n1 -2 0\n2 3 0"

		// Act
		formula, err := ParseDIMACS(input)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, Formula{{1, -2}, {2, 3}}, formula)
	})

	t.Run("Comments and blank lines are skipped", func(t *testing.T) {
		// Arrange
		input := `c Example CNF formula in DIMACS format
		p cnf 4 4
		1 2 -3 0

		-1 3 0
		2 -3 4 0
		-2 -4 0
		`

		// Act
		formula, err := ParseDIMACS(input)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, Formula{{1, 2, -3}, {-1, 3}, {2, -3, 4}, {-2, -4}}, formula)
	})

	t.Run("Clauses may span lines", func(t *testing.T) {
		// Arrange
		input := "p cnf 4 1\n1 2\n3 4 0"

		// Act
		formula, err := ParseDIMACS(input)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, Formula{{1, 2, 3, 4}}, formula)
	})

	t.Run("Missing final terminator is tolerated", func(t *testing.T) {
		// Arrange
		input := "p cnf 2 2\n1 0\n-1 2"

		// Act
		formula, err := ParseDIMACS(input)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, Formula{{1}, {-1, 2}}, formula)
	})

	t.Run("Invalid literal", func(t *testing.T) {
		// Act
		_, err := ParseDIMACS("p cnf 1 1\n1 x 0")

		// Assert
		assert.Error(t, err)
	})
}
