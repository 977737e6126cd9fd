package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromText(t *testing.T) {
	t.Run("Parenthesized clauses", func(t *testing.T) {
		// Act
		formula, err := FromText("(1 OR -2) AND (2 OR 3) AND (-1 OR -3)")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, Formula{{1, -2}, {2, 3}, {-1, -3}}, formula)
	})

	t.Run("NOT keyword negates", func(t *testing.T) {
		// Act
		formula, err := FromText("(1 OR NOT 2) AND (NOT 1 OR 3)")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, Formula{{1, -2}, {-1, 3}}, formula)
	})

	t.Run("Parentheses are optional", func(t *testing.T) {
		// Act
		formula, err := FromText("1 OR 2 AND -2 OR 3")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, Formula{{1, 2}, {-2, 3}}, formula)
	})

	t.Run("Single literal", func(t *testing.T) {
		// Act
		formula, err := FromText("-3")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, Formula{{-3}}, formula)
	})

	t.Run("Garbage input", func(t *testing.T) {
		// Act
		_, err := FromText("1 XOR 2")

		// Assert
		assert.Error(t, err)
	})
}

func TestParseDetectsFormat(t *testing.T) {
	// Arrange
	inputs := map[string]Formula{
		"p cnf 3 2\n1 -2 0\n2 3 0":    {{1, -2}, {2, 3}},
		"c comment\np cnf 2 1\n1 2 0": {{1, 2}},
		"[[1,-2],[2,3]]":              {{1, -2}, {2, 3}},
		"(1 OR -2) AND (2 OR 3)":      {{1, -2}, {2, 3}},
	}

	for input, expected := range inputs {
		// Act
		formula, err := Parse(input)

		// Assert
		assert.NoError(t, err, input)
		assert.Equal(t, expected, formula, input)
	}
}
