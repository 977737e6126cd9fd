package cnf

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/samber/lo"
)

// Readable formula grammar: clauses joined by AND, literals joined by OR,
// negation written either as a minus sign or the NOT keyword, parentheses
// optional. Example: "(1 OR -2) AND (2 OR NOT 3)".

type textLiteral struct {
	Negated bool  `parser:"@'NOT'?"`
	Value   int64 `parser:"@Int"`
}

type textClause struct {
	Literals []textLiteral `parser:"'('? @@ ( 'OR' @@ )* ')'?"`
}

type textFormula struct {
	Clauses []textClause `parser:"@@ ( 'AND' @@ )*"`
}

var formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `AND|OR|NOT`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Paren", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var formulaParser = participle.MustBuild[textFormula](
	participle.Lexer(formulaLexer),
	participle.Elide("Whitespace"))

// FromText parses the readable AND/OR/NOT format into a Formula.
func FromText(input string) (Formula, error) {
	parsed, err := formulaParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("cannot parse formula: %w", err)
	}

	formula := make(Formula, 0, len(parsed.Clauses))
	for _, clause := range parsed.Clauses {
		formula = append(formula, lo.Map(clause.Literals, func(literal textLiteral, _ int) int64 {
			if literal.Negated {
				return -literal.Value
			}
			return literal.Value
		}))
	}
	return formula, nil
}

// Parse accepts a formula in any of the supported text formats: DIMACS, a
// JSON clause list such as [[1,-2],[2,3]], or the readable AND/OR/NOT format.
// The format is detected from the input itself.
func Parse(input string) (Formula, error) {
	trimmed := strings.TrimSpace(input)

	if strings.Contains(trimmed, "p cnf") || strings.HasPrefix(trimmed, "c") {
		return ParseDIMACS(trimmed)
	}

	if strings.HasPrefix(trimmed, "[") {
		var clauses [][]int64
		if err := json.Unmarshal([]byte(trimmed), &clauses); err != nil {
			return nil, fmt.Errorf("cannot parse clause list: %w", err)
		}
		return lo.Map(clauses, func(clause []int64, _ int) Clause { return clause }), nil
	}

	return FromText(trimmed)
}
