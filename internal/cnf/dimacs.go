package cnf

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDIMACS parses the DIMACS-CNF text format:
//
//	c a comment
//	p cnf 3 2
//	1 -2 0
//	2 3 0
//
// Comment and problem lines are skipped; the declared sizes are not enforced
// since trailing clauses are harmless and common in the wild. Clauses are
// terminated by 0 and may span multiple lines. A final clause without its 0
// terminator is accepted.
func ParseDIMACS(input string) (Formula, error) {
	formula := Formula{}
	clause := Clause{}

	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "p") || strings.HasPrefix(line, "%") {
			continue
		}

		for _, token := range strings.Fields(line) {
			literal, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid literal %q: %w", token, err)
			}

			if literal == 0 {
				formula = append(formula, clause)
				clause = Clause{}
				continue
			}
			clause = append(clause, literal)
		}
	}

	if len(clause) > 0 {
		formula = append(formula, clause)
	}
	return formula, nil
}
