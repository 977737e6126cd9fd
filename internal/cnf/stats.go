package cnf

import (
	"github.com/samber/lo"
)

// FormulaStats summarizes the shape of a formula for reporting.
type FormulaStats struct {
	Variables           int
	Clauses             int
	TotalLiterals       int
	MinClauseLength     int
	MaxClauseLength     int
	AvgClauseLength     float64
	ClauseVariableRatio float64
}

func Stats(f Formula) FormulaStats {
	stats := FormulaStats{
		Variables: len(f.Variables()),
		Clauses:   len(f),
	}
	if len(f) == 0 {
		return stats
	}

	lengths := lo.Map(f, func(clause Clause, _ int) int { return len(clause) })
	stats.TotalLiterals = lo.Sum(lengths)
	stats.MinClauseLength = lo.Min(lengths)
	stats.MaxClauseLength = lo.Max(lengths)
	stats.AvgClauseLength = float64(stats.TotalLiterals) / float64(stats.Clauses)

	if stats.Variables > 0 {
		stats.ClauseVariableRatio = float64(stats.Clauses) / float64(stats.Variables)
	}
	return stats
}
