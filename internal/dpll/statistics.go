package dpll

// Statistics counts the work done by a single Solve call. The four search
// counters only ever increase while the search runs; they are reset when the
// next Solve begins, so repeated calls on one Solver yield independent counts.
type Statistics struct {
	Decisions        uint64
	UnitPropagations uint64
	PureLiterals     uint64
	Backtracks       uint64

	// Input shape, recorded for reporting.
	Variables int
	Clauses   int
}
