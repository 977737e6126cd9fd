// Benchmark runner comparing this repository's DPLL engine against two
// industrial CDCL solvers on randomly generated suites. Every backend must
// agree on every instance; a disagreement aborts the run.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/crillab/gophersat/solver"
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"

	"dpll/internal/cnf"
	"dpll/internal/dpll"
)

// Suite describes one family of random instances.
type Suite struct {
	Name      string
	Variables int
	Clauses   int
	Length    int
	Seed      int64
	Instances int
}

type backend struct {
	name  string
	solve func(cnf.Formula) bool
}

func backends() []backend {
	return []backend{
		{name: "dpll", solve: solveDPLL},
		{name: "gini", solve: solveGini},
		{name: "gophersat", solve: solveGophersat},
	}
}

func main() {
	configPath := flag.String("config", "config.json", "Path to the benchmark suites file")
	flag.Parse()

	suites := parseSuites(*configPath)
	if len(suites) == 0 {
		log.Fatal("no suites configured")
	}

	for _, suite := range suites {
		for instance := 0; instance < suite.Instances; instance++ {
			formula := cnf.GenerateRandom(suite.Variables, suite.Clauses, suite.Length, suite.Seed+int64(instance))

			verdicts := make([]bool, 0, len(backends()))
			for _, b := range backends() {
				start := time.Now()
				satisfiable := b.solve(formula)
				fmt.Printf("%-12v instance %-3v %-10v %-14v %v\n", suite.Name, instance, b.name, verdict(satisfiable), time.Since(start))
				verdicts = append(verdicts, satisfiable)
			}

			if lo.SomeBy(verdicts, func(v bool) bool { return v != verdicts[0] }) {
				log.Fatalf("backends disagree on suite %v instance %v", suite.Name, instance)
			}
		}
	}
}

func parseSuites(path string) []Suite {
	text, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("cannot read suites file: %v", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(text, &raw); err != nil {
		log.Fatalf("cannot parse suites file: %v", err)
	}

	var suites []Suite
	mapstructure.Decode(raw, &suites)
	return suites
}

func verdict(satisfiable bool) string {
	if satisfiable {
		return "SATISFIABLE"
	}
	return "UNSATISFIABLE"
}

func solveDPLL(formula cnf.Formula) bool {
	satisfiable, _, err := dpll.New().Solve(formula)
	if err != nil {
		log.Fatalf("invalid instance: %v", err)
	}
	return satisfiable
}

func solveGini(formula cnf.Formula) bool {
	g := gini.New()
	for _, clause := range formula {
		for _, literal := range clause {
			if literal > 0 {
				g.Add(z.Var(literal).Pos())
			} else {
				g.Add(z.Var(-literal).Neg())
			}
		}
		g.Add(0)
	}
	return g.Solve() == 1
}

func solveGophersat(formula cnf.Formula) bool {
	clauses := lo.Map(formula, func(clause cnf.Clause, _ int) []int {
		return lo.Map(clause, func(literal int64, _ int) int { return int(literal) })
	})
	problem := solver.ParseSlice(clauses)
	return solver.New(problem).Solve() == solver.Sat
}
