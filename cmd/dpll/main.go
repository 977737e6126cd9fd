package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"dpll/internal/cnf"
	"dpll/internal/dpll"
	"dpll/internal/visual"
)

var (
	file    = flag.String("file", "", `Path to a DIMACS-CNF file, where "-" reads from the Standard Input`)
	formula = flag.String("formula", "", `Formula in text form, e.g. "(1 OR -2) AND (2 OR 3)" or "[[1,-2],[2,3]]"`)
	random  = flag.Bool("random", false, "Solve a randomly generated instance")
	vars    = flag.Int("vars", 10, "Number of variables for the random instance")
	clauses = flag.Int("clauses", 42, "Number of clauses for the random instance")
	length  = flag.Int("length", 3, "Literals per clause for the random instance")
	seed    = flag.Int64("seed", 42, "Seed for the random instance")
	pigeons = flag.Int("pigeons", 0, "Solve the pigeonhole instance with the given number of holes")
	out     = flag.String("out", "", "Path to the file where the report will be written; if empty, it'll be written into the Standard Output")
	quiet   = flag.Bool("quiet", false, "Only print the verdict")
)

func main() {
	flag.Parse()

	// Validate arguments: exactly one input source must be selected.
	sources := 0
	for _, selected := range []bool{*file != "", *formula != "", *random, *pigeons > 0} {
		if selected {
			sources++
		}
	}
	if sources != 1 {
		log.Fatal("exactly one of -file, -formula, -random or -pigeons must be specified")
	}
	if *random && (*vars < 1 || *clauses < 1 || *length < 1) {
		log.Fatalf("invalid random instance shape: vars=%v clauses=%v length=%v", *vars, *clauses, *length)
	}

	input := buildFormula()

	solver := dpll.New()
	satisfiable, assignment, err := solver.Solve(input)
	if err != nil {
		log.Fatalf("invalid formula: %v", err)
	}

	var report strings.Builder
	if *quiet {
		if satisfiable {
			report.WriteString("SATISFIABLE\n")
		} else {
			report.WriteString("UNSATISFIABLE\n")
		}
	} else {
		visual.Render(&report, input, satisfiable, assignment)
		visual.RenderStatistics(&report, solver.Statistics())
	}

	if *out == "" {
		os.Stdout.WriteString(report.String())
	} else if err := os.WriteFile(*out, []byte(report.String()), 0666); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}

	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	if satisfiable {
		os.Exit(10)
	}
	os.Exit(20)
}

func buildFormula() cnf.Formula {
	switch {
	case *file != "":
		var text []byte
		var err error
		if *file == "-" {
			text, err = io.ReadAll(os.Stdin)
		} else {
			text, err = os.ReadFile(*file)
		}
		if err != nil {
			log.Fatalf("cannot read input: %v", err)
		}
		parsed, err := cnf.ParseDIMACS(string(text))
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}
		return parsed

	case *formula != "":
		parsed, err := cnf.Parse(*formula)
		if err != nil {
			log.Fatalf("cannot parse formula: %v", err)
		}
		return parsed

	case *random:
		return cnf.GenerateRandom(*vars, *clauses, *length, *seed)

	default:
		return cnf.GeneratePigeonhole(*pigeons)
	}
}
