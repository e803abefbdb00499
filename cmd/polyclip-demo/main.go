// Command polyclip-demo flattens two hardcoded overlapping squares under
// a chosen rule and prints the resulting polygons. It exists to give the
// library a runnable entry point, not to read any file format or render
// anything (SPEC_FULL.md §2/§7 - that scope is explicitly out).
package main

import (
	"flag"
	"fmt"
	"os"

	clipper "github.com/centprod/polygon-clipper"
)

var ruleNames = map[string]clipper.Rule{
	"union":         clipper.RuleAOrB,
	"intersection":  clipper.RuleAAndB,
	"difference":    clipper.RuleAMinusB,
	"difference-ba": clipper.RuleBMinusA,
	"xor":           clipper.RuleAXorB,
}

func main() {
	ruleFlag := flag.String("rule", "union", "one of: union, intersection, difference, difference-ba, xor")
	debug := flag.Bool("debug", false, "enable sweep diagnostics on stderr")
	flag.Parse()

	rule, ok := ruleNames[*ruleFlag]
	if !ok {
		fmt.Fprintf(os.Stderr, "polyclip-demo: unknown rule %q\n", *ruleFlag)
		os.Exit(2)
	}

	s := clipper.NewSession(rule)
	s.Debug = *debug

	// Two overlapping 10x10 squares, offset by half their width.
	addSquare(s, 0, 0, 10, 10, false)
	addSquare(s, 5, 5, 15, 15, true)

	if err := s.Flatten(); err != nil {
		fmt.Fprintf(os.Stderr, "polyclip-demo: flatten failed: %v\n", err)
		os.Exit(1)
	}

	for i, poly := range s.Result() {
		fmt.Printf("polygon %d:\n", i)
		for _, p := range poly {
			fmt.Printf("  %s\n", p)
		}
	}
}

func addSquare(s *clipper.Session, x0, y0, x1, y1 int, isB bool) {
	s.AddEdge(x0, y0, x1, y0, isB)
	s.AddEdge(x1, y0, x1, y1, isB)
	s.AddEdge(x1, y1, x0, y1, isB)
	s.AddEdge(x0, y1, x0, y0, isB)
}
