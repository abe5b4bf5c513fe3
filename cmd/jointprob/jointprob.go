// jointprob prints the joint outcome probabilities of two or three
// correlated Bernoulli events.
//
// With three arguments p1 p2 r it prints the four joint outcomes of
// two events with marginals p1 and p2 and correlation r, plus the
// "any" and "all" aggregates. With seven arguments p1 p2 p3 r12 r23
// r13without2 r13with2 it prints the eight joint outcomes of three
// events plus "any", where the last two correlations relate events 1
// and 3 conditional on event 2 not occurring and occurring.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/probkit/go-jointprob/copula"
)

func main() {
	args := parseArgs(os.Args[1:])

	switch len(args) {
	case 3:
		d := copula.BernoulliPair{P1: args[0], P2: args[1], R: args[2]}
		for i := 0; i < 4; i++ {
			first, second := i&2 != 0, i&1 != 0
			fmt.Printf("%8s %.6g\n", label(first, second), d.PMF(first, second))
		}
		fmt.Printf("%8s %.6g\n", "any", d.PAny())
		fmt.Printf("%8s %.6g\n", "all", d.PAll())

	case 7:
		d := copula.BernoulliTriple{
			P1: args[0], P2: args[1], P3: args[2],
			R12: args[3], R23: args[4],
			R13Without2: args[5], R13With2: args[6],
		}
		for i := 0; i < 8; i++ {
			first, second, third := i&4 != 0, i&2 != 0, i&1 != 0
			fmt.Printf("%8s %.6g\n", label(first, second, third),
				d.PMF(first, second, third))
		}
		fmt.Printf("%8s %.6g\n", "any", d.PAny())

	default:
		fmt.Fprintf(os.Stderr, "usage: %s p1 p2 r\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s p1 p2 p3 r12 r23 r13without2 r13with2\n", os.Args[0])
		os.Exit(2)
	}
}

func parseArgs(raw []string) []float64 {
	args := make([]float64, len(raw))
	for i, a := range raw {
		value, err := strconv.ParseFloat(a, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		args[i] = value
	}
	return args
}

// label renders an outcome as a string of 0s and 1s, one digit per
// event.
func label(occurs ...bool) string {
	s := ""
	for _, o := range occurs {
		if o {
			s += "1"
		} else {
			s += "0"
		}
	}
	return s
}
