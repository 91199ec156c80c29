// draw samples random variates from a named distribution and prints
// them to stdout, one draw per line.
//
// Usage:
//
//	draw -dist frechet -alpha 2 -theta 1 -n 1000
//	draw -dist alias -weights 0.2,0.3,0.5 -n 100000
//	draw -dist vmf -mu 0,0,1 -kappa 50 -n 10
//
// For -dist alias the output is one "category count" pair per
// category instead of raw draws.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/aclements/go-morerand/dist"
)

var (
	distName = flag.String("dist", "frechet", "distribution to sample: frechet, alias, or vmf")
	n        = flag.Int("n", 10, "number of draws")
	seed     = flag.Uint64("seed", 1, "random seed")

	alpha = flag.Float64("alpha", 1, "Fréchet shape")
	theta = flag.Float64("theta", 1, "Fréchet scale")

	weights = flag.String("weights", "", "comma-separated category weights for -dist alias")

	muFlag = flag.String("mu", "", "comma-separated unit mean direction for -dist vmf")
	kappa  = flag.Float64("kappa", 1, "von Mises–Fisher concentration")
)

func main() {
	flag.Parse()
	src := rand.NewSource(*seed)

	switch *distName {
	case "frechet":
		d, err := dist.NewFrechetDist(*alpha, *theta, src)
		check(err)
		for i := 0; i < *n; i++ {
			fmt.Printf("%.6g\n", d.Rand())
		}

	case "alias":
		ws, err := parseVector(*weights)
		check(err)
		t, err := dist.NewAliasTable(ws, src)
		check(err)
		counts := make([]int, t.K())
		for _, c := range t.RandN(*n) {
			counts[c]++
		}
		for c, count := range counts {
			fmt.Printf("%d %d\n", c, count)
		}

	case "vmf":
		mu, err := parseVector(*muFlag)
		check(err)
		d, err := dist.NewVonMisesFisher(mu, *kappa, src)
		check(err)
		x := make([]float64, d.Dim())
		for i := 0; i < *n; i++ {
			d.Rand(x)
			for j, v := range x {
				if j > 0 {
					fmt.Print(" ")
				}
				fmt.Printf("%.6g", v)
			}
			fmt.Println()
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown distribution %q\n", *distName)
		flag.Usage()
		os.Exit(2)
	}
}

func parseVector(s string) ([]float64, error) {
	if s == "" {
		return nil, fmt.Errorf("missing vector argument")
	}
	parts := strings.Split(s, ",")
	xs := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		xs[i] = v
	}
	return xs, nil
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
