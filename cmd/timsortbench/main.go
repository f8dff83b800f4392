// Command timsortbench is the external benchmark/agreement harness for
// the timsort package: it generates a pseudo-random test vector, sorts
// one copy with timsort and another with sort.SliceStable, checks they
// agree, and reports the timing ratio between them.
//
// This mirrors original_source/timsort.cpp's main/proceedTest (seeded
// generation, sortAndGetTime, areEqual, ratio report), re-expressed
// idiomatically: urfave/cli/v2 flags instead of positional argv
// parsing, logrus structured fields instead of printf. It is an
// external collaborator of the core package — it only calls the public
// Sort/SortFunc/SortFuncPolicy entry points.
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/shibukawa/timsort"
	"github.com/shibukawa/timsort/internal/testvectors"
)

func main() {
	log := logrus.New()

	app := &cli.App{
		Name:  "timsortbench",
		Usage: "benchmark and check agreement of the timsort package against sort.SliceStable",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "parts", Value: 10, Usage: "number of internally sorted chunks"},
			&cli.IntFlag{Name: "length", Value: 1000, Usage: "length of each chunk"},
			&cli.Uint64Flag{Name: "seed", Value: 1951, Usage: "deterministic generator seed"},
			&cli.BoolFlag{Name: "two-run-policy", Usage: "use the experimental TwoRunPolicy instead of DefaultPolicy"},
			&cli.BoolFlag{Name: "random", Usage: "generate fully random input instead of partly sorted chunks"},
		},
		Action: func(c *cli.Context) error {
			return run(log, c)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("timsortbench failed")
	}
}

func run(log *logrus.Logger, c *cli.Context) error {
	parts := c.Int("parts")
	length := c.Int("length")
	seed := c.Uint64("seed")

	var input []int
	if c.Bool("random") {
		input = testvectors.RandomInts(seed, parts*length)
	} else {
		input = testvectors.PartlySortedInts(seed, parts, length)
	}

	var policy timsort.Policy = timsort.DefaultPolicy{}
	policyName := "DefaultPolicy"
	if c.Bool("two-run-policy") {
		policy = timsort.TwoRunPolicy{}
		policyName = "TwoRunPolicy"
	}

	timSortInput := make([]int, len(input))
	copy(timSortInput, input)
	referenceInput := make([]int, len(input))
	copy(referenceInput, input)

	less := func(a, b int) bool { return a < b }

	start := time.Now()
	if err := timsort.SortFuncPolicy(timSortInput, less, policy); err != nil {
		return fmt.Errorf("timsort: %w", err)
	}
	timSortElapsed := time.Since(start)

	start = time.Now()
	sort.SliceStable(referenceInput, func(i, j int) bool { return referenceInput[i] < referenceInput[j] })
	referenceElapsed := time.Since(start)

	agree := slicesEqual(timSortInput, referenceInput)

	entry := log.WithFields(logrus.Fields{
		"policy":            policyName,
		"elements":          len(input),
		"parts":             parts,
		"seed":              seed,
		"timsort_duration":  timSortElapsed,
		"reference_duration": referenceElapsed,
		"ratio":             timSortElapsed.Seconds() / referenceElapsed.Seconds(),
		"agree":             agree,
	})
	if !agree {
		entry.Error("timsort output disagrees with sort.SliceStable")
		return fmt.Errorf("disagreement between timsort and sort.SliceStable on %d elements", len(input))
	}
	entry.Info("timsort agrees with sort.SliceStable")
	return nil
}

func slicesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
