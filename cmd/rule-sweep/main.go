// Command rule-sweep evolves all 256 elementary rules from a single seed
// cell and reports live-cell densities, highest first. Rules whose board
// density stays near 50% tend to be the visually interesting ones.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"

	"wolfram-ca/pkg/automaton"
)

type ruleResult struct {
	rule         int
	boardDensity float64
	finalDensity float64
}

func main() {
	generations := flag.Int("generations", 64, "generations to evolve per rule")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 16, "number of rules to report (0 reports all 256)")
	flag.Parse()

	if *generations < 1 {
		log.Fatalf("generations must be at least 1, got %d", *generations)
	}

	jobs := make(chan int)
	results := make(chan ruleResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rule := range jobs {
				results <- runRule(rule, *generations)
			}
		}()
	}

	go func() {
		for rule := 0; rule <= 255; rule++ {
			jobs <- rule
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	all := make([]ruleResult, 0, 256)
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].boardDensity != all[j].boardDensity {
			return all[i].boardDensity > all[j].boardDensity
		}
		return all[i].rule < all[j].rule
	})

	limit := *top
	if limit <= 0 || limit > len(all) {
		limit = len(all)
	}

	fmt.Printf("Evolved 256 rules for %d generations (%d workers)\n\n", *generations, *workers)
	fmt.Printf("%4s  %4s  %8s  %8s\n", "rank", "rule", "board", "final")
	for i, res := range all[:limit] {
		fmt.Printf("%4d  %4d  %7.1f%%  %7.1f%%\n", i+1, res.rule, res.boardDensity*100, res.finalDensity*100)
	}
}

func runRule(rule, generations int) ruleResult {
	board, err := automaton.Generate(rule, generations)
	if err != nil {
		log.Fatalf("rule %d: %v", rule, err)
	}

	total := 0
	for _, c := range board.Cells() {
		total += int(c)
	}
	final := 0
	for _, c := range board.Row(board.Height() - 1) {
		final += int(c)
	}

	w, h := board.Width(), board.Height()
	return ruleResult{
		rule:         rule,
		boardDensity: float64(total) / float64(w*h),
		finalDensity: float64(final) / float64(w),
	}
}
