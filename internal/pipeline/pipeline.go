// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"rnahelix-core/dotbracket"
	"rnahelix/internal/table"
)

// Analyzer turns one structure into its helix analysis.
type Analyzer interface {
	Analyze(structure string) (dotbracket.Analysis, error)
}

// DotBracket is the Analyzer backed by dotbracket.Analyze.
type DotBracket struct {
	Brackets []dotbracket.BracketPair
	Bulge    int
}

func (d DotBracket) Analyze(structure string) (dotbracket.Analysis, error) {
	return dotbracket.Analyze(structure, d.Brackets, d.Bulge)
}

// Config controls the worker pool.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// Result is one analysed record. Err is set when the structure is malformed;
// Analysis is then the zero value.
type Result struct {
	table.Record
	Analysis dotbracket.Analysis
	Err      error
}

// Feed produces records by calling emit for each. It must stop and return
// emit's error when emit fails.
type Feed func(emit func(table.Record) error) error

// ForEachResult analyses every record produced by feed and calls visit for
// each result on a single goroutine. Per-record analysis errors are reported
// through Result.Err and never stop the run. It returns the first error from
// feed or visit, or the context error on cancellation.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	feed Feed,
	an Analyzer,
	visit func(Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan table.Record, cfg.Threads*2)
	results := make(chan Result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case rec, ok := <-jobs:
					if !ok {
						return
					}
					a, err := an.Analyze(rec.Structure)
					select {
					case results <- Result{Record: rec, Analysis: a, Err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if cerr != nil {
				continue
			}
			if err := visit(r); err != nil {
				cerr = err
				cancel()
			}
		}
	}()

	// Feed work
	ferr := feed(func(rec table.Record) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case jobs <- rec:
			return nil
		}
	})

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return cerr
	}
	if err := ctx.Err(); err != nil && ferr == nil {
		return err
	}
	return ferr
}
