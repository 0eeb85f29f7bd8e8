package search

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/knuthbendix/kbcomplete/internal/budget"
	"github.com/knuthbendix/kbcomplete/internal/completion"
	"github.com/knuthbendix/kbcomplete/internal/kberrors"
	"github.com/knuthbendix/kbcomplete/internal/order"
	"github.com/knuthbendix/kbcomplete/internal/rewrite"
	"github.com/knuthbendix/kbcomplete/internal/term"
)

// Options configures a Driver. NewBudget is called once per candidate, so
// every candidate gets an independent step/time allowance; a nil NewBudget
// defaults to budget.WithSteps(10000). Concurrency below 1 is treated as 1.
type Options struct {
	NewBudget   func() *budget.Budget
	Concurrency int
}

func (o Options) newBudget() *budget.Budget {
	if o.NewBudget != nil {
		return o.NewBudget()
	}
	return budget.WithSteps(10000)
}

func (o Options) concurrency() int {
	if o.Concurrency < 1 {
		return 1
	}
	return o.Concurrency
}

// Driver runs equations_trs (spec.md §6, op 4): it tries candidate
// orderings produced by Candidates against the same equations until one
// converges, following the teacher's errgroup.WithContext + semaphore
// fan-out pattern (cmd/orizon/pkg/utils/graph.go's BuildDependencyGraph).
type Driver struct {
	opts    Options
	verbose bool
}

// NewDriver builds a Driver with the given options.
func NewDriver(opts Options) *Driver {
	return &Driver{opts: opts}
}

// SetVerbose toggles diagnostic logging of each candidate's outcome,
// following the teacher's ConstraintSolver.SetVerbose convention.
func (d *Driver) SetVerbose(v bool) {
	d.verbose = v
}

// EquationsTRS tries every candidate ordering over symbols, in parallel up
// to Options.Concurrency, and returns the TRS and winning ordering from
// the first one that completes successfully. Once a candidate succeeds, no
// new candidates are started; candidates already running are not
// interrupted and run until they finish, and their results are discarded. If every
// candidate fails, the error from the last candidate to fail is returned.
func (d *Driver) EquationsTRS(equations []term.Equation, symbols []term.Symbol) (rewrite.TRS, order.Ordering, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, d.opts.concurrency())

	var (
		mu      sync.Mutex
		result  rewrite.TRS
		won     order.Ordering
		found   bool
		lastErr error
		tried   int
	)

search:
	for cand := range Candidates(symbols) {
		if gctx.Err() != nil {
			break search
		}
		select {
		case sem <- struct{}{}:
		case <-gctx.Done():
			break search
		}

		cand := cand
		g.Go(func() error {
			defer func() { <-sem }()

			rules, err := completion.Complete(equations, cand, d.opts.newBudget())

			mu.Lock()
			defer mu.Unlock()
			tried++
			if err != nil {
				lastErr = err
				if d.verbose {
					log.Printf("search: candidate prec=%v stats=%v failed: %v", cand.Prec, cand.Stats, err)
				}
				return nil
			}
			if !found {
				found = true
				result, won = rules, cand
				if d.verbose {
					log.Printf("search: candidate prec=%v stats=%v converged after %d tried", cand.Prec, cand.Stats, tried)
				}
				cancel()
			}
			return nil
		})
	}

	_ = g.Wait()

	if found {
		return result, won, nil
	}
	if lastErr != nil {
		return nil, order.Ordering{}, lastErr
	}
	return nil, order.Ordering{}, kberrors.BudgetExhausted("search")
}
