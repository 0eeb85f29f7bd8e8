// Command kbcomplete runs Knuth-Bendix completion over an equation set
// read from a tiny S-expression file, optionally re-running it whenever
// the file changes.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	kbcomplete "github.com/knuthbendix/kbcomplete"
	"github.com/knuthbendix/kbcomplete/internal/watch"
)

func main() {
	var (
		equationsFile string
		precedenceCSV string
		mulCSV        string
		watchFile     string
		verbose       bool
		steps         int
		concurrency   int
	)

	flag.StringVar(&equationsFile, "equations", "", "path to a file of S-expression equations")
	flag.StringVar(&precedenceCSV, "precedence", "", "comma-separated symbol precedence, smallest first; omit to search")
	flag.StringVar(&mulCSV, "mul", "", "comma-separated symbols to give multiset status (others default to lex)")
	flag.StringVar(&watchFile, "watch", "", "re-run completion whenever this file changes")
	flag.BoolVar(&verbose, "verbose", false, "log diagnostics to stderr")
	flag.IntVar(&steps, "steps", 20000, "step budget per completion attempt")
	flag.IntVar(&concurrency, "concurrency", 4, "parallel ordering candidates to try when searching")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -equations FILE [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Runs Knuth-Bendix completion over the equations in FILE.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if equationsFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	run := func() error {
		return runOnce(equationsFile, precedenceCSV, mulCSV, verbose, steps, concurrency)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "kbcomplete:", err)
		if watchFile == "" {
			os.Exit(1)
		}
	}

	if watchFile == "" {
		return
	}

	w, err := watch.NewWatcher(watchFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "kbcomplete: watch:", err)
		os.Exit(1)
	}
	defer w.Close()

	fmt.Fprintf(os.Stderr, "kbcomplete: watching %s\n", watchFile)
	for {
		select {
		case ev := <-w.Events():
			if ev.Op&(watch.OpWrite|watch.OpCreate) == 0 {
				continue
			}
			fmt.Fprintf(os.Stderr, "kbcomplete: %s changed, re-running\n", ev.Path)
			if err := run(); err != nil {
				fmt.Fprintln(os.Stderr, "kbcomplete:", err)
			}
		case err := <-w.Errors():
			fmt.Fprintln(os.Stderr, "kbcomplete: watch error:", err)
		}
	}
}

func runOnce(equationsFile, precedenceCSV, mulCSV string, verbose bool, steps, concurrency int) error {
	data, err := os.ReadFile(equationsFile)
	if err != nil {
		return err
	}
	equations, err := readEquations(string(data))
	if err != nil {
		return err
	}
	if len(equations) == 0 {
		return fmt.Errorf("no equations found in %s", equationsFile)
	}

	var rules kbcomplete.TRS
	if precedenceCSV != "" {
		ord := orderingFromFlags(precedenceCSV, mulCSV)
		rules, err = kbcomplete.Completion(equations, ord, kbcomplete.WithSteps(steps))
	} else {
		symbols := symbolsOf(equations)
		rules, _, err = kbcomplete.EquationsTRS(equations, symbols, kbcomplete.SearchOptions{
			NewBudget:   func() *kbcomplete.Budget { return kbcomplete.WithSteps(steps) },
			Concurrency: concurrency,
			Verbose:     verbose,
		})
	}
	if err != nil {
		return err
	}

	for _, r := range rules {
		fmt.Println(r.String())
	}
	return nil
}

func orderingFromFlags(precedenceCSV, mulCSV string) kbcomplete.Ordering {
	prec := make(kbcomplete.Precedence, 0)
	for _, s := range strings.Split(precedenceCSV, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			prec = append(prec, kbcomplete.Symbol(s))
		}
	}
	stats := make(kbcomplete.Stats)
	for _, s := range strings.Split(mulCSV, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			stats[kbcomplete.Symbol(s)] = kbcomplete.StatusMul
		}
	}
	return kbcomplete.Ordering{Prec: prec, Stats: stats}
}

func symbolsOf(equations []kbcomplete.Equation) []kbcomplete.Symbol {
	seen := make(map[kbcomplete.Symbol]bool)
	var out []kbcomplete.Symbol
	collect := func(t *kbcomplete.Term) {
		for _, sym := range kbcomplete.Symbols(t) {
			if !seen[sym] {
				seen[sym] = true
				out = append(out, sym)
			}
		}
	}
	for _, eq := range equations {
		collect(eq.Left)
		collect(eq.Right)
	}
	return out
}
