package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/trim21/errgo"

	"github.com/katalvlaran/lvlds/bst"
	"github.com/katalvlaran/lvlds/graph"
	"github.com/katalvlaran/lvlds/heap"
	"github.com/katalvlaran/lvlds/queue"
	"github.com/katalvlaran/lvlds/sorting"
	"github.com/katalvlaran/lvlds/stack"
)

type command func(args []string, out io.Writer) error

var commands = map[string]command{
	"sort":     runSort,
	"brackets": runBrackets,
	"heap":     runHeap,
	"bst":      runBST,
	"stack":    runStack,
	"bfs":      runBFS,
}

// newFlagSet returns a flag set for a subcommand carrying the shared
// --verbose flag.
func newFlagSet(name string) (*pflag.FlagSet, *bool) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	verbose := fs.BoolP("verbose", "v", false, "enable debug logging")
	return fs, verbose
}

func parse(fs *pflag.FlagSet, verbose *bool, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errgo.Wrap(err, "failed to parse flags")
	}
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return nil
}

// parseInts converts every argument to an int, reporting the first failure.
func parseInts(args []string) ([]int, error) {
	var firstErr error
	nums := lo.Map(args, func(s string, _ int) int {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil && firstErr == nil {
			firstErr = errgo.Wrap(err, fmt.Sprintf("invalid integer %q", s))
		}
		return v
	})
	return nums, firstErr
}

func runSort(args []string, out io.Writer) error {
	fs, verbose := newFlagSet("sort")
	name := fs.String("algo", "quick", "algorithm: bubble, insertion, heap or quick")
	if err := parse(fs, verbose, args); err != nil {
		return err
	}
	algo, err := sorting.ParseAlgorithm(*name)
	if err != nil {
		return err
	}
	nums, err := parseInts(fs.Args())
	if err != nil {
		return err
	}
	log.Debug().Stringer("algo", algo).Int("n", len(nums)).Msg("sorting")
	sorting.Sort(nums, algo)
	_, err = fmt.Fprintln(out, nums)
	return err
}

func runBrackets(args []string, out io.Writer) error {
	fs, verbose := newFlagSet("brackets")
	if err := parse(fs, verbose, args); err != nil {
		return err
	}
	for _, expr := range fs.Args() {
		ok := stack.Balanced(expr)
		log.Debug().Str("expr", expr).Bool("balanced", ok).Msg("checked")
		if _, err := fmt.Fprintf(out, "%s\t%t\n", expr, ok); err != nil {
			return err
		}
	}
	return nil
}

func runHeap(args []string, out io.Writer) error {
	fs, verbose := newFlagSet("heap")
	useMax := fs.Bool("max", false, "extract the largest element first")
	if err := parse(fs, verbose, args); err != nil {
		return err
	}
	nums, err := parseInts(fs.Args())
	if err != nil {
		return err
	}
	h := heap.NewMin[int]()
	if *useMax {
		h = heap.NewMax[int]()
	}
	for _, v := range nums {
		h.Add(v)
	}
	order := make([]int, 0, h.Len())
	for v := range h.Drain() {
		order = append(order, v)
	}
	_, err = fmt.Fprintln(out, order)
	return err
}

func runBST(args []string, out io.Writer) error {
	fs, verbose := newFlagSet("bst")
	find := fs.IntSlice("find", nil, "values to search for after inserting")
	if err := parse(fs, verbose, args); err != nil {
		return err
	}
	nums, err := parseInts(fs.Args())
	if err != nil {
		return err
	}
	tr := bst.New[int]()
	dups := lo.CountBy(nums, func(v int) bool { return !tr.Insert(v) })
	log.Debug().Int("inserted", tr.Len()).Int("duplicates", dups).Int("height", tr.Height()).Msg("tree built")

	var sorted []int
	for v := range tr.InOrder() {
		sorted = append(sorted, v)
	}
	if _, err := fmt.Fprintf(out, "len=%d height=%d inorder=%v\n", tr.Len(), tr.Height(), sorted); err != nil {
		return err
	}
	for _, v := range *find {
		if _, err := fmt.Fprintf(out, "%d\t%t\n", v, tr.Search(v)); err != nil {
			return err
		}
	}
	return nil
}

func runStack(args []string, out io.Writer) error {
	fs, verbose := newFlagSet("stack")
	useQueues := fs.Bool("queues", false, "use the two-queue stack")
	if err := parse(fs, verbose, args); err != nil {
		return err
	}

	type lifo interface {
		Push(string)
		Pop() (string, error)
		IsEmpty() bool
	}
	var s lifo = stack.New[string]()
	if *useQueues {
		s = queue.NewLIFO[string]()
	}
	for _, a := range fs.Args() {
		s.Push(a)
	}
	var popped []string
	for !s.IsEmpty() {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		popped = append(popped, v)
	}
	_, err := fmt.Fprintln(out, strings.Join(popped, " "))
	return err
}

func runBFS(args []string, out io.Writer) error {
	fs, verbose := newFlagSet("bfs")
	n := fs.Int("vertices", 0, "number of vertices")
	start := fs.Int("start", 0, "start vertex")
	depth := fs.Int("max-depth", 0, "depth limit, 0 for none")
	if err := parse(fs, verbose, args); err != nil {
		return err
	}
	nums, err := parseInts(fs.Args())
	if err != nil {
		return err
	}
	if len(nums)%2 != 0 {
		return fmt.Errorf("bfs: edge list needs an even number of endpoints, got %d", len(nums))
	}
	g, err := graph.New(*n)
	if err != nil {
		return err
	}
	for _, e := range lo.Chunk(nums, 2) {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return errgo.Wrap(err, fmt.Sprintf("failed to add edge %d-%d", e[0], e[1]))
		}
	}
	res, err := g.BFS(*start,
		graph.WithMaxDepth(*depth),
		graph.WithOnVisit(func(v, d int) error {
			log.Debug().Int("vertex", v).Int("depth", d).Msg("visit")
			return nil
		}),
	)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, res.Order)
	return err
}
