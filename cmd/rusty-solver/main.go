package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ole-thoeb/rusty-solver/config"
	"github.com/ole-thoeb/rusty-solver/encoding"
	"github.com/ole-thoeb/rusty-solver/solver"
)

// Exit codes, following the SAT competition convention.
const (
	exitSat     = 0
	exitUnsat   = 1
	exitUnknown = 2
	exitError   = 3
)

type options struct {
	configFile        string
	heuristic         string
	restartPolicy     string
	deletionThreshold int
	conflictLimit     uint64
	timeLimit         time.Duration
	varDecay          float64
	claDecay          float64
	portfolio         int
	verbose           bool
}

func main() {
	opts := &options{}

	root := &cobra.Command{
		Use:   "rusty-solver [input.cnf]",
		Short: "A conflict-driven clause learning SAT solver",
		Long: "rusty-solver reads a problem in DIMACS CNF format, from a file or from\n" +
			"standard input, and reports whether it is satisfiable.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "JSON options file")
	flags.StringVar(&opts.heuristic, "heuristic", config.HeuristicActivity, "decision heuristic (activity|static)")
	flags.StringVar(&opts.restartPolicy, "restarts", config.RestartGeometric, "restart policy (fixed|geometric|none)")
	flags.IntVar(&opts.deletionThreshold, "deletion-threshold", 0, "learnt clause count triggering deletion (0 = auto)")
	flags.Uint64Var(&opts.conflictLimit, "conflict-limit", 0, "abort after this many conflicts (0 = unbounded)")
	flags.DurationVar(&opts.timeLimit, "time-limit", 0, "abort after this much wall-clock time (0 = unbounded)")
	flags.Float64Var(&opts.varDecay, "decay-var", 0.95, "variable activity decay constant")
	flags.Float64Var(&opts.claDecay, "decay-cla", 0.999, "clause activity decay constant")
	flags.IntVarP(&opts.portfolio, "portfolio", "p", 1, "number of diversified parallel runs")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitError)
	}
}

func run(opts *options, args []string) error {
	conf, err := buildConfig(opts)
	if err != nil {
		return err
	}
	inst, err := readInstance(args)
	if err != nil {
		return err
	}
	conf.Logger.WithFields(logrus.Fields{
		"vars":    inst.NumVars,
		"clauses": len(inst.Clauses),
	}).Infof("starting rusty-solver %s", solver.Version())

	tStart := time.Now()
	res, err := solve(conf, opts.portfolio, inst)
	if err != nil {
		return err
	}
	displayStats(res.Stats, time.Since(tStart))

	switch res.Status {
	case solver.Satisfiable:
		fmt.Println("s SATISFIABLE")
		displayModel(res.Model)
		os.Exit(exitSat)
	case solver.Unsatisfiable:
		fmt.Println("s UNSATISFIABLE")
		os.Exit(exitUnsat)
	default:
		fmt.Println("s UNKNOWN")
		fmt.Fprintln(os.Stderr, "c", res.Reason)
		os.Exit(exitUnknown)
	}
	return nil
}

func solve(conf *config.Config, runs int, inst *encoding.Instance) (solver.Result, error) {
	if runs > 1 {
		p := solver.NewPortfolio(runs)
		for _, c := range p.Configs {
			c.Logger = conf.Logger
			c.ConflictLimit = conf.ConflictLimit
			c.TimeLimit = conf.TimeLimit
		}
		return p.Solve(context.Background(), inst)
	}
	sat := solver.New(conf)
	if err := sat.AddInstance(inst); err != nil {
		return solver.Result{}, err
	}
	return sat.Solve(context.Background())
}

func buildConfig(opts *options) (*config.Config, error) {
	conf := config.New()
	if opts.configFile != "" {
		loaded, err := config.LoadFile(opts.configFile)
		if err != nil {
			return nil, err
		}
		conf = loaded
	} else {
		conf.Heuristic = opts.heuristic
		conf.RestartPolicy = opts.restartPolicy
		conf.ClauseDeletionThreshold = opts.deletionThreshold
		conf.ConflictLimit = opts.conflictLimit
		conf.TimeLimit = opts.timeLimit
		conf.VarDecay = opts.varDecay
		conf.ClaDecay = opts.claDecay
	}
	conf.Verbose = opts.verbose

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if conf.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	conf.Logger = logger

	return conf, conf.Validate()
}

func readInstance(args []string) (*encoding.Instance, error) {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = bufio.NewReader(f)
	}
	return encoding.ParseDimacs(in)
}

func displayModel(model map[int]bool) {
	vars := lo.Keys(model)
	sort.Ints(vars)

	fmt.Print("v")
	for _, v := range vars {
		p := lo.Ternary(model[v], v, -v)
		fmt.Printf(" %d", p)
	}
	fmt.Println(" 0")
}

func displayStats(st solver.Statistics, t time.Duration) {
	fmt.Fprintf(os.Stderr, "c time taken:    %fs\n", t.Seconds())
	fmt.Fprintf(os.Stderr, "c decisions:     %d\n", st.Decisions)
	fmt.Fprintf(os.Stderr, "c propagations:  %d\n", st.Propagations)
	fmt.Fprintf(os.Stderr, "c conflicts:     %d\n", st.Conflicts)
	fmt.Fprintf(os.Stderr, "c restarts:      %d\n", st.Restarts)
	fmt.Fprintf(os.Stderr, "c learnt:        %d\n", st.Learnts)
	fmt.Fprintf(os.Stderr, "c deleted:       %d\n", st.Deleted)
}
