// Package solver implements a conflict-driven clause learning (CDCL)
// satisfiability solver: unit propagation over two watched literals,
// first-UIP conflict analysis, activity-based decision heuristics,
// configurable restarts and learnt-clause deletion.
package solver

import (
	"context"
	"fmt"
	"sort"

	"github.com/ole-thoeb/rusty-solver/config"
	"github.com/ole-thoeb/rusty-solver/encoding"
	"github.com/ole-thoeb/rusty-solver/lit"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	VersionMajor = 1
	VersionMinor = 0
)

// Solver is the SAT solver. It owns all run state: the constraint store, the
// assignment trail, the watch lists and the heuristic. A Solver must not be
// shared between goroutines; independent runs get independent Solvers.
type Solver struct {
	conf   *config.Config
	logger logrus.FieldLogger

	// Model Database Fields

	// userVars maps user-defined variables to internal variable indices.
	userVars map[int]int
	// internalVars maps internal variable indices back to user variables.
	internalVars []int
	// model stores the most recently discovered model.
	model map[int]bool

	// Constraint Database Fields

	// store owns every clause; all other components reference by ClauseRef.
	store *store
	// learnts lists the live learnt clause references.
	learnts []ClauseRef
	// claInc is the clause activity increment.
	claInc float64
	// claDecay is the decay factor for clause activity.
	claDecay float64

	// Propagation Fields

	// watches holds, per literal, the clauses watching its negation.
	watches [][]watcher
	// propQ is the propagation queue.
	propQ *lit.Queue

	// Assignment Fields

	// trail records assignments with the metadata to undo them in LIFO order.
	trail *trail
	// heur is the injected decision/restart/deletion strategy.
	heur Heuristic

	// Conflict Analysis Scratch

	seen      []bool
	toClear   []int
	learntBuf []lit.Lit
	involved  []lit.Lit

	// stats keeps the run counters.
	stats Statistics
	// contradiction is set when construction or search proved the instance
	// unsatisfiable at the top level.
	contradiction bool
	// solved is set once Solve reached a terminal verdict; further Solve
	// calls are rejected with ErrSolved.
	solved bool
}

// New returns a new initialized solver. A nil config selects the defaults.
func New(conf *config.Config) *Solver {
	if conf == nil {
		conf = config.New()
	}
	logger := conf.Logger
	if logger == nil {
		logger = logrus.New()
	}
	return &Solver{
		conf:     conf,
		logger:   logger,
		userVars: map[int]int{},
		model:    map[int]bool{},
		store:    newStore(),
		propQ:    lit.NewQueue(),
		trail:    newTrail(),
	}
}

// Version returns the version of the solver.
func Version() string {
	return fmt.Sprintf("%d.%d", VersionMajor, VersionMinor)
}

// AddClause adds an original clause given as signed user variables. An empty
// clause returns ErrEmptyClause and makes the instance unsatisfiable. Clauses
// that simplify away entirely (tautologies, clauses already satisfied at the
// top level) are accepted and dropped.
func (s *Solver) AddClause(ps []int) error {
	if len(ps) == 0 {
		s.contradiction = true
		return ErrEmptyClause
	}
	lits := make([]lit.Lit, 0, len(ps))
	for _, p := range ps {
		if p == 0 {
			return errors.New("solver: literal 0 is reserved")
		}
		lits = append(lits, s.newVar(lit.NewFromInt(p)))
	}

	simplified, skip := s.simplifyNew(lits)
	if skip {
		return nil
	}
	switch len(simplified) {
	case 0:
		// Every literal is false at the top level.
		s.contradiction = true
	case 1:
		if !s.enqueue(simplified[0], RefUndef) {
			s.contradiction = true
		}
	default:
		c := &Clause{lits: simplified}
		ref := s.store.add(c)
		s.watch(c, ref)
	}
	return nil
}

// AddInstance registers the declared variables of a parsed instance and adds
// all its clauses. An empty clause in the instance is valid, trivially
// unsatisfiable input: the contradiction is recorded and Solve reports
// Unsatisfiable, rather than an error.
func (s *Solver) AddInstance(inst *encoding.Instance) error {
	for v := 1; v <= inst.NumVars; v++ {
		s.newVar(lit.NewFromInt(v))
	}
	for i, clause := range inst.Clauses {
		if err := s.AddClause(clause); err != nil {
			if errors.Is(err, ErrEmptyClause) {
				continue
			}
			return errors.Wrapf(err, "clause %d", i+1)
		}
	}
	return nil
}

// Solve runs the search to a verdict. The context carries cooperative
// cancellation and, combined with the configured time limit, bounds the run;
// exceeding a bound is not an error but an Unknown result, and such a run may
// be resumed by calling Solve again. After a terminal verdict the solver is
// spent and further calls return ErrSolved. A non-nil error reports misuse, a
// configuration problem or an internal invariant violation, never an
// unsatisfiable instance.
func (s *Solver) Solve(ctx context.Context) (res Result, err error) {
	if s.solved {
		return Result{Status: Unknown, Reason: "already solved", Stats: s.stats}, ErrSolved
	}
	defer func() {
		// An invariant violation must abort the run rather than return a
		// possibly wrong verdict.
		if r := recover(); r != nil {
			res = Result{Status: Unknown, Reason: "internal error", Stats: s.stats}
			err = errors.Errorf("solver: invariant violation: %v", r)
		}
	}()

	if err := s.conf.Validate(); err != nil {
		return Result{Status: Unknown, Reason: "invalid configuration", Stats: s.stats}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if s.conf.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.conf.TimeLimit)
		defer cancel()
	}

	s.model = map[int]bool{}
	if s.contradiction {
		// Construction already found a top-level contradiction; the search
		// loop is never entered.
		s.solved = true
		return Result{Status: Unsatisfiable, Stats: s.stats}, nil
	}

	heur, err := newHeuristic(s.conf, s.trail, s.store.numOriginals())
	if err != nil {
		return Result{Status: Unknown, Reason: "invalid configuration", Stats: s.stats}, err
	}
	s.heur = heur
	s.trail.onUnassign = heur.OnUnassign
	s.claInc = 1.0
	s.claDecay = 1 / s.conf.ClaDecay

	s.logger.WithFields(logrus.Fields{
		"vars":    s.NVars(),
		"clauses": s.NConstrs(),
	}).Debug("starting search")

	state, reason := s.search(ctx)

	switch state {
	case stateSatisfied:
		s.solved = true
		for i := 0; i < s.trail.nVars(); i++ {
			s.model[s.internalVars[i]] = s.trail.varValue(i).Bool()
		}
		s.trail.popTo(0)
		s.logger.WithField("decisions", s.stats.Decisions).Debug("model found")
		return Result{Status: Satisfiable, Model: s.Model(), Stats: s.stats}, nil

	case stateUnsatisfiable:
		s.solved = true
		s.trail.popTo(0)
		s.contradiction = true
		return Result{Status: Unsatisfiable, Stats: s.stats}, nil

	default:
		s.trail.popTo(0)
		return Result{Status: Unknown, Reason: reason, Stats: s.stats}, nil
	}
}

// Model returns a copy of the most recently discovered model, mapping user
// variables to their values.
func (s *Solver) Model() map[int]bool {
	model := make(map[int]bool, len(s.model))
	for v, val := range s.model {
		model[v] = val
	}
	return model
}

// Answer returns the most recent model as a sorted list of signed user
// variables, DIMACS style.
func (s *Solver) Answer() []int {
	ps := make([]int, 0, len(s.model))
	for p, val := range s.model {
		if val {
			ps = append(ps, p)
		} else {
			ps = append(ps, -p)
		}
	}
	sort.Slice(ps, func(i, j int) bool {
		i, j = ps[i], ps[j]

		if i < 0 {
			i = -i
		}
		if j < 0 {
			j = -j
		}
		return i < j
	})
	return ps
}

// Stats returns the run counters.
func (s *Solver) Stats() Statistics {
	return s.stats
}

// NVars returns the number of variables.
func (s *Solver) NVars() int {
	return s.trail.nVars()
}

// NAssigns returns the number of assignments made.
func (s *Solver) NAssigns() int {
	return s.trail.len()
}

// NConstrs returns the number of original constraints.
func (s *Solver) NConstrs() int {
	return s.store.numOriginals()
}

// NLearnts returns the number of live learnt clauses.
func (s *Solver) NLearnts() int {
	return s.store.numLearnts()
}

// NConflicts returns the number of conflicts that have occurred.
func (s *Solver) NConflicts() uint64 {
	return s.stats.Conflicts
}

// NPropagations returns the number of propagations that have occurred.
func (s *Solver) NPropagations() uint64 {
	return s.stats.Propagations
}

// NRestarts returns the number of restarts that have occurred.
func (s *Solver) NRestarts() uint64 {
	return s.stats.Restarts
}

// NDecisions returns the number of decisions made.
func (s *Solver) NDecisions() uint64 {
	return s.stats.Decisions
}

// newVar interns a user variable, growing the per-variable state, and
// returns the literal in internal encoding.
func (s *Solver) newVar(p lit.Lit) lit.Lit {
	idx, ok := s.userVars[p.Var()]
	if !ok {
		idx = s.trail.nVars()
		s.userVars[p.Var()] = idx
		s.internalVars = append(s.internalVars, p.Var())
		s.trail.newVar()
		s.watches = append(s.watches, nil, nil)
		s.seen = append(s.seen, false)
	}
	return lit.New(idx, p.Sign())
}
