package solver

import (
	"github.com/ole-thoeb/rusty-solver/config"
	"github.com/ole-thoeb/rusty-solver/lit"
	"github.com/ole-thoeb/rusty-solver/order"
	"github.com/pkg/errors"
)

// Heuristic bundles the strategy decisions the search driver delegates:
// which literal to decide on, how conflicts feed back into variable scores,
// and when to restart or shrink the learnt database. Implementations are
// injected at configuration time; the driver never depends on a concrete
// variant.
type Heuristic interface {
	// SelectDecisionLiteral returns the next decision literal, or lit.Undef
	// when no unassigned variable is left.
	SelectDecisionLiteral() lit.Lit
	// OnConflictBump credits the given literals with involvement in a
	// conflict.
	OnConflictBump(involved []lit.Lit)
	// OnUnassign is invoked for every variable unbound while backtracking.
	OnUnassign(v int)
	// OnDecay is invoked once per conflict, after bumping.
	OnDecay()
	// ShouldRestart reports whether the current decision path should be
	// abandoned. Returning true starts the next restart interval.
	ShouldRestart(conflictsSinceRestart uint64) bool
	// ShouldDeleteClauses reports whether the learnt database grew past the
	// deletion threshold. Returning true grows the threshold.
	ShouldDeleteClauses(learnedCount int) bool
}

// newHeuristic builds the configured heuristic over the current instance.
func newHeuristic(conf *config.Config, t *trail, nOriginals int) (Heuristic, error) {
	switch conf.Heuristic {
	case config.HeuristicActivity:
		return newActivityHeuristic(conf, t, nOriginals), nil
	case config.HeuristicStatic:
		return newStaticHeuristic(conf, t, nOriginals), nil
	default:
		return nil, errors.Errorf("solver: unknown heuristic %q", conf.Heuristic)
	}
}

// policies holds the restart and clause-deletion state shared by all
// heuristic variants.
type policies struct {
	schedule     restartSchedule
	restarts     int
	deleteLimit  float64
	deleteGrowth float64
}

func newPolicies(conf *config.Config, nOriginals int) policies {
	limit := float64(conf.ClauseDeletionThreshold)
	if limit == 0 {
		limit = float64(nOriginals) / 3.0
		if limit < 100 {
			limit = 100
		}
	}
	return policies{
		schedule:     newRestartSchedule(conf),
		deleteLimit:  limit,
		deleteGrowth: 1.1,
	}
}

func (p *policies) ShouldRestart(conflictsSinceRestart uint64) bool {
	if conflictsSinceRestart < p.schedule.Limit(p.restarts) {
		return false
	}
	p.restarts++
	return true
}

func (p *policies) ShouldDeleteClauses(learnedCount int) bool {
	if float64(learnedCount) < p.deleteLimit {
		return false
	}
	p.deleteLimit *= p.deleteGrowth
	return true
}

// activityHeuristic picks the unassigned variable with the highest activity
// score. Variables get bumped when involved in a conflict and all scores
// decay over time, so recently conflicting variables dominate.
type activityHeuristic struct {
	policies
	trail    *trail
	activity []float64
	order    *order.Order
	varInc   float64
	varDecay float64
}

func newActivityHeuristic(conf *config.Config, t *trail, nOriginals int) *activityHeuristic {
	h := &activityHeuristic{
		policies: newPolicies(conf, nOriginals),
		trail:    t,
		activity: make([]float64, t.nVars()),
		varInc:   1.0,
		varDecay: 1 / conf.VarDecay,
	}
	h.order = order.New(&t.assigns, &h.activity)
	for v := 0; v < t.nVars(); v++ {
		h.order.NewVar()
	}
	h.order.Init()

	return h
}

func (h *activityHeuristic) SelectDecisionLiteral() lit.Lit {
	v := h.order.Choose()
	if v < 0 {
		return lit.Undef
	}
	return lit.New(v, false)
}

func (h *activityHeuristic) OnConflictBump(involved []lit.Lit) {
	for _, q := range involved {
		v := q.Index()
		h.activity[v] += h.varInc
		if h.activity[v] > 1e100 {
			h.rescale()
		}
		h.order.Fix(v)
	}
}

func (h *activityHeuristic) OnUnassign(v int) {
	h.order.Push(v)
}

func (h *activityHeuristic) OnDecay() {
	h.varInc *= h.varDecay
}

func (h *activityHeuristic) rescale() {
	for i := range h.activity {
		h.activity[i] *= 1e-100
	}
	h.varInc *= 1e-100
}

// staticHeuristic picks the lowest-indexed unassigned variable. No scoring
// state; useful as a deterministic baseline and for diversifying portfolios.
type staticHeuristic struct {
	policies
	trail  *trail
	cursor int
}

func newStaticHeuristic(conf *config.Config, t *trail, nOriginals int) *staticHeuristic {
	return &staticHeuristic{
		policies: newPolicies(conf, nOriginals),
		trail:    t,
	}
}

func (h *staticHeuristic) SelectDecisionLiteral() lit.Lit {
	for ; h.cursor < h.trail.nVars(); h.cursor++ {
		if h.trail.varValue(h.cursor).Undef() {
			return lit.New(h.cursor, false)
		}
	}
	return lit.Undef
}

func (h *staticHeuristic) OnConflictBump([]lit.Lit) {}

func (h *staticHeuristic) OnUnassign(v int) {
	if v < h.cursor {
		h.cursor = v
	}
}

func (h *staticHeuristic) OnDecay() {}
