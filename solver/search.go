package solver

import (
	"context"

	"github.com/ole-thoeb/rusty-solver/lit"
	"github.com/pkg/errors"
)

// searchState is the tagged state of the search driver. The driver is a flat
// loop over an explicit state value rather than recursive calls, so decision
// depth never grows the Go stack.
type searchState uint8

const (
	stateDeciding searchState = iota
	statePropagating
	stateConflictHandling
	stateRestarting
	stateSatisfied
	stateUnsatisfiable
	stateResourceExhausted
)

// String implements the Stringer interface.
func (st searchState) String() string {
	switch st {
	case stateDeciding:
		return "deciding"
	case statePropagating:
		return "propagating"
	case stateConflictHandling:
		return "conflict-handling"
	case stateRestarting:
		return "restarting"
	case stateSatisfied:
		return "satisfied"
	case stateUnsatisfiable:
		return "unsatisfiable"
	case stateResourceExhausted:
		return "resource-exhausted"
	default:
		return "invalid"
	}
}

// search runs the state machine until a terminal state. The initial state is
// a propagation pass at level 0, which flushes the original unit facts. The
// reason return value describes why a resource-exhausted run ended.
func (s *Solver) search(ctx context.Context) (searchState, string) {
	state := statePropagating
	conflRef := RefUndef
	var sinceRestart uint64

	for {
		switch state {
		case statePropagating:
			if conflRef = s.propagate(); conflRef != RefUndef {
				state = stateConflictHandling
			} else {
				state = stateDeciding
			}

		case stateDeciding:
			// Resource limits and cooperative cancellation are only checked
			// here, between major transitions.
			if err := ctx.Err(); err != nil {
				return stateResourceExhausted, err.Error()
			}
			if s.conf.ConflictLimit > 0 && s.stats.Conflicts >= s.conf.ConflictLimit {
				return stateResourceExhausted, "conflict limit reached"
			}
			if s.trail.len() == s.trail.nVars() {
				state = stateSatisfied
				continue
			}
			if s.trail.level() == 0 {
				s.simplifyLearnts()
			}
			if s.heur.ShouldDeleteClauses(len(s.learnts)) {
				s.reduceLearnts()
			}
			if s.heur.ShouldRestart(sinceRestart) {
				state = stateRestarting
				continue
			}
			p := s.heur.SelectDecisionLiteral()
			if p == lit.Undef {
				panic(errors.New("no decision literal with unassigned variables remaining"))
			}
			s.stats.Decisions++
			s.trail.newLevel()
			if err := s.trail.push(p, RefUndef); err != nil {
				panic(errors.Wrap(err, "decision"))
			}
			s.propQ.Insert(p)
			state = statePropagating

		case stateConflictHandling:
			s.stats.Conflicts++
			sinceRestart++
			if s.trail.level() == 0 {
				state = stateUnsatisfiable
				continue
			}
			learnt, btLevel := s.analyze(conflRef)
			s.heur.OnConflictBump(s.involved)
			s.trail.popTo(btLevel)
			ok := s.recordLearnt(learnt)
			s.heur.OnDecay()
			s.claDecayActivity()
			if !ok {
				// A learnt top-level fact whose negation is already forced.
				state = stateUnsatisfiable
				continue
			}
			state = statePropagating

		case stateRestarting:
			s.stats.Restarts++
			sinceRestart = 0
			s.trail.popTo(0)
			s.logger.WithField("restarts", s.stats.Restarts).Debug("restarting search")
			state = stateDeciding

		default:
			return state, ""
		}
	}
}
