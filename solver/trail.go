package solver

import (
	"github.com/ole-thoeb/rusty-solver/lit"
	"github.com/ole-thoeb/rusty-solver/tribool"
	"github.com/pkg/errors"
)

// trail records assignments in chronological order together with the
// per-variable metadata needed to undo them in exact reverse: the decision
// level and the antecedent clause that forced the value.
type trail struct {
	// assigns holds the current value of every variable.
	assigns []tribool.Tribool
	// levels holds the decision level each variable was assigned at, -1 when
	// unassigned.
	levels []int
	// reasons holds the clause that forced each assignment, RefUndef for
	// decisions and unassigned variables.
	reasons []ClauseRef
	// entries is the chronological list of assignments.
	entries []lit.Lit
	// lim holds separator indices into entries, one per decision level.
	lim []int
	// onUnassign is invoked for every variable unbound during popTo, so
	// heuristic state can be unwound per assignment.
	onUnassign func(v int)
}

func newTrail() *trail {
	return &trail{}
}

// newVar grows the per-variable arrays by one unassigned variable.
func (t *trail) newVar() {
	t.assigns = append(t.assigns, tribool.Undef)
	t.levels = append(t.levels, -1)
	t.reasons = append(t.reasons, RefUndef)
}

func (t *trail) nVars() int {
	return len(t.assigns)
}

// value returns the value of a literal under the current assignment.
func (t *trail) value(p lit.Lit) tribool.Tribool {
	if p == lit.Undef {
		return tribool.Undef
	}
	if p.Sign() {
		return t.assigns[p.Index()].Not()
	}
	return t.assigns[p.Index()]
}

// varValue returns the value of a variable under the current assignment.
func (t *trail) varValue(v int) tribool.Tribool {
	return t.assigns[v]
}

// push appends one assignment at the current decision level.
func (t *trail) push(p lit.Lit, from ClauseRef) error {
	v := p.Index()
	if !t.assigns[v].Undef() {
		return errors.Wrapf(ErrAlreadyAssigned, "variable %d", p.Var())
	}
	t.assigns[v] = tribool.NewFromBool(!p.Sign())
	t.levels[v] = t.level()
	t.reasons[v] = from
	t.entries = append(t.entries, p)

	return nil
}

// newLevel opens a new decision level.
func (t *trail) newLevel() {
	t.lim = append(t.lim, len(t.entries))
}

// level returns the current decision level.
func (t *trail) level() int {
	return len(t.lim)
}

// levelOf returns the decision level a variable was assigned at.
func (t *trail) levelOf(v int) int {
	return t.levels[v]
}

// reasonOf returns the antecedent of a variable's assignment.
func (t *trail) reasonOf(v int) ClauseRef {
	return t.reasons[v]
}

// len returns the number of assignments made.
func (t *trail) len() int {
	return len(t.entries)
}

// at returns the i-th assignment in chronological order.
func (t *trail) at(i int) lit.Lit {
	return t.entries[i]
}

// popTo unassigns every entry with a decision level greater than level, in
// reverse chronological order, restoring exactly the state at entry to that
// level.
func (t *trail) popTo(level int) {
	for t.level() > level {
		target := t.lim[t.level()-1]
		for len(t.entries) > target {
			t.undoOne()
		}
		t.lim = t.lim[:t.level()-1]
	}
}

// undoOne unbinds the most recently assigned variable.
func (t *trail) undoOne() {
	p := t.entries[len(t.entries)-1]
	v := p.Index()

	t.assigns[v] = tribool.Undef
	t.levels[v] = -1
	t.reasons[v] = RefUndef
	t.entries = t.entries[:len(t.entries)-1]

	if t.onUnassign != nil {
		t.onUnassign(v)
	}
}
