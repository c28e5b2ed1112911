package solver

import (
	"sort"
	"strings"

	"github.com/ole-thoeb/rusty-solver/lit"
)

// Clause is a CNF clause: at least one of its literals must be true. The
// first two literals are the watched ones.
type Clause struct {
	lits     []lit.Lit
	learnt   bool
	activity float64
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Learnt returns true for clauses derived during search.
func (c *Clause) Learnt() bool {
	return c.learnt
}

// String implements the Stringer interface.
func (c *Clause) String() string {
	litStrs := make([]string, 0, len(c.lits))
	for _, p := range c.lits {
		litStrs = append(litStrs, p.String())
	}
	return strings.Join(litStrs, ",")
}

// findWatch returns the index of a literal beyond the watched pair that can
// take over a watch, or -1 when every remaining literal is false.
func (c *Clause) findWatch(t *trail) int {
	for k := 2; k < len(c.lits); k++ {
		if !t.value(c.lits[k]).False() {
			return k
		}
	}
	return -1
}

// simplifyNew prepares the literals of a new original clause: sorts them,
// drops duplicates and literals already false at the top level, and
// recognizes clauses that are tautological or already satisfied. Such clauses
// are reported via skip and must not be stored.
func (s *Solver) simplifyNew(lits []lit.Lit) (out []lit.Lit, skip bool) {
	sort.Slice(lits, func(i, j int) bool {
		return lits[i] < lits[j]
	})

	idx := 0
	last := lit.Undef

	for _, p := range lits {
		switch {
		case s.trail.value(p).True():
			// Clause already satisfied at the top level.
			return nil, true
		case p == last:
			continue
		case p == last.Not():
			// Tautology: always satisfied, never stored.
			return nil, true
		case s.trail.value(p).False():
			continue
		}
		lits[idx] = p
		last = p
		idx++
	}
	return lits[:idx], false
}
