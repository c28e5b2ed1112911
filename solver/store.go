package solver

import "github.com/pkg/errors"

// ClauseRef is an opaque id referencing a clause inside the store. Every
// component outside the store refers to clauses only by ClauseRef, never by
// pointer, so ownership stays with the store.
type ClauseRef int

// RefUndef denotes the absence of a clause reference.
const RefUndef = ClauseRef(-1)

// store owns all clauses of a run. Original clauses are immutable and never
// removed; learnt clauses may be removed under the deletion policy, leaving a
// hole so that references stay stable.
type store struct {
	clauses   []*Clause
	originals int
	learnts   int
}

func newStore() *store {
	return &store{}
}

// add appends a clause and returns its reference.
func (st *store) add(c *Clause) ClauseRef {
	st.clauses = append(st.clauses, c)
	if c.learnt {
		st.learnts++
	} else {
		st.originals++
	}
	return ClauseRef(len(st.clauses) - 1)
}

// get returns the clause for a reference in O(1).
func (st *store) get(ref ClauseRef) *Clause {
	c := st.clauses[ref]
	if c == nil {
		panic(errors.Errorf("solver: stale clause reference %d", ref))
	}
	return c
}

// remove drops a learnt clause from the store. The caller must have detached
// its watches first.
func (st *store) remove(ref ClauseRef) {
	c := st.clauses[ref]
	if c == nil || !c.learnt {
		panic(errors.Errorf("solver: remove of non-learnt clause %d", ref))
	}
	st.clauses[ref] = nil
	st.learnts--
}

func (st *store) numOriginals() int {
	return st.originals
}

func (st *store) numLearnts() int {
	return st.learnts
}
