package solver

import (
	"github.com/ole-thoeb/rusty-solver/lit"
	"github.com/pkg/errors"
)

// watcher is a watch-list entry. The blocker is some other literal of the
// clause; when it is already true the clause is satisfied and the store
// lookup is skipped entirely.
type watcher struct {
	ref     ClauseRef
	blocker lit.Lit
}

// watch registers the clause's first two literals in the watch lists. A
// clause is visited when one of its watched literals becomes false, which is
// when its negation is assigned.
func (s *Solver) watch(c *Clause, ref ClauseRef) {
	w0 := c.lits[0].Not()
	w1 := c.lits[1].Not()
	s.watches[w0] = append(s.watches[w0], watcher{ref, c.lits[1]})
	s.watches[w1] = append(s.watches[w1], watcher{ref, c.lits[0]})
}

// unwatch removes the clause's entry from p's watch list.
func (s *Solver) unwatch(ref ClauseRef, p lit.Lit) {
	ws := s.watches[p]
	for i := range ws {
		if ws[i].ref == ref {
			ws[i] = ws[len(ws)-1]
			s.watches[p] = ws[:len(ws)-1]
			return
		}
	}
}

// removeClause detaches a learnt clause's watches and drops it from the
// store.
func (s *Solver) removeClause(ref ClauseRef) {
	c := s.store.get(ref)
	s.unwatch(ref, c.lits[0].Not())
	s.unwatch(ref, c.lits[1].Not())
	s.store.remove(ref)
	s.stats.Deleted++
}

// enqueue puts a new fact into the propagation queue. It returns false when
// the fact contradicts the current assignment.
func (s *Solver) enqueue(p lit.Lit, from ClauseRef) bool {
	switch {
	case s.trail.value(p).False():
		return false
	case s.trail.value(p).True():
		return true
	}
	if err := s.trail.push(p, from); err != nil {
		panic(errors.Wrap(err, "enqueue after undef check"))
	}
	s.propQ.Insert(p)

	return true
}

// propagate derives forced assignments until a fixpoint or a conflict. It
// returns the conflicting clause's reference, or RefUndef at fixpoint. This
// is the performance-critical inner loop: watch lists are compacted in place
// and nothing is allocated per call.
func (s *Solver) propagate() ClauseRef {
	for s.propQ.Size() > 0 {
		p := s.propQ.Dequeue()
		s.stats.Propagations++

		ws := s.watches[p]
		j := 0
		for i := 0; i < len(ws); i++ {
			w := ws[i]

			if s.trail.value(w.blocker).True() {
				ws[j] = w
				j++
				continue
			}
			c := s.store.get(w.ref)

			// Make sure the false literal is lits[1].
			np := p.Not()
			if c.lits[0] == np {
				c.lits[0], c.lits[1] = c.lits[1], np
			}
			first := c.lits[0]

			// If the 0th watch is true, the clause is already satisfied.
			if first != w.blocker && s.trail.value(first).True() {
				ws[j] = watcher{w.ref, first}
				j++
				continue
			}

			// Look for a new literal to watch and move the clause to its
			// watch list.
			if k := c.findWatch(s.trail); k >= 0 {
				c.lits[1], c.lits[k] = c.lits[k], c.lits[1]
				moved := c.lits[1].Not()
				s.watches[moved] = append(s.watches[moved], watcher{w.ref, first})
				continue
			}

			// Clause is unit under assignment, or in conflict.
			ws[j] = watcher{w.ref, first}
			j++
			if !s.enqueue(first, w.ref) {
				// Conflict: keep the unvisited watchers and flush the queue.
				for i++; i < len(ws); i++ {
					ws[j] = ws[i]
					j++
				}
				s.watches[p] = ws[:j]
				s.propQ.Clear()

				return w.ref
			}
		}
		s.watches[p] = ws[:j]
	}
	return RefUndef
}
