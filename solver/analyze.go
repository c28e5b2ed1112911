package solver

import "github.com/ole-thoeb/rusty-solver/lit"

// analyze derives a learnt clause from a conflict using first-UIP resolution:
// the trail is walked backward from the conflict, resolving against the
// antecedent of the most recently assigned marked literal, until exactly one
// literal of the current decision level remains. The trail itself is not
// mutated; backtracking is the search driver's job.
//
// The returned slice is a buffer reused across calls. Its first literal is
// the asserting one and its second (when present) belongs to the returned
// backtrack level, so the recorded clause becomes unit immediately after
// backtracking there.
func (s *Solver) analyze(conflRef ClauseRef) ([]lit.Lit, int) {
	s.learntBuf = append(s.learntBuf[:0], lit.Undef)
	s.involved = s.involved[:0]

	p := lit.Undef
	ref := conflRef
	counter := 0
	idx := s.trail.len() - 1

	for {
		c := s.store.get(ref)
		if c.learnt {
			s.claBumpActivity(c)
		}

		// Trace the reason for p. For an antecedent clause, lits[0] is the
		// literal that was propagated, so it is skipped.
		start := 0
		if p != lit.Undef {
			start = 1
		}
		for i := start; i < len(c.lits); i++ {
			q := c.lits[i]
			v := q.Index()

			if s.seen[v] || s.trail.levelOf(v) == 0 {
				continue
			}
			s.seen[v] = true
			s.toClear = append(s.toClear, v)
			s.involved = append(s.involved, q)

			if s.trail.levelOf(v) == s.trail.level() {
				counter++
			} else {
				s.learntBuf = append(s.learntBuf, q)
			}
		}

		// Select the next marked literal to resolve on.
		for !s.seen[s.trail.at(idx).Index()] {
			idx--
		}
		p = s.trail.at(idx)
		s.seen[p.Index()] = false
		idx--
		counter--

		if counter == 0 {
			break
		}
		ref = s.trail.reasonOf(p.Index())
	}
	s.learntBuf[0] = p.Not()

	// The backtrack level is the second-highest decision level in the learnt
	// clause; its literal moves to the second watch position.
	btLevel := 0
	if len(s.learntBuf) > 1 {
		maxIdx := 1
		for i := 1; i < len(s.learntBuf); i++ {
			if lvl := s.trail.levelOf(s.learntBuf[i].Index()); lvl > btLevel {
				btLevel = lvl
				maxIdx = i
			}
		}
		s.learntBuf[1], s.learntBuf[maxIdx] = s.learntBuf[maxIdx], s.learntBuf[1]
	}

	for _, v := range s.toClear {
		s.seen[v] = false
	}
	s.toClear = s.toClear[:0]

	return s.learntBuf, btLevel
}

// recordLearnt stores a learnt clause and enqueues its asserting literal. It
// returns false when a learnt top-level fact contradicts another level-0
// assignment, in which case the instance is unsatisfiable.
func (s *Solver) recordLearnt(learnt []lit.Lit) bool {
	s.stats.Learnts++

	if len(learnt) == 1 {
		// A top-level fact. Recording it can only fail when its negation is
		// already forced at level 0.
		return s.enqueue(learnt[0], RefUndef)
	}

	lits := make([]lit.Lit, len(learnt))
	copy(lits, learnt)

	c := &Clause{lits: lits, learnt: true}
	ref := s.store.add(c)
	s.learnts = append(s.learnts, ref)
	s.watch(c, ref)
	s.claBumpActivity(c)

	if !s.enqueue(lits[0], ref) {
		panic("learnt clause not asserting after backtrack")
	}
	return true
}
