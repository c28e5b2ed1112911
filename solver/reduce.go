package solver

import "sort"

// claBumpActivity bumps a learnt clause's activity.
func (s *Solver) claBumpActivity(c *Clause) {
	c.activity += s.claInc

	if c.activity+s.claInc > 1e20 {
		s.claRescaleActivity()
	}
}

// claDecayActivity applies decay to claInc.
func (s *Solver) claDecayActivity() {
	s.claInc *= s.claDecay
}

// claRescaleActivity rescales clause activity.
func (s *Solver) claRescaleActivity() {
	for _, ref := range s.learnts {
		s.store.get(ref).activity *= 1e-20
	}
	s.claInc *= 1e-20
}

// locked returns true while the clause is the antecedent of an assignment
// and must not be deleted.
func (s *Solver) locked(ref ClauseRef, c *Clause) bool {
	return s.trail.reasonOf(c.lits[0].Index()) == ref
}

// simplifyLearnts shrinks the learnt database against the top-level
// assignment: satisfied clauses are removed and false literals are stripped.
// Must only be called at decision level 0 with propagation at fixpoint, so
// watched literals are never stripped.
func (s *Solver) simplifyLearnts() {
	j := 0
	for _, ref := range s.learnts {
		c := s.store.get(ref)
		if !s.locked(ref, c) && s.clauseSimplify(c) {
			s.removeClause(ref)
		} else {
			s.learnts[j] = ref
			j++
		}
	}
	s.learnts = s.learnts[:j]
}

// clauseSimplify strips literals that are false at the top level, returning
// true when the clause is satisfied there and can be dropped entirely.
func (s *Solver) clauseSimplify(c *Clause) bool {
	j := 0
	for i := 0; i < len(c.lits); i++ {
		if s.trail.value(c.lits[i]).True() {
			return true
		}
		if s.trail.value(c.lits[i]).Undef() {
			c.lits[j] = c.lits[i]
			j++
		}
	}
	c.lits = c.lits[:j]

	return false
}

// reduceLearnts removes roughly half of the learnt clauses, keeping binary
// clauses, locked clauses and the more active half.
func (s *Solver) reduceLearnts() {
	s.stats.Reductions++

	sort.Slice(s.learnts, func(i, j int) bool {
		return s.store.get(s.learnts[i]).activity < s.store.get(s.learnts[j]).activity
	})
	lim := s.claInc / float64(len(s.learnts))

	j := 0
	for i, ref := range s.learnts {
		c := s.store.get(ref)
		if c.Len() > 2 && !s.locked(ref, c) && (i < len(s.learnts)/2 || c.activity < lim) {
			s.removeClause(ref)
		} else {
			s.learnts[j] = ref
			j++
		}
	}
	s.learnts = s.learnts[:j]

	s.logger.WithField("remaining", len(s.learnts)).Debug("reduced learnt database")
}
