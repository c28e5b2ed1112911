package solver

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ole-thoeb/rusty-solver/config"
	"github.com/ole-thoeb/rusty-solver/lit"
	"github.com/ole-thoeb/rusty-solver/tribool"
)

func testConfig() *config.Config {
	conf := config.New()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	conf.Logger = logger
	return conf
}

func addLits(s *Solver, ps ...int) []lit.Lit {
	lits := make([]lit.Lit, 0, len(ps))
	for _, p := range ps {
		lits = append(lits, s.newVar(lit.NewFromInt(p)))
	}
	return lits
}

func TestSimplifyDropsDuplicates(t *testing.T) {
	s := New(testConfig())
	lits := addLits(s, 1, 1, -2)

	simplified, skip := s.simplifyNew(lits)
	assert.False(t, skip)
	assert.Len(t, simplified, 2)
}

func TestSimplifyDetectsTautology(t *testing.T) {
	s := New(testConfig())
	lits := addLits(s, 1, -1, 2)

	_, skip := s.simplifyNew(lits)
	assert.True(t, skip)
}

func TestSimplifyDetectsSatisfiedClause(t *testing.T) {
	s := New(testConfig())
	lits := addLits(s, 1, 2)
	s.trail.assigns[0] = tribool.True

	_, skip := s.simplifyNew(lits)
	assert.True(t, skip)
}

func TestSimplifyDropsFalseLiterals(t *testing.T) {
	s := New(testConfig())
	lits := addLits(s, 1, 2, -3)
	s.trail.assigns[1] = tribool.False

	simplified, skip := s.simplifyNew(lits)
	assert.False(t, skip)
	assert.Len(t, simplified, 2)
}

func TestAddClauseEmpty(t *testing.T) {
	s := New(testConfig())

	err := s.AddClause([]int{})
	require.ErrorIs(t, err, ErrEmptyClause)
}

func TestAddClauseRejectsZeroLiteral(t *testing.T) {
	s := New(testConfig())

	require.Error(t, s.AddClause([]int{1, 0}))
}

func TestAddClauseUnitIsEnqueued(t *testing.T) {
	s := New(testConfig())

	require.NoError(t, s.AddClause([]int{-3}))

	// Variable 3 is the first one interned, so it maps to index 0.
	assert.True(t, s.trail.value(lit.New(0, true)).True())
	assert.Equal(t, 0, s.NConstrs())
}

func TestAddClauseTautologyNotStored(t *testing.T) {
	s := New(testConfig())

	require.NoError(t, s.AddClause([]int{1, -1}))
	assert.Equal(t, 0, s.NConstrs())
}

func TestStoreRemoveLearntOnly(t *testing.T) {
	st := newStore()
	orig := &Clause{lits: []lit.Lit{lit.New(0, false), lit.New(1, false)}}
	learnt := &Clause{lits: []lit.Lit{lit.New(0, true), lit.New(1, true)}, learnt: true}

	origRef := st.add(orig)
	learntRef := st.add(learnt)

	assert.Equal(t, 1, st.numOriginals())
	assert.Equal(t, 1, st.numLearnts())
	assert.Same(t, learnt, st.get(learntRef))

	st.remove(learntRef)
	assert.Equal(t, 0, st.numLearnts())
	assert.Panics(t, func() { st.get(learntRef) })
	assert.Panics(t, func() { st.remove(origRef) })
}
