package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ole-thoeb/rusty-solver/lit"
)

func newTestTrail(nVars int) *trail {
	t := newTrail()
	for i := 0; i < nVars; i++ {
		t.newVar()
	}
	return t
}

func TestTrailPush(t *testing.T) {
	tr := newTestTrail(2)

	require.NoError(t, tr.push(lit.New(0, false), RefUndef))

	assert.True(t, tr.value(lit.New(0, false)).True())
	assert.True(t, tr.value(lit.New(0, true)).False())
	assert.Equal(t, 0, tr.levelOf(0))
	assert.Equal(t, RefUndef, tr.reasonOf(0))
	assert.Equal(t, 1, tr.len())
}

func TestTrailPushAlreadyAssigned(t *testing.T) {
	tr := newTestTrail(1)

	require.NoError(t, tr.push(lit.New(0, false), RefUndef))

	err := tr.push(lit.New(0, true), RefUndef)
	require.ErrorIs(t, err, ErrAlreadyAssigned)
}

func TestTrailPopTo(t *testing.T) {
	tr := newTestTrail(4)

	require.NoError(t, tr.push(lit.New(0, false), RefUndef)) // level 0 fact
	tr.newLevel()
	require.NoError(t, tr.push(lit.New(1, false), RefUndef))
	require.NoError(t, tr.push(lit.New(2, true), ClauseRef(7)))
	tr.newLevel()
	require.NoError(t, tr.push(lit.New(3, false), RefUndef))

	require.Equal(t, 2, tr.level())

	tr.popTo(1)

	assert.Equal(t, 1, tr.level())
	assert.True(t, tr.varValue(3).Undef())
	assert.Equal(t, -1, tr.levelOf(3))
	assert.Equal(t, RefUndef, tr.reasonOf(3))
	// Entries at or below the target level survive untouched.
	assert.True(t, tr.varValue(1).True())
	assert.False(t, tr.varValue(2).True())
	assert.Equal(t, ClauseRef(7), tr.reasonOf(2))

	tr.popTo(0)

	assert.Equal(t, 0, tr.level())
	for v := 1; v < 4; v++ {
		assert.True(t, tr.varValue(v).Undef(), "var %d still assigned", v)
		assert.LessOrEqual(t, tr.levelOf(v), 0)
	}
	// Level 0 facts are never popped.
	assert.True(t, tr.varValue(0).True())
}

func TestTrailPopToUnwindsInReverseOrder(t *testing.T) {
	tr := newTestTrail(3)

	var undone []int
	tr.onUnassign = func(v int) {
		undone = append(undone, v)
	}

	tr.newLevel()
	require.NoError(t, tr.push(lit.New(0, false), RefUndef))
	require.NoError(t, tr.push(lit.New(1, false), RefUndef))
	tr.newLevel()
	require.NoError(t, tr.push(lit.New(2, false), RefUndef))

	tr.popTo(0)

	assert.Equal(t, []int{2, 1, 0}, undone)
}

func TestTrailPopToNoopAtLevel(t *testing.T) {
	tr := newTestTrail(1)

	tr.newLevel()
	require.NoError(t, tr.push(lit.New(0, false), RefUndef))

	tr.popTo(1)

	assert.Equal(t, 1, tr.level())
	assert.True(t, tr.varValue(0).True())
}
