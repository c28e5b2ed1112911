package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ole-thoeb/rusty-solver/config"
)

func TestGeometricRestartsGrow(t *testing.T) {
	sched := geometricRestarts{start: 100, base: 2.0}

	assert.Equal(t, uint64(100), sched.Limit(0))
	assert.Equal(t, uint64(200), sched.Limit(1))
	assert.Equal(t, uint64(400), sched.Limit(2))
	assert.Equal(t, uint64(800), sched.Limit(3))
}

func TestFixedRestartsConstant(t *testing.T) {
	sched := fixedRestarts{interval: 550}

	assert.Equal(t, uint64(550), sched.Limit(0))
	assert.Equal(t, uint64(550), sched.Limit(9))
}

func TestNoRestartsNeverFire(t *testing.T) {
	assert.Equal(t, uint64(math.MaxUint64), noRestarts{}.Limit(0))
}

func TestNewRestartSchedule(t *testing.T) {
	conf := config.New()

	conf.RestartPolicy = config.RestartGeometric
	assert.IsType(t, geometricRestarts{}, newRestartSchedule(conf))

	conf.RestartPolicy = config.RestartFixed
	assert.IsType(t, fixedRestarts{}, newRestartSchedule(conf))

	conf.RestartPolicy = config.RestartNone
	assert.IsType(t, noRestarts{}, newRestartSchedule(conf))
}
