package solver

import (
	"math"

	"github.com/ole-thoeb/rusty-solver/config"
)

// restartSchedule determines the conflict budget of each restart interval.
type restartSchedule interface {
	// Limit returns the number of conflicts allowed in the given interval
	// before a restart fires. Intervals are counted from 0.
	Limit(interval int) uint64
}

// newRestartSchedule builds the configured schedule. The config has been
// validated, so an unknown name means no restarts.
func newRestartSchedule(conf *config.Config) restartSchedule {
	switch conf.RestartPolicy {
	case config.RestartFixed:
		return fixedRestarts{interval: 550}
	case config.RestartGeometric:
		return geometricRestarts{start: 100, base: 2.0}
	default:
		return noRestarts{}
	}
}

// noRestarts never fires; the search runs a single decision path to
// completion.
type noRestarts struct{}

func (noRestarts) Limit(int) uint64 {
	return math.MaxUint64
}

// fixedRestarts fires after a constant number of conflicts.
type fixedRestarts struct {
	interval uint64
}

func (r fixedRestarts) Limit(int) uint64 {
	return r.interval
}

// geometricRestarts fires after start*base^interval conflicts, so each
// restart earns a longer budget than the previous one.
type geometricRestarts struct {
	start float64
	base  float64
}

func (r geometricRestarts) Limit(interval int) uint64 {
	return uint64(r.start * math.Pow(r.base, float64(interval)))
}
