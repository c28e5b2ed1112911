package solver

import (
	"context"

	"github.com/ole-thoeb/rusty-solver/config"
	"github.com/ole-thoeb/rusty-solver/encoding"
	"github.com/pkg/errors"
)

// Portfolio solves one instance with several independently configured runs
// in parallel. Runs share nothing: each gets its own solver, constraint
// store, trail and heuristic. The first terminal verdict is adopted and the
// remaining runs are cancelled cooperatively, which they notice at their
// next decision.
type Portfolio struct {
	Configs []*config.Config
}

// NewPortfolio returns a portfolio of n runs with diversified restart and
// decision policies.
func NewPortfolio(n int) Portfolio {
	if n <= 0 {
		n = 1
	}
	configs := make([]*config.Config, n)
	for i := range configs {
		c := config.New()
		switch i % 3 {
		case 1:
			c.RestartPolicy = config.RestartFixed
		case 2:
			c.Heuristic = config.HeuristicStatic
			c.RestartPolicy = config.RestartNone
		}
		// Stagger the decay so activity-based runs explore different orders.
		c.VarDecay = 0.95 - 0.02*float64(i%3)
		configs[i] = c
	}
	return Portfolio{Configs: configs}
}

// Solve runs the portfolio over a parsed instance.
func (p Portfolio) Solve(ctx context.Context, inst *encoding.Instance) (Result, error) {
	if len(p.Configs) == 0 {
		return Result{Status: Unknown, Reason: "empty portfolio"},
			errors.New("solver: portfolio without configurations")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		res Result
		err error
	}
	results := make(chan outcome, len(p.Configs))

	for _, conf := range p.Configs {
		conf := conf
		go func() {
			s := New(conf)
			if err := s.AddInstance(inst); err != nil {
				results <- outcome{err: err}
				return
			}
			res, err := s.Solve(ctx)
			results <- outcome{res: res, err: err}
		}()
	}

	var (
		last     Result
		firstErr error
	)
	for range p.Configs {
		o := <-results
		if o.err != nil {
			if firstErr == nil {
				firstErr = o.err
			}
			continue
		}
		if o.res.Status != Unknown {
			return o.res, nil
		}
		last = o.res
	}
	if firstErr != nil {
		return Result{Status: Unknown, Reason: "internal error"}, firstErr
	}
	return last, nil
}
