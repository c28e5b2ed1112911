// Package config holds the solver's run configuration.
package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Recognized heuristic names.
const (
	HeuristicActivity = "activity"
	HeuristicStatic   = "static"
)

// Recognized restart policy names.
const (
	RestartFixed     = "fixed"
	RestartGeometric = "geometric"
	RestartNone      = "none"
)

var (
	heuristics      = []string{HeuristicActivity, HeuristicStatic}
	restartPolicies = []string{RestartFixed, RestartGeometric, RestartNone}
)

// Config configures a single solving run.
type Config struct {
	// Heuristic selects the decision heuristic: "activity" or "static".
	Heuristic string `mapstructure:"heuristic"`
	// RestartPolicy selects the restart schedule: "fixed", "geometric" or
	// "none".
	RestartPolicy string `mapstructure:"restartPolicy"`
	// ClauseDeletionThreshold is the learnt clause count that triggers a
	// database reduction. 0 derives the threshold from the instance size.
	ClauseDeletionThreshold int `mapstructure:"clauseDeletionThreshold"`
	// ConflictLimit bounds the total number of conflicts. 0 is unbounded.
	ConflictLimit uint64 `mapstructure:"conflictLimit"`
	// TimeLimit bounds the wall-clock time of a run. 0 is unbounded.
	TimeLimit time.Duration `mapstructure:"timeLimit"`
	// VarDecay is the variable activity decay constant.
	VarDecay float64 `mapstructure:"varDecay"`
	// ClaDecay is the clause activity decay constant.
	ClaDecay float64 `mapstructure:"claDecay"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
	// Logger receives the solver's log output.
	Logger logrus.FieldLogger `mapstructure:"-"`
}

// New returns a config with the default policies.
func New() *Config {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	return &Config{
		Heuristic:     HeuristicActivity,
		RestartPolicy: RestartGeometric,
		VarDecay:      0.95,
		ClaDecay:      0.999,
		Logger:        logger,
	}
}

// FromMap overlays options decoded from a generic map, as produced by a JSON
// or YAML reader. Duration values may be given as strings ("30s").
func (c *Config) FromMap(m map[string]interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return errors.Wrap(err, "config: build decoder")
	}
	if err := dec.Decode(m); err != nil {
		return errors.Wrap(err, "config: decode")
	}
	return c.Validate()
}

// LoadFile reads a JSON options file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}
	m := map[string]interface{}{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, errors.Wrapf(err, "config: parse %s", path)
	}
	c := New()
	if err := c.FromMap(m); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks option values and ranges.
func (c *Config) Validate() error {
	if !lo.Contains(heuristics, c.Heuristic) {
		return errors.Errorf("config: unknown heuristic %q", c.Heuristic)
	}
	if !lo.Contains(restartPolicies, c.RestartPolicy) {
		return errors.Errorf("config: unknown restart policy %q", c.RestartPolicy)
	}
	if c.VarDecay <= 0 || c.VarDecay > 1 {
		return errors.Errorf("config: variable decay %v outside (0, 1]", c.VarDecay)
	}
	if c.ClaDecay <= 0 || c.ClaDecay > 1 {
		return errors.Errorf("config: clause decay %v outside (0, 1]", c.ClaDecay)
	}
	if c.ClauseDeletionThreshold < 0 {
		return errors.Errorf("config: negative clause deletion threshold %d",
			c.ClauseDeletionThreshold)
	}
	if c.TimeLimit < 0 {
		return errors.Errorf("config: negative time limit %v", c.TimeLimit)
	}
	return nil
}
