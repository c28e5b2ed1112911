package solver

import "github.com/pkg/errors"

var (
	// ErrEmptyClause is returned when a clause with no literals is added. An
	// empty clause denotes immediate unsatisfiability.
	ErrEmptyClause = errors.New("solver: empty clause")

	// ErrAlreadyAssigned is returned when a value is pushed for a variable
	// that already holds one.
	ErrAlreadyAssigned = errors.New("solver: variable already assigned")

	// ErrSolved is returned when Solve is called again after a terminal
	// verdict. A solver is single-shot; runs ending Unknown may be retried.
	ErrSolved = errors.New("solver: already solved")
)
