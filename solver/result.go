package solver

// Status is the verdict of a solving run.
type Status uint8

const (
	// Unknown means the run ended before reaching a verdict, e.g. because a
	// resource limit was hit.
	Unknown Status = iota
	// Satisfiable means a model was found.
	Satisfiable
	// Unsatisfiable means no assignment satisfies the instance.
	Unsatisfiable
)

// String implements the Stringer interface.
func (s Status) String() string {
	switch s {
	case Satisfiable:
		return "SATISFIABLE"
	case Unsatisfiable:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// Result is the outcome of a solving run.
type Result struct {
	Status Status
	// Model maps user variables to their values. Only set for satisfiable
	// runs.
	Model map[int]bool
	// Reason describes why the run ended without a verdict. Only set for
	// unknown runs.
	Reason string
	// Stats are the run's counters.
	Stats Statistics
}
