package solver

// Statistics keeps the counters of a solving run.
type Statistics struct {
	Decisions    uint64
	Propagations uint64
	Conflicts    uint64
	Restarts     uint64
	Learnts      uint64
	Deleted      uint64
	Reductions   uint64
}
