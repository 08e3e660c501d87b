package trace

import "errors"

var (
	// ErrNoPredecessor is returned by StepBack when none of the n*(n-1)
	// row-XOR undos lands on a matrix whose canonical representative is a
	// member of the prior frontier. A well-formed level sequence never
	// triggers this; seeing it means the caller passed levels that don't
	// actually contain a path to the matrix being traced.
	ErrNoPredecessor = errors.New("trace: no predecessor found in prior frontier level")
)
