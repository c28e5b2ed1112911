// Package lit implements the literal representation shared by every layer of
// the solver.
package lit

import "fmt"

// Undef denotes the absence of a literal.
const Undef = Lit(-1)

// Lit is a literal represented by an integer. The sign of the literal is
// stored in the least significant bit, and the variable index is obtained by
// a right bit shift. This encoding keeps L and ~L adjacent, which makes watch
// lists indexed by literal dense.
type Lit int

// New returns a new literal given a 0-indexed variable, v, and whether the
// literal is negative.
func New(v int, neg bool) Lit {
	if neg {
		return Lit(v + v + 1)
	}
	return Lit(v + v)
}

// NewFromInt returns a new literal from a signed DIMACS-style integer, where
// a positive i denotes variable i and a negative i its negation.
func NewFromInt(i int) Lit {
	if i < 0 {
		return New(-i-1, true)
	}
	return New(i-1, false)
}

// Not negates a literal.
func (l Lit) Not() Lit {
	return Lit(l ^ 1)
}

// Sign returns true if the literal is negative.
func (l Lit) Sign() bool {
	return l&1 == 1
}

// Index returns the 0-indexed variable of the literal.
func (l Lit) Index() int {
	return int(l >> 1)
}

// Var returns the literal's 1-indexed variable.
func (l Lit) Var() int {
	return int(l>>1) + 1
}

// Int returns the literal as a signed DIMACS-style integer.
func (l Lit) Int() int {
	if l.Sign() {
		return -l.Var()
	}
	return l.Var()
}

// String implements the Stringer interface.
func (l Lit) String() string {
	if l.Sign() {
		return fmt.Sprintf("~%d", l.Var())
	}
	return fmt.Sprintf("%d", l.Var())
}
