// Package order implements dynamic variable ordering as a binary max-heap
// keyed on variable activity.
package order

import (
	"github.com/ole-thoeb/rusty-solver/tribool"
)

// Order assists with dynamic variable ordering. Variables leave the heap when
// chosen and must be pushed back when their assignment is undone.
type Order struct {
	vars     []int
	indices  []int
	assigns  *[]tribool.Tribool
	activity *[]float64
}

// New returns a new Order over the given assignment and activity slices. The
// slices are shared with the owner, which may grow them through NewVar.
func New(assigns *[]tribool.Tribool, activity *[]float64) *Order {
	return &Order{
		vars:     []int{},
		indices:  []int{},
		assigns:  assigns,
		activity: activity,
	}
}

// Init (re)establishes the heap property over all contained variables.
func (o *Order) Init() {
	n := o.len()
	for i := n/2 - 1; i >= 0; i-- {
		o.down(i, n)
	}
}

// NewVar adds a new var to the order.
func (o *Order) NewVar() {
	v := len(o.indices)
	o.indices = append(o.indices, len(o.vars))
	o.vars = append(o.vars, v)
	o.up(len(o.vars) - 1)
}

// Empty returns true when no vars are left to choose from.
func (o *Order) Empty() bool {
	return len(o.vars) == 0
}

// Choose returns the unbound variable with the highest activity, or -1 when
// there are no unbound vars left to choose from.
func (o *Order) Choose() int {
	a := *o.assigns

	for !o.Empty() {
		if v := o.pop(); a[v].Undef() {
			return v
		}
	}
	return -1
}

// Push reinserts a variable into the heap. Pushing a contained variable is a
// no-op.
func (o *Order) Push(v int) {
	if o.indices[v] != -1 {
		return
	}
	o.indices[v] = len(o.vars)
	o.vars = append(o.vars, v)
	o.up(o.len() - 1)
}

// Fix restores the heap ordering around a variable whose activity changed.
func (o *Order) Fix(v int) {
	if o.indices[v] == -1 {
		return
	}
	i := o.indices[v]

	o.down(i, o.len())
	o.up(i)
}

// len implements the sort interface.
func (o *Order) len() int {
	return len(o.vars)
}

// less implements the sort interface. Higher activity sorts first.
func (o *Order) less(i, j int) bool {
	return (*o.activity)[o.vars[i]] > (*o.activity)[o.vars[j]]
}

// swap implements the sort interface.
func (o *Order) swap(i, j int) {
	k, l := o.vars[i], o.vars[j]

	o.vars[i], o.vars[j] = l, k
	o.indices[k], o.indices[l] = j, i
}

// pop pops the highest-activity element off of the order's heap.
func (o *Order) pop() int {
	n := len(o.vars) - 1
	o.swap(0, n)
	o.down(0, n)
	v := o.vars[n]
	o.vars = o.vars[:n]
	o.indices[v] = -1

	return v
}

// up percolates an element from the heap up, as adopted from Go's
// container/heap package.
func (o *Order) up(j int) {
	for {
		i := (j - 1) / 2
		if i == j || !o.less(j, i) {
			break
		}
		o.swap(i, j)
		j = i
	}
}

// down percolates an element from the heap down, as adopted from Go's
// container/heap package.
func (o *Order) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 {
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && o.less(j2, j1) {
			j = j2
		}
		if !o.less(j, i) {
			break
		}
		o.swap(i, j)
		i = j
	}
	return i > i0
}
