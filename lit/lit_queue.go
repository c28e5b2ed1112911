package lit

const minQueueCap = 16

// Queue is a FIFO of literals backed by a ring buffer. The backing array is
// retained across Clear calls so a queue that is drained and refilled inside
// the propagation loop does not allocate. Not async-safe.
type Queue struct {
	items []Lit
	head  int
	tail  int
	size  int
}

// NewQueue returns a new queue.
func NewQueue() *Queue {
	return &Queue{
		items: make([]Lit, minQueueCap),
	}
}

// Insert inserts a new lit into the queue.
func (q *Queue) Insert(l Lit) {
	if q.size == len(q.items) {
		q.grow()
	}
	q.items[q.tail] = l
	q.tail++
	if q.tail == len(q.items) {
		q.tail = 0
	}
	q.size++
}

// Dequeue pops the first lit off the queue, or returns Undef when the queue
// is empty.
func (q *Queue) Dequeue() Lit {
	if q.size == 0 {
		return Undef
	}
	first := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.head = 0
	}
	q.size--

	return first
}

// Clear empties the queue, keeping its capacity.
func (q *Queue) Clear() {
	q.head, q.tail, q.size = 0, 0, 0
}

// Size returns the number of lits in the queue.
func (q *Queue) Size() int {
	return q.size
}

// grow doubles the backing array, unrolling the ring into the new array.
func (q *Queue) grow() {
	items := make([]Lit, 2*len(q.items))
	for i := 0; i < q.size; i++ {
		j := q.head + i
		if j >= len(q.items) {
			j -= len(q.items)
		}
		items[i] = q.items[j]
	}
	q.items = items
	q.head, q.tail = 0, q.size
}
