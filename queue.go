// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomq

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Queue is an unbounded node-based FIFO queue.
//
// Producers claim the tail by exchanging back with their new node and then
// link it behind the node they displaced, so any number of goroutines may
// Push at once and a Push never waits on another.
//
// Consumers serialize on the head by exchanging front with nil. Whoever gets
// the stub back owns the head until it stores the successor into front;
// a concurrent Pop that gets nil back retries while the element count is
// positive. Pop calls are therefore mutually exclusive with each other, never
// with Push.
//
// The node at front is always a stub carrying no element. Elements live in
// front.next, front.next.next and so on.
//
// Between a producer's exchange and its link, the chain is transiently
// broken: the displaced node's next is still nil. The element count is raised
// only after linking, so a positive count never overstates linked elements.
//
// Memory: one heap node per element plus one stub
type Queue[T any] struct {
	_     pad
	front atomic.Pointer[node[T]] // Stub; nil while a consumer holds the head
	_     pad
	back  atomic.Pointer[node[T]] // Last claimed node (producer exchange)
	_     pad
	count atomix.Int64 // Linked, unconsumed elements
	_     pad
}

type node[T any] struct {
	next atomic.Pointer[node[T]]
	data T
}

// NewQueue creates an empty queue holding a single stub node.
func NewQueue[T any]() *Queue[T] {
	stub := &node[T]{}
	q := &Queue[T]{}
	q.front.Store(stub)
	q.back.Store(stub)
	return q
}

// Push appends elem at the tail (multiple producers safe).
// Push never blocks and never fails.
func (q *Queue[T]) Push(elem T) {
	n := &node[T]{data: elem}

	// The exchange alone fixes enqueue order: the goroutine that receives
	// prev is the only one that will ever link a successor onto it.
	prev := q.back.Swap(n)

	// Preempted here, the chain stays unlinked past prev until the store.
	prev.next.Store(n)

	q.count.AddAcqRel(1)
}

// Pop removes and returns the element at the head (multiple consumers safe).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
//
// Pop does not park, but it retries while the element count is positive and
// either another consumer holds the head or a producer has claimed the tail
// without linking it yet. Retries relax the CPU and may yield the processor;
// they never sleep.
func (q *Queue[T]) Pop() (T, error) {
	sw := spin.Wait{}
	for {
		head := q.front.Swap(nil)
		if head == nil {
			// Another consumer is inside the head window.
			if q.count.LoadAcquire() <= 0 {
				var zero T
				return zero, ErrWouldBlock
			}
			sw.Once()
			continue
		}

		next := head.next.Load()
		if next == nil {
			q.front.Store(head)
			// A positive count with nothing linked means a counted element
			// sits behind a producer that has not linked yet, or the last
			// consumer has not lowered the count. Both settle shortly.
			if q.count.LoadAcquire() <= 0 {
				var zero T
				return zero, ErrWouldBlock
			}
			sw.Once()
			continue
		}

		elem := next.data
		var zero T
		next.data = zero // next becomes the stub

		q.front.Store(next)
		q.count.AddAcqRel(-1)

		// head is unreachable: no producer links onto it again and no
		// other consumer can have captured it.
		head.next.Store(nil)
		return elem, nil
	}
}

// Len returns the number of linked elements observed at the time of the
// call. Concurrent Push and Pop make it a snapshot: elements whose producer
// has not yet finished linking are not counted.
func (q *Queue[T]) Len() int {
	n := q.count.LoadAcquire()
	if n < 0 {
		// A consumer retired an element before its producer counted it.
		return 0
	}
	return int(n)
}
