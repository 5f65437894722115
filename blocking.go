// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomq

import "code.hybscloud.com/atomq/internal/park"

// BlockingQueue is an unbounded FIFO queue whose Pop parks the calling
// goroutine until an element is available.
//
// It pairs a [Queue] of elements with a second Queue of park tokens.
// Push publishes the element and then wakes one parked consumer; Pop
// registers its token before looking for an element, so a Push that lands
// between the check and the park is never missed.
//
// Wakeups are best effort: a woken consumer may find the element taken by
// another and park again.
type BlockingQueue[T any] struct {
	inner   *Queue[T]
	waiters waitList
}

// NewBlockingQueue creates an empty blocking queue.
func NewBlockingQueue[T any]() *BlockingQueue[T] {
	return &BlockingQueue[T]{
		inner:   NewQueue[T](),
		waiters: newWaitList(),
	}
}

// Push appends elem and wakes one parked consumer, if any.
// Push never blocks.
func (q *BlockingQueue[T]) Push(elem T) {
	q.inner.Push(elem)
	q.waiters.wakeOne()
}

// Pop removes and returns the element at the head, parking until one is
// available. There is no timeout: with no further Push, Pop never returns.
func (q *BlockingQueue[T]) Pop() T {
	tok := park.New()
	for {
		q.waiters.register(tok)
		if elem, err := q.inner.Pop(); err == nil {
			q.waiters.retire(tok)
			return elem
		}
		tok.Park()
	}
}

// TryPop removes and returns the element at the head without parking.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *BlockingQueue[T]) TryPop() (T, error) {
	return q.inner.Pop()
}

// Len returns a snapshot of the number of queued elements.
func (q *BlockingQueue[T]) Len() int {
	return q.inner.Len()
}
