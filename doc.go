// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package atomq provides an unbounded node-based FIFO queue and two blocking
// layers built on it.
//
// The package offers three types, leaves first:
//
//   - Queue: non-blocking, exchange-based, unbounded
//   - BlockingQueue: Queue plus a parking Pop
//   - Sender/Receiver: multi-producer multi-consumer channel with
//     disconnect detection
//
// # Quick Start
//
//	q := atomq.NewQueue[Event]()
//	q.Push(ev)
//	ev, err := q.Pop() // ErrWouldBlock when empty
//
//	bq := atomq.NewBlockingQueue[*Request]()
//	bq.Push(req)
//	req := bq.Pop() // parks until an element arrives
//
//	tx, rx := atomq.NewChannel[Job]()
//	defer tx.Close()
//	defer rx.Close()
//	err := tx.Send(job)   // ErrDisconnected once every Receiver is closed
//	job, err := rx.Recv() // ErrDisconnected once drained and every Sender is closed
//
// # Algorithm
//
// Queue is a singly linked list with a permanent stub node at the head.
// Two atomic exchanges carry the whole algorithm; there is no
// compare-and-swap anywhere.
//
// Push allocates a node, exchanges back with it, and links the new node
// behind the node it displaced. The exchange on back is a total order over
// producers, so elements from one producer are always popped in the order
// they were pushed. Pushes never wait for each other.
//
// Pop exchanges front with nil. A consumer that gets the stub back owns the
// head: it reads the element out of stub.next, stores stub.next into front
// (which releases the head), and the old stub becomes garbage. A consumer
// that gets nil back retries with a CPU relax hint while the element count
// is positive, and reports ErrWouldBlock otherwise.
//
//	front                                   back
//	  │                                       │
//	  ▼                                       ▼
//	[stub] ──► [e1] ──► [e2] ──► ... ──► [en]
//
// A producer preempted between its exchange and its link leaves the chain
// transiently unlinked. Consumers cannot see past the gap. While the count
// is positive they retry until the link lands; a zero count means the queue
// is empty. The count is raised after the link and lowered after the head
// advances, so a positive count always names an element that a consumer will
// reach once every gap in front of it closes.
//
// # Blocking
//
// BlockingQueue and Receiver park the calling goroutine when nothing is
// queued. Each holds a second Queue of park tokens as a wakeup mailbox:
//
//	consumer                          producer
//	────────                          ────────
//	register token                    push element
//	pop element ── found? return      pop token ── notify
//	park, retry
//
// Registering before the check is what prevents lost wakeups: either the
// consumer's pop sees the element, or the producer's token pop sees the
// consumer. A consumer that returns leaves its token behind; producers skip
// such tokens, and a consumer that absorbed a notification it did not need
// passes it to the next waiter.
//
// Wakeups carry no data. A woken consumer retries from the top and may
// park again if another consumer took the element first.
//
// # Disconnect
//
// Sender and Receiver handles share one block with live sender and receiver
// counts. Clone increments the count for its side; Close decrements it.
//
//   - Send fails with [ErrDisconnected] when no Receiver is live. The element
//     is not enqueued.
//   - Recv fails with [ErrDisconnected] when the queue is empty and no Sender
//     is live. Elements sent before the last Close are still delivered.
//   - Closing the last Sender wakes every parked receiver.
//
// Go has no destructors: handles must be closed explicitly. Close is
// idempotent per handle; using a closed handle returns [ErrClosed].
//
// # Progress
//
// Push is wait-free apart from allocation. Pop on Queue never parks but is
// not lock-free: a consumer preempted inside the head window stalls other
// consumers until it is rescheduled. BlockingQueue.Pop and Receiver.Recv
// park indefinitely; there is no timeout or cancellation.
//
// # Capacity and Length
//
// Queues are unbounded and Push never fails. Len reports the element count
// the algorithm maintains anyway; under concurrency it is a snapshot that
// may lag elements still being linked.
//
// # Error Handling
//
// Non-blocking operations return [ErrWouldBlock] when nothing is available.
// This error is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency:
//
//	backoff := iox.Backoff{}
//	for {
//	    v, err := q.Pop()
//	    if atomq.IsWouldBlock(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    backoff.Reset()
//	    handle(v)
//	}
//
// For semantic error classification (delegates to iox):
//
//	atomq.IsWouldBlock(err)   // true if nothing to pop
//	atomq.IsSemantic(err)     // true if control flow signal
//	atomq.IsNonFailure(err)   // true if nil or ErrWouldBlock
//	atomq.IsDisconnected(err) // true if the peer side is gone
//
// # Race Detection
//
// Element handoff goes through sync/atomic pointers, which the race
// detector understands. Element counts, handle counts and token states use
// [code.hybscloud.com/atomix] with explicit orderings, which the detector
// sees as plain memory accesses. Concurrent tests are skipped when
// [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic counters with explicit memory
// ordering, and [code.hybscloud.com/spin] for CPU pause instructions.
package atomq
