// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomq

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/atomq/internal/park"
)

// channel is the block shared by every Sender and Receiver of one channel.
// It lives as long as the longest-lived handle.
type channel[T any] struct {
	_         pad
	senders   atomix.Int64 // Live Sender handles
	_         pad
	receivers atomix.Int64 // Live Receiver handles
	_         pad
	queue     *Queue[T]
	waiters   waitList
}

// NewChannel creates an unbounded multi-producer multi-consumer channel and
// returns its first Sender and Receiver.
//
// Further handles come from Clone. Every handle must be closed when its
// owner is done with it: closing the last Sender disconnects receivers once
// the queue is drained, and closing the last Receiver makes Send fail.
//
// Example:
//
//	tx, rx := atomq.NewChannel[int]()
//	go func() {
//	    defer tx.Close()
//	    for i := range 3 {
//	        tx.Send(i)
//	    }
//	}()
//	for {
//	    v, err := rx.Recv()
//	    if atomq.IsDisconnected(err) {
//	        break
//	    }
//	    fmt.Println(v)
//	}
func NewChannel[T any]() (*Sender[T], *Receiver[T]) {
	ch := &channel[T]{
		queue:   NewQueue[T](),
		waiters: newWaitList(),
	}
	ch.senders.StoreRelaxed(1)
	ch.receivers.StoreRelaxed(1)
	return &Sender[T]{ch: ch}, &Receiver[T]{ch: ch}
}

// Sender is the sending half of a channel.
//
// A Sender may be used from several goroutines; Clone gives an independent
// handle with its own Close.
type Sender[T any] struct {
	ch     *channel[T]
	closed atomix.Bool
	once   sync.Once
}

// Send enqueues elem and wakes one parked receiver.
//
// Returns ErrDisconnected without enqueueing if every Receiver has been
// closed, and ErrClosed if this handle has been closed. Send never blocks.
func (s *Sender[T]) Send(elem T) error {
	if s.closed.LoadAcquire() {
		return ErrClosed
	}
	ch := s.ch
	if ch.receivers.LoadAcquire() == 0 {
		return ErrDisconnected
	}
	ch.queue.Push(elem)
	ch.waiters.wakeOne()
	return nil
}

// Clone returns a new Sender on the same channel.
// Panics if s has been closed.
func (s *Sender[T]) Clone() *Sender[T] {
	if s.closed.LoadAcquire() {
		panic("atomq: Clone of closed Sender")
	}
	s.ch.senders.AddAcqRel(1)
	return &Sender[T]{ch: s.ch}
}

// Close releases this handle. Closing the last Sender wakes every parked
// receiver so that each observes the disconnect once the queue is drained.
// Close is idempotent.
func (s *Sender[T]) Close() {
	s.once.Do(func() {
		s.closed.StoreRelease(true)
		if s.ch.senders.AddAcqRel(-1) == 0 {
			s.ch.waiters.wakeAll()
		}
	})
}

// Receiver is the receiving half of a channel.
//
// A Receiver may be used from several goroutines; Clone gives an independent
// handle with its own Close.
type Receiver[T any] struct {
	ch     *channel[T]
	closed atomix.Bool
	once   sync.Once
}

// Recv removes and returns the next element, parking until one is available.
//
// Returns ErrDisconnected once the queue is empty and every Sender has been
// closed, and ErrClosed if this handle has been closed. With a live Sender
// that never sends again, Recv never returns.
func (r *Receiver[T]) Recv() (T, error) {
	if r.closed.LoadAcquire() {
		var zero T
		return zero, ErrClosed
	}
	ch := r.ch
	tok := park.New()
	for {
		ch.waiters.register(tok)
		if elem, err := ch.queue.Pop(); err == nil {
			ch.waiters.retire(tok)
			return elem, nil
		}
		if ch.senders.LoadAcquire() == 0 {
			ch.waiters.retire(tok)
			return r.drainOrDisconnect()
		}
		tok.Park()
	}
}

// TryRecv removes and returns the next element without parking.
//
// Returns ErrWouldBlock if the queue is empty while a Sender is live,
// ErrDisconnected if it is empty and every Sender has been closed.
func (r *Receiver[T]) TryRecv() (T, error) {
	if r.closed.LoadAcquire() {
		var zero T
		return zero, ErrClosed
	}
	if elem, err := r.ch.queue.Pop(); err == nil {
		return elem, nil
	}
	if r.ch.senders.LoadAcquire() == 0 {
		return r.drainOrDisconnect()
	}
	var zero T
	return zero, ErrWouldBlock
}

// drainOrDisconnect runs after the sender count was seen at zero. Every
// Send happened before its Sender's Close, so one more Pop settles whether
// anything is left.
func (r *Receiver[T]) drainOrDisconnect() (T, error) {
	if elem, err := r.ch.queue.Pop(); err == nil {
		return elem, nil
	}
	var zero T
	return zero, ErrDisconnected
}

// Clone returns a new Receiver on the same channel.
// Panics if r has been closed.
func (r *Receiver[T]) Clone() *Receiver[T] {
	if r.closed.LoadAcquire() {
		panic("atomq: Clone of closed Receiver")
	}
	r.ch.receivers.AddAcqRel(1)
	return &Receiver[T]{ch: r.ch}
}

// Close releases this handle. Senders observe the disconnect on their next
// Send once the last Receiver is closed. Close is idempotent.
func (r *Receiver[T]) Close() {
	r.once.Do(func() {
		r.closed.StoreRelease(true)
		r.ch.receivers.AddAcqRel(-1)
	})
}

// Len returns a snapshot of the number of queued elements.
func (r *Receiver[T]) Len() int {
	return r.ch.queue.Len()
}
