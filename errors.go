// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates a non-blocking operation found nothing to return.
//
// Returned by [Queue.Pop], [BlockingQueue.TryPop] and [Receiver.TryRecv]
// when no element is linked at the head. Push never returns it: queues are
// unbounded.
//
// ErrWouldBlock is a control flow signal, not a failure. This is an alias
// for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    v, err := q.Pop()
//	    if err == nil {
//	        backoff.Reset()
//	        handle(v)
//	        continue
//	    }
//	    if atomq.IsWouldBlock(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    return err
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrDisconnected reports that the other side of a channel is gone.
//
// For Send: every Receiver has been closed; the element was not enqueued.
// For Recv: every Sender has been closed and the queue is drained.
//
// Once returned for a side it is returned for every later call on that side.
var ErrDisconnected = errors.New("atomq: channel disconnected")

// ErrClosed reports use of a Sender or Receiver after its own Close.
var ErrClosed = errors.New("atomq: use of closed channel handle")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsDisconnected reports whether err is or wraps [ErrDisconnected].
func IsDisconnected(err error) bool {
	return errors.Is(err, ErrDisconnected)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
