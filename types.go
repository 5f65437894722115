// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomq

// Producer is the interface for appending elements.
//
// Push never blocks and never fails: every queue in this package is
// unbounded. [Queue] and [BlockingQueue] implement Producer.
type Producer[T any] interface {
	// Push appends elem at the tail.
	// Safe to call from any number of goroutines.
	Push(elem T)
}

// Consumer is the interface for non-blocking removal.
//
// [Queue] implements Consumer directly; [BlockingQueue] exposes the same
// contract through TryPop.
type Consumer[T any] interface {
	// Pop removes and returns the element at the head.
	// Returns (zero-value, ErrWouldBlock) if nothing is linked.
	Pop() (T, error)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
