// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package park

import "code.hybscloud.com/atomix"

// Token states.
const (
	waiting  uint64 = iota // Registered, may park
	notified               // Permit deposited, not yet consumed
	retired                // Owner returned; notifications are wasted
)

// Token is a park/unpark permit owned by one blocking call.
//
// The same Token may sit in a waiter list more than once: its owner
// re-registers it on every retry. Notify succeeds at most once per round,
// so duplicates cost a failed CAS, never a second permit.
type Token struct {
	state  atomix.Uint64
	permit chan struct{}
}

// New returns a token in the waiting state.
func New() *Token {
	return &Token{permit: make(chan struct{}, 1)}
}

// Notify deposits a permit if the owner is still waiting.
// Reports false when the owner has retired or a permit is already pending,
// in which case the caller should notify someone else.
func (t *Token) Notify() bool {
	if !t.state.CompareAndSwapAcqRel(waiting, notified) {
		return false
	}
	select {
	case t.permit <- struct{}{}:
	default:
	}
	return true
}

// Park blocks until a permit is available, consumes it and re-arms the token.
// A Notify that lands before Park makes Park return immediately.
func (t *Token) Park() {
	<-t.permit
	t.state.StoreRelease(waiting)
}

// Retire marks the token finished. Reports whether a notification was
// absorbed by the owner without parking; the caller must pass it on.
func (t *Token) Retire() bool {
	for {
		s := t.state.LoadAcquire()
		if s == retired {
			return false
		}
		if t.state.CompareAndSwapAcqRel(s, retired) {
			return s == notified
		}
	}
}

// Waiting reports whether the token can still be notified.
func (t *Token) Waiting() bool {
	return t.state.LoadAcquire() == waiting
}
