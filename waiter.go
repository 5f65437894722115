// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomq

import "code.hybscloud.com/atomq/internal/park"

// waitList is a mailbox of park tokens backed by a Queue.
//
// Blocking consumers register before checking for data; producers wake
// after publishing data. Either the consumer's check sees the data, or the
// producer's wake sees the token.
type waitList struct {
	tokens *Queue[*park.Token]
}

func newWaitList() waitList {
	return waitList{tokens: NewQueue[*park.Token]()}
}

func (l waitList) register(t *park.Token) {
	l.tokens.Push(t)
}

// wakeOne notifies the first registered token whose owner is still waiting.
// Tokens of owners that already returned are discarded on the way.
func (l waitList) wakeOne() bool {
	for {
		t, err := l.tokens.Pop()
		if err != nil {
			return false
		}
		if t.Notify() {
			return true
		}
	}
}

// wakeAll notifies every registered token and returns how many were woken.
func (l waitList) wakeAll() int {
	n := 0
	for {
		t, err := l.tokens.Pop()
		if err != nil {
			return n
		}
		if t.Notify() {
			n++
		}
	}
}

// retire finishes a blocking call. A notification the caller absorbed
// without parking is handed to the next waiter.
func (l waitList) retire(t *park.Token) {
	if t.Retire() {
		l.wakeOne()
	}
}
