// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package atomq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent tests: element counts, handle counts and
// waiter states are atomix words, which the detector sees as plain accesses.
const RaceEnabled = true
