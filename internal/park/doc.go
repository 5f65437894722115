// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package park provides the wake token used by blocking consumers.
//
// A consumer publishes its [Token] to a waiter list before checking for
// data, then parks. A producer pops tokens after publishing data and
// notifies the first one whose owner is still waiting.
package park
