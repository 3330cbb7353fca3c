// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package slotq

// RaceEnabled is true when the race detector is active.
// Concurrent tests skip under the detector: it cannot see the slot token's
// acquire/release edge that orders the plain payload accesses.
const RaceEnabled = true
