// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
// ErrFull and ErrEmpty both match it under errors.Is.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

var (
	// ErrFull is returned by Enqueue when the slot for the current lap has
	// not been drained yet. It is backpressure, not a failure.
	ErrFull error = wouldBlock("slotq: queue full")

	// ErrEmpty is returned by Dequeue when no slot at the current lap has
	// been published yet.
	ErrEmpty error = wouldBlock("slotq: queue empty")

	// ErrInvalidCapacity is returned when a queue is created with
	// capacity <= 0.
	ErrInvalidCapacity = errors.New("slotq: capacity must be > 0")
)

// wouldBlock is a named would-block condition.
type wouldBlock string

func (e wouldBlock) Error() string { return string(e) }

func (e wouldBlock) Unwrap() error { return iox.ErrWouldBlock }

// IsWouldBlock reports whether err indicates the operation would block
// (ErrFull, ErrEmpty, or anything wrapping iox.ErrWouldBlock).
// Delegates to [iox.IsWouldBlock].
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil and would-block conditions.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
