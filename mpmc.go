// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import (
	"code.hybscloud.com/atomix"
)

// MPMC is a bounded multi-producer multi-consumer queue.
//
// Each slot carries one atomic token that is both the ownership ticket for
// a position and the data-ready flag for its payload. head and tail only
// hand out positions; a claim is confirmed by the slot token, and the
// payload is published by a single release store of that token.
//
// Memory: Cap() rounded up to a power of 2 (at least 2) slots, each padded
// by a cache line.
type MPMC[T any] struct {
	_        pad
	head     atomix.Uint64 // Next producer position
	_        pad
	tail     atomix.Uint64 // Next consumer position
	_        pad
	ring     ring[T]
	capacity uint64 // Logical bound, <= ring.size
	limited  bool   // capacity < ring.size, enforce with head-tail
	spProd   bool
	spCons   bool
}

// NewMPMC creates a queue for any number of producers and consumers.
// The queue holds at most capacity elements.
// Returns ErrInvalidCapacity if capacity <= 0.
func NewMPMC[T any](capacity int) (*MPMC[T], error) {
	return newMPMC[T](Options{capacity: capacity})
}

// MustMPMC is like NewMPMC but panics on an invalid capacity.
// It simplifies initialization of package-level queues.
func MustMPMC[T any](capacity int) *MPMC[T] {
	q, err := NewMPMC[T](capacity)
	if err != nil {
		panic(err)
	}
	return q
}

func newMPMC[T any](opts Options) (*MPMC[T], error) {
	if opts.capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	size := ringSize(opts.capacity)
	capacity := uint64(opts.capacity)

	return &MPMC[T]{
		ring:     newRing[T](size),
		capacity: capacity,
		limited:  capacity < size,
		spProd:   opts.singleProducer,
		spCons:   opts.singleConsumer,
	}, nil
}

// Cap returns the maximum number of queued elements.
func (q *MPMC[T]) Cap() int {
	return int(q.capacity)
}

// Len returns an estimate of the number of queued elements, in [0, Cap()].
//
// head and tail are read at different instants, so the value may be stale
// by the time it is returned. Do not use it to decide whether Enqueue or
// Dequeue will succeed.
func (q *MPMC[T]) Len() int {
	tail := q.tail.LoadAcquire()
	head := q.head.LoadAcquire()
	n := int64(head - tail)
	if n < 0 {
		return 0
	}
	if uint64(n) > q.capacity {
		return int(q.capacity)
	}
	return int(n)
}
