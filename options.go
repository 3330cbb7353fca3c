// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import "golang.org/x/sys/cpu"

// Options configures queue creation.
type Options struct {
	// Access pattern constraints (select CAS or relaxed store per counter)
	singleProducer bool
	singleConsumer bool

	capacity int
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// General purpose MPMC queue
//	q, err := slotq.Build[Request](slotq.New(4096))
//
//	// At most 3 elements, one dispatcher goroutine
//	q, err := slotq.Build[Task](slotq.New(3).SingleProducer())
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// The queue holds at most capacity elements. The ring underneath rounds up
// to a power of 2; a capacity that is not a power of 2 is enforced through
// the head/tail distance, which costs one extra load per Enqueue.
// A capacity <= 0 is reported by Build as ErrInvalidCapacity.
func New(capacity int) *Builder {
	return &Builder{opts: Options{capacity: capacity}}
}

// SingleProducer declares that only one goroutine will enqueue.
// Producers then claim positions with a relaxed store instead of a CAS.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will dequeue.
// Consumers then claim positions with a relaxed store instead of a CAS.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// Build creates a Queue[T] from the builder configuration.
// Returns ErrInvalidCapacity if capacity <= 0.
func Build[T any](b *Builder) (Queue[T], error) {
	q, err := newMPMC[T](b.opts)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// BuildMPMC creates a queue with no access constraints, returning the
// concrete type. Panics if SingleProducer or SingleConsumer was set.
func BuildMPMC[T any](b *Builder) (*MPMC[T], error) {
	if b.opts.singleProducer || b.opts.singleConsumer {
		panic("slotq: BuildMPMC requires no constraints")
	}
	return newMPMC[T](b.opts)
}

// ringSize returns the physical slot count for a logical capacity.
//
// A single slot cannot tell "full at lap k" (pos+1) from "empty at lap k+1"
// (pos+size), so the ring always has at least 2 slots.
func ringSize(capacity int) uint64 {
	return uint64(roundToPow2(capacity))
}

// roundToPow2 rounds n up to the next power of 2, with a minimum of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad separates hot counters onto their own cache line.
type pad = cpu.CacheLinePad

// padShort is padding to fill a 64-byte line after an 8-byte field.
type padShort [64 - 8]byte
