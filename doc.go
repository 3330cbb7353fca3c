// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package slotq provides a bounded, lock-free multi-producer multi-consumer
// FIFO queue over a fixed ring of slots.
//
// All memory is allocated when the queue is created. Enqueue and Dequeue
// never allocate, never lock and never block.
//
// # Quick Start
//
//	q, err := slotq.NewMPMC[Event](1024)
//	if err != nil {
//	    return err // only for capacity <= 0
//	}
//
//	ev := Event{ID: 1}
//	if err := q.Enqueue(&ev); slotq.IsWouldBlock(err) {
//	    // ErrFull - handle backpressure
//	}
//
//	ev, err = q.Dequeue()
//	if slotq.IsWouldBlock(err) {
//	    // ErrEmpty - try again later
//	}
//
// Builder API:
//
//	q, err := slotq.Build[Event](slotq.New(1000))                  // Cap() == 1000
//	q, err := slotq.Build[Event](slotq.New(64).SingleConsumer())   // CAS-free dequeue
//
// # Slot Tokens
//
// Producers take positions from head, consumers from tail. Both counters
// only increase; position pos maps to slot pos & (size-1). Every slot has one
// atomic token, and for the position that currently maps to it:
//
//	token == pos       EMPTY: the producer that claims pos may write
//	token == pos + 1   FULL:  the consumer that claims pos may read
//
// A slot therefore cycles EMPTY(k) → FULL(k) → EMPTY(k+1), one lap k at a
// time:
//
//	producer                         consumer
//	--------                         --------
//	pos := head                      pos := tail
//	token(pos) == pos ?              token(pos) == pos+1 ?
//	CAS head pos → pos+1             CAS tail pos → pos+1
//	payload = v                      v = payload; payload = zero
//	store-release token = pos+1      store-release token = pos+size
//
// If the token is behind the position the queue is full (producer) or empty
// (consumer) for that lap and the call returns [ErrFull] or [ErrEmpty]. If
// the token is ahead, another goroutine already took the position and the
// caller reloads the counter.
//
// # Memory Ordering
//
// The token is the only cross-goroutine edge protecting the payload:
//
//   - The producer writes the payload, then store-releases pos+1. A consumer
//     that load-acquires pos+1 also observes the complete payload. No state
//     exists in which the token says FULL while the payload is stale or
//     partially written.
//   - The consumer reads and clears the payload, then store-releases
//     pos+size. The producer of the next lap load-acquires that value before
//     it writes, so it never overwrites a payload still being read.
//   - The head and tail CASes only serialize claims. Two producers never win
//     the same head value and two consumers never win the same tail value,
//     which makes the winner the exclusive owner of the slot until its
//     release store. They do not order the payload and use relaxed ordering.
//
// Ownership is never inferred from head or tail alone. Advancing a shared
// write counter and then writing the payload, with no per-slot publication,
// lets a reader see the new counter before the payload store retires and
// read the previous lap's value. Tokens remove that window instead of
// narrowing it.
//
// # ABA Safety
//
// Positions are 64-bit and never reused, so a CAS on head or tail cannot
// succeed against a value from an earlier lap. Tokens are compared against
// full positions rather than slot indices, so a slot that went through one or
// more laps between a load and a CAS is never mistaken for the slot it was.
// Differences are computed as int64(token - pos), which stays correct across
// counter wraparound.
//
// # Capacity
//
// The ring holds a power of 2 number of slots, and at least 2. With a single
// slot the FULL token for lap k (pos+1) equals the EMPTY token for lap k+1
// (pos+size) and the phases cannot be told apart.
//
// Cap() is always the requested capacity; only the ring rounds up:
//
//	slotq.NewMPMC[int](4)     // Cap() == 4, on 4 slots
//	slotq.NewMPMC[int](3)     // Cap() == 3, on 4 slots
//	slotq.NewMPMC[int](1000)  // Cap() == 1000, on 1024 slots
//	slotq.NewMPMC[int](1)     // Cap() == 1, on 2 slots
//
// When the capacity is not a power of 2, or is 1, it is smaller than the
// ring. Enqueue then also refuses a position once head - tail reaches
// Cap(). tail only grows, so a stale read yields a spurious ErrFull, never
// an extra element.
//
// # Progress
//
// Enqueue and Dequeue are lock-free, not wait-free: a goroutine may lose its
// CAS any number of times, but every lost CAS means another goroutine won.
// Retries spin with [code.hybscloud.com/spin]. ErrFull and ErrEmpty are
// returned to the caller and never retried internally; [EnqueueWait] and
// [DequeueWait] retry with [code.hybscloud.com/iox.Backoff] until a context
// is done.
//
// # Lifetime
//
// A queue may be dropped only when no Enqueue or Dequeue is in flight.
// There is no close operation; signal completion in band, for example with a
// sentinel element per consumer.
//
// # Race Detection
//
// The payload is a plain field ordered by the token's acquire/release pair.
// The race detector may not see that edge and can report false positives for
// concurrent use. Concurrent tests skip when [RaceEnabled] is set.
package slotq
