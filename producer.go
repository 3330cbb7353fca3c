// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import "code.hybscloud.com/spin"

// Enqueue adds an element to the queue.
// Returns ErrFull if the slot for the next position has not been drained.
//
// The head load is only a guess at the next position; the slot token
// confirms it. The payload is written after the head claim and before the
// release store of pos+1, which is the single publication point.
func (q *MPMC[T]) Enqueue(elem *T) error {
	sw := spin.Wait{}
	for {
		pos := q.head.LoadRelaxed()
		if q.limited && int64(pos-q.tail.LoadAcquire()) >= int64(q.capacity) {
			return ErrFull
		}

		s := q.ring.slotAt(pos)
		diff := int64(s.token.LoadAcquire() - pos)

		if diff == 0 {
			if q.claimHead(pos) {
				s.payload = *elem
				q.ring.releaseFull(s, pos)
				return nil
			}
		} else if diff < 0 {
			// Previous lap still owned by a consumer
			return ErrFull
		}
		// Lost the claim or pos is stale; reload
		sw.Once()
	}
}

// claimHead advances head from pos to pos+1. The winner owns the slot for
// pos until it releases the token. It does not order the payload; the slot
// token does.
func (q *MPMC[T]) claimHead(pos uint64) bool {
	if q.spProd {
		q.head.StoreRelaxed(pos + 1)
		return true
	}
	return q.head.CompareAndSwapRelaxed(pos, pos+1)
}
