// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import "code.hybscloud.com/spin"

// Dequeue removes and returns the oldest element.
// Returns (zero-value, ErrEmpty) if the slot for the next position has not
// been published.
//
// Observing token == pos+1 with an acquire load makes the producer's payload
// write visible. The slot is cleared and handed to the next lap with a
// release store of pos+size.
func (q *MPMC[T]) Dequeue() (T, error) {
	sw := spin.Wait{}
	for {
		pos := q.tail.LoadRelaxed()
		s := q.ring.slotAt(pos)
		diff := int64(s.token.LoadAcquire() - (pos + 1))

		if diff == 0 {
			if q.claimTail(pos) {
				elem := s.payload
				var zero T
				s.payload = zero
				q.ring.releaseEmpty(s, pos)
				return elem, nil
			}
		} else if diff < 0 {
			var zero T
			return zero, ErrEmpty
		}
		sw.Once()
	}
}

func (q *MPMC[T]) claimTail(pos uint64) bool {
	if q.spCons {
		q.tail.StoreRelaxed(pos + 1)
		return true
	}
	return q.tail.CompareAndSwapRelaxed(pos, pos+1)
}
