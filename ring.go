// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import "code.hybscloud.com/atomix"

// slot is one ring cell.
//
// token is the only synchronization point for payload. For the position pos
// mapped to this cell:
//
//	token == pos      empty, a producer claiming pos may write
//	token == pos + 1  full, a consumer claiming pos may read
//
// After the read the consumer stores pos + size, which is the empty value
// for the position that maps here on the next lap.
type slot[T any] struct {
	token   atomix.Uint64
	payload T
	_       padShort
}

// ring is the fixed slot array. It is allocated once by newRing and never
// grows, shrinks or reallocates.
type ring[T any] struct {
	slots []slot[T]
	mask  uint64
	size  uint64
}

// newRing allocates size slots. size must be a power of two >= 2.
// Slot i starts empty for lap 0, so its token is i.
func newRing[T any](size uint64) ring[T] {
	r := ring[T]{
		slots: make([]slot[T], size),
		mask:  size - 1,
		size:  size,
	}
	for i := uint64(0); i < size; i++ {
		r.slots[i].token.StoreRelaxed(i)
	}
	return r
}

// slotAt returns the slot for position pos. Indices are always pos mod size,
// so there is no out-of-range case.
func (r *ring[T]) slotAt(pos uint64) *slot[T] {
	return &r.slots[pos&r.mask]
}

// releaseEmpty hands s back to producers for the next lap of pos.
func (r *ring[T]) releaseEmpty(s *slot[T], pos uint64) {
	s.token.StoreRelease(pos + r.size)
}

// releaseFull publishes the payload written for pos.
func (r *ring[T]) releaseFull(s *slot[T], pos uint64) {
	s.token.StoreRelease(pos + 1)
}
