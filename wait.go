// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq

import (
	"context"

	"code.hybscloud.com/iox"
)

// EnqueueWait enqueues elem, retrying with [iox.Backoff] while the queue is
// full. It returns ctx.Err() once ctx is done, and any error other than a
// would-block condition unchanged.
//
// EnqueueWait never parks the goroutine on the queue; waiting is paced by the
// backoff only.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(ctx, time.Second)
//	defer cancel()
//	if err := slotq.EnqueueWait(ctx, q, &job); err != nil {
//	    return err // context.DeadlineExceeded if the queue stayed full
//	}
func EnqueueWait[T any](ctx context.Context, p Producer[T], elem *T) error {
	backoff := iox.Backoff{}
	for {
		err := p.Enqueue(elem)
		if err == nil || !IsWouldBlock(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		backoff.Wait()
	}
}

// DequeueWait dequeues an element, retrying with [iox.Backoff] while the
// queue is empty. It returns (zero-value, ctx.Err()) once ctx is done.
func DequeueWait[T any](ctx context.Context, c Consumer[T]) (T, error) {
	backoff := iox.Backoff{}
	for {
		elem, err := c.Dequeue()
		if err == nil || !IsWouldBlock(err) {
			return elem, err
		}
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		default:
		}
		backoff.Wait()
	}
}
