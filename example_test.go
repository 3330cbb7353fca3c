// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotq_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"code.hybscloud.com/slotq"
)

// ExampleNewMPMC demonstrates basic FIFO use and backpressure.
func ExampleNewMPMC() {
	q, err := slotq.NewMPMC[int](4)
	if err != nil {
		panic(err)
	}

	for i := 1; i <= 5; i++ {
		v := i * 10
		if err := q.Enqueue(&v); errors.Is(err, slotq.ErrFull) {
			fmt.Println("full at", v)
		}
	}

	for {
		v, err := q.Dequeue()
		if errors.Is(err, slotq.ErrEmpty) {
			break
		}
		fmt.Println(v)
	}

	// Output:
	// full at 50
	// 10
	// 20
	// 30
	// 40
}

// ExampleBuild demonstrates that Cap() keeps the requested capacity.
func ExampleBuild() {
	q, _ := slotq.Build[string](slotq.New(3))
	single, _ := slotq.Build[string](slotq.New(1))
	_, err := slotq.Build[string](slotq.New(0))

	accepted := 0
	for _, s := range []string{"a", "b", "c", "d"} {
		if q.Enqueue(&s) == nil {
			accepted++
		}
	}

	fmt.Println("capacity:", q.Cap(), "accepted:", accepted)
	fmt.Println("single capacity:", single.Cap())
	fmt.Println(err)

	// Output:
	// capacity: 3 accepted: 3
	// single capacity: 1
	// slotq: capacity must be > 0
}

// ExampleDequeueWait demonstrates bounding a wait with a context.
func ExampleDequeueWait() {
	q, _ := slotq.NewMPMC[int](8)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := slotq.DequeueWait[int](ctx, q)
	fmt.Println(err)

	// Output:
	// context deadline exceeded
}
