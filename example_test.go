// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq_test

import (
	"fmt"

	"code.hybscloud.com/ringq"
)

// ExampleNewRing demonstrates basic FIFO usage.
func ExampleNewRing() {
	q := ringq.NewRing[int](8)

	for i := 1; i <= 5; i++ {
		v := i * 10
		q.Push(&v)
	}

	for range 5 {
		v, _ := q.Pop()
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 50
}

// ExampleRing_Pop demonstrates the drain loop: Pop until ErrEmpty, which
// is the expected end of the drain, not a failure.
func ExampleRing_Pop() {
	log := ringq.NewRing[string](4)

	for _, msg := range []string{"link training failed", "link retrained", "buffer overrun"} {
		log.Push(&msg)
	}

	for {
		msg, err := log.Pop()
		if err != nil {
			break // drained
		}
		fmt.Println(msg)
	}
	fmt.Println("records left:", log.Len())

	// Output:
	// link training failed
	// link retrained
	// buffer overrun
	// records left: 0
}

// ExampleRing_Peek demonstrates in-order inspection without draining.
func ExampleRing_Peek() {
	q := ringq.NewRing[string](4)
	for _, s := range []string{"first", "second", "third"} {
		q.Push(&s)
	}

	for i := range q.Len() {
		s, _ := q.Peek(i)
		fmt.Println(i, s)
	}
	fmt.Println("len:", q.Len())

	// Output:
	// 0 first
	// 1 second
	// 2 third
	// len: 3
}

// ExampleBuild demonstrates static-capacity mode with a caller-side
// drop-oldest overflow policy: the queue itself never drops data, it
// just reports ErrAtCapacity and leaves the decision to the caller.
func ExampleBuild() {
	q := ringq.Build[int](ringq.New(3).Static())

	for i := 1; i <= 5; i++ {
		v := i
		if err := q.Push(&v); ringq.IsWouldBlock(err) {
			q.Pop()    // evict the oldest
			q.Push(&v) // cannot fail: a slot is free now
		}
	}

	for {
		v, err := q.Pop()
		if err != nil {
			break
		}
		fmt.Println(v)
	}

	// Output:
	// 3
	// 4
	// 5
}

// ExampleBuilder_ShrinkFactor demonstrates a queue that releases memory
// after a burst: capacity grows with the burst and shrinks during the
// drain, but never below the configured floor.
func ExampleBuilder_ShrinkFactor() {
	q := ringq.Build[int](ringq.New(16).MinCapacity(16).ShrinkFactor(0.25))

	for i := range 100 {
		v := i
		q.Push(&v)
	}
	fmt.Println("after burst:", q.Cap() >= 100)

	for q.Len() > 0 {
		q.Pop()
	}
	fmt.Println("after drain:", q.Cap() < 100 && q.Cap() >= 16)

	// Output:
	// after burst: true
	// after drain: true
}
