// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "unsafe"

// Queue is the combined producer-consumer interface for a dynamically
// sized FIFO queue.
//
// Queue provides non-blocking Push, Pop, and indexed Peek. Push returns
// ErrAtCapacity when the queue is full and cannot grow; Pop returns
// ErrEmpty when there is nothing to remove. Both are control flow
// signals, not failures.
//
// Unlike a lock-free queue, an exclusively owned queue can report an
// exact element count, so the interface includes Len.
//
// Example:
//
//	var q ringq.Queue[int] = ringq.NewRing[int](64)
//
//	v := 42
//	if err := q.Push(&v); err != nil {
//	    // Full and not growable - apply caller overflow policy
//	}
//
//	elem, err := q.Pop()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	// Peek returns the element at logical offset i from the front
	// without removing it. Returns ErrOutOfRange unless 0 <= i < Len().
	Peek(i int) (T, error)
	// Len returns the number of buffered elements.
	Len() int
	// Cap returns the current capacity of the backing store.
	Cap() int
}

// Producer is the interface for appending elements.
//
// The element is passed by pointer to avoid copying large structs. The
// queue stores a copy of the pointed-to value, so the original can be
// modified after Push returns.
type Producer[T any] interface {
	// Push appends an element at the logical end of the queue, growing
	// the backing store when the resize policy allows.
	// Returns nil on success, ErrAtCapacity if the queue is full and
	// cannot grow. A failed Push leaves the queue unchanged.
	Push(elem *T) error
}

// Consumer is the interface for removing elements.
//
// The element is returned by value, copied out of the queue's backing
// store; the vacated slot is zeroed so the queue keeps no reference and
// the element is never handed out twice.
type Consumer[T any] interface {
	// Pop removes and returns the element at the logical front.
	// Returns (zero-value, ErrEmpty) if the queue is empty; draining
	// callers loop until ErrEmpty.
	Pop() (T, error)
}

// QueuePtr is the interface for unsafe.Pointer queues.
//
// QueuePtr passes pointers directly without copying the pointee,
// transferring ownership from producer to consumer: after Push the
// producer must not access the object, and after Pop the consumer is
// responsible for it. This matches the classic buffered-record pattern
// where diagnostic records are handed to an event log and later drained
// by a flusher that releases them.
type QueuePtr interface {
	ProducerPtr
	ConsumerPtr
	// Peek returns the pointer at logical offset i without removing it;
	// ownership stays with the queue.
	Peek(i int) (unsafe.Pointer, error)
	// Len returns the number of buffered elements.
	Len() int
	// Cap returns the current capacity of the backing store.
	Cap() int
}

// ProducerPtr appends unsafe.Pointer values.
type ProducerPtr interface {
	// Push appends a pointer, growing the backing store when the resize
	// policy allows. Returns ErrAtCapacity if full and not growable.
	Push(elem unsafe.Pointer) error
}

// ConsumerPtr removes unsafe.Pointer values.
type ConsumerPtr interface {
	// Pop removes and returns the front pointer.
	// Returns (nil, ErrEmpty) if the queue is empty.
	Pop() (unsafe.Pointer, error)
}

// QueueIndirect is the interface for uintptr queues.
//
// QueueIndirect passes indices or handles instead of full objects:
// buffer pool slots, resource ids, opaque tokens.
type QueueIndirect interface {
	ProducerIndirect
	ConsumerIndirect
	// Peek returns the value at logical offset i without removing it.
	Peek(i int) (uintptr, error)
	// Len returns the number of buffered elements.
	Len() int
	// Cap returns the current capacity of the backing store.
	Cap() int
}

// ProducerIndirect appends uintptr values.
type ProducerIndirect interface {
	// Push appends a value, growing the backing store when the resize
	// policy allows. Returns ErrAtCapacity if full and not growable.
	Push(elem uintptr) error
}

// ConsumerIndirect removes uintptr values.
type ConsumerIndirect interface {
	// Pop removes and returns the front value.
	// Returns (0, ErrEmpty) if the queue is empty.
	Pop() (uintptr, error)
}
