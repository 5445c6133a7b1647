// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "unsafe"

// RingPtr is a dynamically sized circular FIFO queue for unsafe.Pointer
// values. Useful for zero-copy ownership transfer of records between a
// producer and a drain loop.
//
// Ownership semantics: the queue exclusively owns each pushed pointer
// until Pop returns it, at which point the caller becomes responsible for
// the pointee. Popped slots are cleared so the queue never retains a
// popped pointer.
//
// Same resize policy and exclusive-access contract as Ring.
type RingPtr struct {
	buffer []unsafe.Pointer
	start  int
	size   int

	minCapacity  int
	growthFactor float64
	shrinkFactor float64
}

// NewRingPtr creates a pointer queue with the default policy.
// Panics if capacity < 1.
func NewRingPtr(capacity int) *RingPtr {
	if capacity < 1 {
		panic("ringq: capacity must be >= 1")
	}
	return &RingPtr{
		buffer:       make([]unsafe.Pointer, capacity),
		minCapacity:  DefaultMinCapacity,
		growthFactor: DefaultGrowthFactor,
		shrinkFactor: DefaultShrinkFactor,
	}
}

// Push appends a pointer to the logical end of the queue, growing the
// backing store if the policy allows. Returns ErrAtCapacity when full in
// static-capacity mode. The queue owns the pointee until Pop.
func (q *RingPtr) Push(elem unsafe.Pointer) error {
	if q.size == len(q.buffer) {
		newCapacity := int(float64(q.size) * q.growthFactor)
		if newCapacity <= len(q.buffer) {
			return ErrAtCapacity
		}
		q.resize(newCapacity)
	}
	q.buffer[(q.start+q.size)%len(q.buffer)] = elem
	q.size++
	return nil
}

// Pop removes and returns the front pointer, transferring ownership of
// the pointee to the caller. Returns (nil, ErrEmpty) if the queue is
// empty.
func (q *RingPtr) Pop() (unsafe.Pointer, error) {
	if q.size == 0 {
		return nil, ErrEmpty
	}
	elem := q.buffer[q.start]
	q.buffer[q.start] = nil
	q.start = (q.start + 1) % len(q.buffer)
	q.size--
	if q.size >= q.minCapacity && float64(q.size) < q.shrinkFactor*float64(len(q.buffer)) {
		if newCapacity := max(2*q.size, q.minCapacity); newCapacity < len(q.buffer) {
			q.resize(newCapacity)
		}
	}
	return elem, nil
}

// Peek returns the pointer at logical offset i without removing it.
// Returns (nil, ErrOutOfRange) unless 0 <= i < Len(). Ownership stays
// with the queue.
func (q *RingPtr) Peek(i int) (unsafe.Pointer, error) {
	if i < 0 || i >= q.size {
		return nil, ErrOutOfRange
	}
	return q.buffer[(q.start+i)%len(q.buffer)], nil
}

// Len returns the number of elements currently in the queue.
func (q *RingPtr) Len() int {
	return q.size
}

// Cap returns the current capacity of the backing store.
func (q *RingPtr) Cap() int {
	return len(q.buffer)
}

// Clear discards all elements, clearing every live slot. Callers that
// must release the pointees should drain with Pop instead.
func (q *RingPtr) Clear() {
	for i := range q.size {
		q.buffer[(q.start+i)%len(q.buffer)] = nil
	}
	q.start, q.size = 0, 0
}

func (q *RingPtr) resize(newCapacity int) {
	buffer := make([]unsafe.Pointer, newCapacity)
	if head := len(q.buffer) - q.start; head >= q.size {
		copy(buffer, q.buffer[q.start:q.start+q.size])
	} else {
		n := copy(buffer, q.buffer[q.start:])
		copy(buffer[n:], q.buffer[:q.size-n])
	}
	q.buffer = buffer
	q.start = 0
}
