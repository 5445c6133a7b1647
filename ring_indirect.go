// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// RingIndirect is a dynamically sized circular FIFO queue for uintptr
// values. Useful for index- or handle-based data structures: pool slot
// indices, resource ids, opaque tokens.
//
// Same resize policy and exclusive-access contract as Ring.
type RingIndirect struct {
	buffer []uintptr
	start  int
	size   int

	minCapacity  int
	growthFactor float64
	shrinkFactor float64
}

// NewRingIndirect creates a uintptr queue with the default policy.
// Panics if capacity < 1.
func NewRingIndirect(capacity int) *RingIndirect {
	if capacity < 1 {
		panic("ringq: capacity must be >= 1")
	}
	return &RingIndirect{
		buffer:       make([]uintptr, capacity),
		minCapacity:  DefaultMinCapacity,
		growthFactor: DefaultGrowthFactor,
		shrinkFactor: DefaultShrinkFactor,
	}
}

// Push appends a value to the logical end of the queue, growing the
// backing store if the policy allows. Returns ErrAtCapacity when full in
// static-capacity mode.
func (q *RingIndirect) Push(elem uintptr) error {
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

// Pop removes and returns the front value.
// Returns (0, ErrEmpty) if the queue is empty.
func (q *RingIndirect) Pop() (uintptr, error) {
	if q.size == 0 {
		return 0, ErrEmpty
	}
	elem := q.buffer[q.start]
	q.buffer[q.start] = 0
	q.start = (q.start + 1) % len(q.buffer)
	q.size--
	if q.size >= q.minCapacity && float64(q.size) < q.shrinkFactor*float64(len(q.buffer)) {
		if newCapacity := max(2*q.size, q.minCapacity); newCapacity < len(q.buffer) {
			q.resize(newCapacity)
		}
	}
	return elem, nil
}

// Peek returns the value at logical offset i without removing it.
// Returns (0, ErrOutOfRange) unless 0 <= i < Len().
func (q *RingIndirect) Peek(i int) (uintptr, error) {
	if i < 0 || i >= q.size {
		return 0, ErrOutOfRange
	}
	return q.buffer[(q.start+i)%len(q.buffer)], nil
}

// Len returns the number of elements currently in the queue.
func (q *RingIndirect) Len() int {
	return q.size
}

// Cap returns the current capacity of the backing store.
func (q *RingIndirect) Cap() int {
	return len(q.buffer)
}

// Clear discards all elements and resets the queue. Capacity is kept.
func (q *RingIndirect) Clear() {
	for i := range q.size {
		q.buffer[(q.start+i)%len(q.buffer)] = 0
	}
	q.start, q.size = 0, 0
}

func (q *RingIndirect) resize(newCapacity int) {
	buffer := make([]uintptr, newCapacity)
	if head := len(q.buffer) - q.start; head >= q.size {
		copy(buffer, q.buffer[q.start:q.start+q.size])
	} else {
		n := copy(buffer, q.buffer[q.start:])
		copy(buffer[n:], q.buffer[:q.size-n])
	}
	q.buffer = buffer
	q.start = 0
}
