// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Ring is a dynamically sized circular FIFO queue.
//
// Elements occupy the logical window start, start+1, ..., start+size-1
// taken modulo the backing array length. Push appends at the logical end,
// Pop removes from the logical front, and Peek reads at a logical offset
// without removing. When the backing array fills, Push grows it according
// to the growth factor; when occupancy falls below the shrink factor, Pop
// shrinks it with hysteresis (see Pop).
//
// A Ring requires exclusive access per instance: there is no internal
// synchronization. Wrap it with external locking if shared between
// goroutines.
//
// Push and Pop are amortized O(1); a resize is O(size) and its frequency
// is bounded by the configured factors.
type Ring[T any] struct {
	buffer []T
	start  int
	size   int

	minCapacity  int
	growthFactor float64
	shrinkFactor float64
}

// NewRing creates a queue with the given initial capacity and the default
// policy: MinCapacity 16, GrowthFactor 2.0, ShrinkFactor 0 (no shrinking).
// Use [New] and [Build] to customize the policy.
//
// Panics if capacity < 1.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		panic("ringq: capacity must be >= 1")
	}
	return &Ring[T]{
		buffer:       make([]T, capacity),
		minCapacity:  DefaultMinCapacity,
		growthFactor: DefaultGrowthFactor,
		shrinkFactor: DefaultShrinkFactor,
	}
}

// Push appends an element to the logical end of the queue.
// The element is copied into the queue's backing store; the queue owns
// the copy until Pop hands it to a caller.
//
// When the queue is full, Push first grows the backing store to
// floor(size * GrowthFactor). If the policy yields no effective growth
// (GrowthFactor <= 1.0, static-capacity mode), Push returns ErrAtCapacity
// and the queue is unchanged. ErrAtCapacity is a recoverable condition:
// dropping, retrying after a Pop, or applying backpressure is the
// caller's decision.
func (q *Ring[T]) Push(elem *T) error {
	if q.size == len(q.buffer) {
		newCapacity := int(float64(q.size) * q.growthFactor)
		if newCapacity <= len(q.buffer) {
			return ErrAtCapacity
		}
		q.resize(newCapacity)
	}
	q.buffer[(q.start+q.size)%len(q.buffer)] = *elem
	q.size++
	return nil
}

// Pop removes and returns the element at the logical front of the queue.
// Ownership transfers to the caller; the vacated slot is zeroed so the
// queue retains no reference to the element.
//
// Returns (zero-value, ErrEmpty) if the queue is empty. ErrEmpty is the
// expected terminal state of a drain loop, not a failure.
//
// After a removal, if size >= MinCapacity and size/cap < ShrinkFactor,
// the backing store shrinks to max(2*size, MinCapacity). The factor-of-two
// headroom keeps pushes and further pops near the threshold from
// triggering another reallocation immediately.
func (q *Ring[T]) Pop() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmpty
	}
	elem := q.buffer[q.start]
	q.buffer[q.start] = zero
	q.start = (q.start + 1) % len(q.buffer)
	q.size--
	if q.size >= q.minCapacity && float64(q.size) < q.shrinkFactor*float64(len(q.buffer)) {
		if newCapacity := max(2*q.size, q.minCapacity); newCapacity < len(q.buffer) {
			q.resize(newCapacity)
		}
	}
	return elem, nil
}

// Peek returns the element at logical offset i from the front, 0-indexed,
// without removing it. Returns (zero-value, ErrOutOfRange) unless
// 0 <= i < Len(). Peek never mutates the queue.
func (q *Ring[T]) Peek(i int) (T, error) {
	if i < 0 || i >= q.size {
		var zero T
		return zero, ErrOutOfRange
	}
	return q.buffer[(q.start+i)%len(q.buffer)], nil
}

// Len returns the number of elements currently in the queue.
func (q *Ring[T]) Len() int {
	return q.size
}

// Cap returns the current capacity of the backing store.
func (q *Ring[T]) Cap() int {
	return len(q.buffer)
}

// Clear removes all elements without draining them, zeroing every live
// slot so the queue retains no references. Capacity is kept.
//
// Callers that own teardown responsibilities for buffered elements should
// drain with Pop instead; Clear discards.
func (q *Ring[T]) Clear() {
	var zero T
	for i := range q.size {
		q.buffer[(q.start+i)%len(q.buffer)] = zero
	}
	q.start, q.size = 0, 0
}

// resize reallocates the backing store to newCapacity slots and
// linearizes the circular layout: the live window is copied to the front
// of the new store, in two segments when it wraps around the end of the
// old one. FIFO order is preserved exactly and start resets to 0.
func (q *Ring[T]) resize(newCapacity int) {
	buffer := make([]T, newCapacity)
	if head := len(q.buffer) - q.start; head >= q.size {
		copy(buffer, q.buffer[q.start:q.start+q.size])
	} else {
		n := copy(buffer, q.buffer[q.start:])
		copy(buffer[n:], q.buffer[:q.size-n])
	}
	q.buffer = buffer
	q.start = 0
}
