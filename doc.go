// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringq provides a dynamically sized circular FIFO queue.
//
// The queue is array-backed with true circular indexing: the logical
// front wraps around the physical array bounds, so neither push, pop,
// nor a wraparound requires moving elements. The backing store grows and
// shrinks under a per-instance policy, giving amortized O(1) push/pop.
//
// # Quick Start
//
// Direct constructors (default policy):
//
//	q := ringq.NewRing[Event](64)
//	q := ringq.NewRingPtr(64)      // unsafe.Pointer elements
//	q := ringq.NewRingIndirect(64) // uintptr handles
//
// Builder API for per-instance resize policy:
//
//	q := ringq.Build[Event](ringq.New(64).ShrinkFactor(0.25))
//	q := ringq.Build[Event](ringq.New(256).Static()) // bounded memory
//
// # Basic Usage
//
//	q := ringq.NewRing[string](16)
//
//	// Push (non-blocking)
//	msg := "device lost"
//	if err := q.Push(&msg); err != nil {
//	    // ErrAtCapacity: full and not growable (static-capacity mode)
//	}
//
//	// Pop (non-blocking, transfers ownership to the caller)
//	elem, err := q.Pop()
//	if err != nil {
//	    // ErrEmpty: nothing buffered
//	}
//
//	// Peek inspects without removing
//	front, _ := q.Peek(0)
//
// # Resize Policy
//
// Three per-instance knobs control the backing store:
//
//	MinCapacity  (default 16)  floor for shrinking; shrink also requires
//	                           at least this many elements to remain
//	GrowthFactor (default 2.0) full queue grows to floor(len*factor);
//	                           <= 1.0 disables growth entirely
//	ShrinkFactor (default 0)   pop shrinks once occupancy falls below
//	                           this fraction; 0 disables shrinking
//
// A triggered shrink resizes to max(2*len, MinCapacity) rather than to
// the exact element count. The headroom is deliberate hysteresis: a queue
// sitting at a stable occupancy never oscillates between grow and shrink,
// and a full drain of n elements performs O(log n) reallocations.
//
// A resize linearizes the live window to the front of the new store and
// preserves FIFO order exactly. A failed push or pop never changes
// queue state.
//
// # Common Patterns
//
// Buffered diagnostics (push records as produced, drain on demand):
//
//	log := ringq.NewRing[Record](64)
//
//	// Producer side: record events as they occur
//	log.Push(&rec)
//
//	// Drain side: flush all buffered records, oldest first
//	for {
//	    rec, err := log.Pop()
//	    if err != nil {
//	        break // drained
//	    }
//	    report(rec)
//	}
//
// Bounded memory with caller-side drop-oldest:
//
//	q := ringq.Build[Sample](ringq.New(1024).Static())
//
//	if err := q.Push(&s); err != nil {
//	    q.Pop()     // evict the oldest
//	    q.Push(&s)  // cannot fail: a slot is free now
//	}
//
// In-order inspection without draining:
//
//	for i := range q.Len() {
//	    rec, _ := q.Peek(i)
//	    inspect(rec)
//	}
//
// # Queue Flavors
//
// Three element flavors share identical semantics:
//
//	Ring[T]      - generic type-safe queue for any element type
//	RingPtr      - unsafe.Pointer elements, zero-copy ownership transfer
//	RingIndirect - uintptr elements (pool indices, handles)
//
// RingPtr transfers ownership: the producer must not touch an object
// after pushing its pointer, and the consumer that pops it becomes
// responsible for it.
//
// # Error Conditions
//
// All conditions are returned to the immediate caller; the queue never
// logs, retries, or silently drops data.
//
//	ErrAtCapacity - push rejected under static-capacity policy (recoverable)
//	ErrEmpty      - pop on an empty queue (expected end of a drain)
//	ErrOutOfRange - peek index outside [0, Len()) (caller bug)
//
// ErrAtCapacity and ErrEmpty wrap iox.ErrWouldBlock, so ecosystem-wide
// predicates like IsWouldBlock and IsNonFailure treat them as
// control flow, not failures.
//
// # Concurrency
//
// None. A queue instance assumes exclusive access: operations are
// synchronous, complete in bounded time, and perform no internal
// locking. Callers that share an instance across goroutines must
// synchronize externally; for concurrent FIFO hand-off between
// goroutines, use a bounded lock-free queue instead.
package ringq
