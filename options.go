// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "unsafe"

// Default resize policy values. Every queue created without explicit
// builder configuration uses these.
const (
	// DefaultMinCapacity is the floor below which shrinking never
	// reduces the backing store.
	DefaultMinCapacity = 16
	// DefaultGrowthFactor is the multiplier applied to the element count
	// when a full queue must expand.
	DefaultGrowthFactor = 2.0
	// DefaultShrinkFactor disables shrinking: capacity only grows.
	DefaultShrinkFactor = 0.0
)

// Options configures queue creation and resize policy.
type Options struct {
	// Initial capacity of the backing store.
	capacity int

	// Resize policy (per-instance, fixed at creation)
	minCapacity  int
	growthFactor float64
	shrinkFactor float64
}

// Builder creates queues with fluent policy configuration.
//
// Example:
//
//	// Growable queue that also releases memory after bursts
//	q := ringq.Build[Event](ringq.New(64).ShrinkFactor(0.25))
//
//	// Bounded-memory queue: Push fails with ErrAtCapacity once full
//	q := ringq.Build[Event](ringq.New(256).Static())
//
//	// Pointer flavor with a higher shrink floor
//	q := ringq.New(64).MinCapacity(64).ShrinkFactor(0.25).BuildPtr()
type Builder struct {
	opts Options
}

// New creates a queue builder with the given initial capacity.
//
// Capacity is used exactly as given (no power-of-2 rounding): the backing
// store allocates capacity slots.
//
// Panics if capacity < 1.
//
// Example:
//
//	b := ringq.New(64).ShrinkFactor(0.25)
//	q := ringq.Build[int](b)
func New(capacity int) *Builder {
	if capacity < 1 {
		panic("ringq: capacity must be >= 1")
	}
	return &Builder{opts: Options{
		capacity:     capacity,
		minCapacity:  DefaultMinCapacity,
		growthFactor: DefaultGrowthFactor,
		shrinkFactor: DefaultShrinkFactor,
	}}
}

// MinCapacity sets the floor below which shrinking never reduces the
// backing store. A shrink also only triggers while at least n elements
// remain, so short queues never thrash.
//
// Panics if n < 1.
func (b *Builder) MinCapacity(n int) *Builder {
	if n < 1 {
		panic("ringq: min capacity must be >= 1")
	}
	b.opts.minCapacity = n
	return b
}

// GrowthFactor sets the multiplier applied to the element count when a
// full queue must expand. Values <= 1.0 disable growth entirely
// (static-capacity mode, same as Static).
//
// Panics if f is negative.
func (b *Builder) GrowthFactor(f float64) *Builder {
	if f < 0 {
		panic("ringq: growth factor must be >= 0")
	}
	b.opts.growthFactor = f
	return b
}

// ShrinkFactor sets the occupancy fraction below which Pop shrinks the
// backing store. 0 disables shrinking (capacity only grows).
//
// Choose a factor well below 1 (e.g. 0.25) to leave hysteresis between
// growing and shrinking; the shrink target itself always leaves 2x
// headroom over the remaining elements.
//
// Panics unless 0 <= f < 1.
func (b *Builder) ShrinkFactor(f float64) *Builder {
	if f < 0 || f >= 1 {
		panic("ringq: shrink factor must be in [0, 1)")
	}
	b.opts.shrinkFactor = f
	return b
}

// Static disables growth: once the queue is full, Push fails with
// ErrAtCapacity instead of reallocating. Shorthand for GrowthFactor(1).
//
// Static-capacity mode gives bounded memory; the caller owns the
// overflow policy (drop, drop-oldest, backpressure).
func (b *Builder) Static() *Builder {
	b.opts.growthFactor = 1.0
	return b
}

// Build creates a Ring[T] with the builder's capacity and policy.
//
// For the element flavors, use:
//   - (*Builder).BuildPtr() → *RingPtr (unsafe.Pointer elements)
//   - (*Builder).BuildIndirect() → *RingIndirect (uintptr elements)
func Build[T any](b *Builder) *Ring[T] {
	return &Ring[T]{
		buffer:       make([]T, b.opts.capacity),
		minCapacity:  b.opts.minCapacity,
		growthFactor: b.opts.growthFactor,
		shrinkFactor: b.opts.shrinkFactor,
	}
}

// BuildPtr creates a RingPtr for unsafe.Pointer elements.
func (b *Builder) BuildPtr() *RingPtr {
	return &RingPtr{
		buffer:       make([]unsafe.Pointer, b.opts.capacity),
		minCapacity:  b.opts.minCapacity,
		growthFactor: b.opts.growthFactor,
		shrinkFactor: b.opts.shrinkFactor,
	}
}

// BuildIndirect creates a RingIndirect for uintptr values
// (pool indices, handles).
func (b *Builder) BuildIndirect() *RingIndirect {
	return &RingIndirect{
		buffer:       make([]uintptr, b.opts.capacity),
		minCapacity:  b.opts.minCapacity,
		growthFactor: b.opts.growthFactor,
		shrinkFactor: b.opts.shrinkFactor,
	}
}
