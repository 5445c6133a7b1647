// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq_test

import (
	"testing"
	"unsafe"

	"code.hybscloud.com/ringq"
)

// =============================================================================
// Builder API Tests (Consolidated)
// =============================================================================

// TestBuilderAPI tests all builder flavor combinations in a table-driven
// fashion: each built queue must round-trip one element and report the
// exact configured capacity (no rounding).
func TestBuilderAPI(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (cap int, push func() error, pop func() (any, error))
		wantCap int
	}{
		{
			name: "Generic",
			build: func() (int, func() error, func() (any, error)) {
				q := ringq.Build[int](ringq.New(7))
				return q.Cap(), func() error { v := 42; return q.Push(&v) }, func() (any, error) { return q.Pop() }
			},
			wantCap: 7,
		},
		{
			name: "GenericStatic",
			build: func() (int, func() error, func() (any, error)) {
				q := ringq.Build[string](ringq.New(5).Static())
				return q.Cap(), func() error { v := "x"; return q.Push(&v) }, func() (any, error) { return q.Pop() }
			},
			wantCap: 5,
		},
		{
			name: "GenericShrinking",
			build: func() (int, func() error, func() (any, error)) {
				q := ringq.Build[int](ringq.New(32).MinCapacity(8).ShrinkFactor(0.25))
				return q.Cap(), func() error { v := 42; return q.Push(&v) }, func() (any, error) { return q.Pop() }
			},
			wantCap: 32,
		},
		{
			name: "Ptr",
			build: func() (int, func() error, func() (any, error)) {
				q := ringq.New(7).BuildPtr()
				v := 42
				return q.Cap(), func() error { return q.Push(unsafe.Pointer(&v)) }, func() (any, error) { return q.Pop() }
			},
			wantCap: 7,
		},
		{
			name: "PtrStatic",
			build: func() (int, func() error, func() (any, error)) {
				q := ringq.New(7).Static().BuildPtr()
				v := 42
				return q.Cap(), func() error { return q.Push(unsafe.Pointer(&v)) }, func() (any, error) { return q.Pop() }
			},
			wantCap: 7,
		},
		{
			name: "Indirect",
			build: func() (int, func() error, func() (any, error)) {
				q := ringq.New(7).BuildIndirect()
				return q.Cap(), func() error { return q.Push(42) }, func() (any, error) { return q.Pop() }
			},
			wantCap: 7,
		},
		{
			name: "IndirectShrinking",
			build: func() (int, func() error, func() (any, error)) {
				q := ringq.New(7).MinCapacity(4).ShrinkFactor(0.1).BuildIndirect()
				return q.Cap(), func() error { return q.Push(42) }, func() (any, error) { return q.Pop() }
			},
			wantCap: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotCap, push, pop := tt.build()
			if gotCap != tt.wantCap {
				t.Fatalf("Cap: got %d, want %d", gotCap, tt.wantCap)
			}
			if err := push(); err != nil {
				t.Fatalf("Push: %v", err)
			}
			if _, err := pop(); err != nil {
				t.Fatalf("Pop: %v", err)
			}
		})
	}
}

// TestBuilderDefaults verifies the default policy through observable
// behavior: growth doubles, shrinking never happens.
func TestBuilderDefaults(t *testing.T) {
	q := ringq.Build[int](ringq.New(16))
	for i := range 17 {
		v := i
		if err := q.Push(&v); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	if q.Cap() != 32 {
		t.Fatalf("default growth: got cap %d, want 32", q.Cap())
	}
	for range 17 {
		q.Pop()
	}
	if q.Cap() != 32 {
		t.Fatalf("default policy must not shrink: got cap %d, want 32", q.Cap())
	}
}

// TestConstructionPanics tests construction-time misuse across the
// builder and the direct constructors.
func TestConstructionPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"NewZeroCapacity", func() { ringq.New(0) }},
		{"NewNegativeCapacity", func() { ringq.New(-1) }},
		{"NewRingZeroCapacity", func() { ringq.NewRing[int](0) }},
		{"NewRingPtrZeroCapacity", func() { ringq.NewRingPtr(0) }},
		{"NewRingIndirectZeroCapacity", func() { ringq.NewRingIndirect(0) }},
		{"MinCapacityZero", func() { ringq.New(4).MinCapacity(0) }},
		{"NegativeGrowthFactor", func() { ringq.New(4).GrowthFactor(-1) }},
		{"NegativeShrinkFactor", func() { ringq.New(4).ShrinkFactor(-0.1) }},
		{"ShrinkFactorOne", func() { ringq.New(4).ShrinkFactor(1.0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			tt.fn()
		})
	}
}
