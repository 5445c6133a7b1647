// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrAtCapacity indicates Push was rejected because the queue is full and
// the growth policy cannot expand it (static-capacity mode, or a growth
// factor that yields no larger capacity after rounding).
//
// ErrAtCapacity is a control flow signal, not a failure: bounded-memory
// configurations reject pushes by design. The caller decides the recovery
// policy (drop the element, drop the oldest via Pop and retry, or apply
// backpressure); the queue never drops data itself.
//
// ErrAtCapacity wraps [iox.ErrWouldBlock] for ecosystem consistency, so
// both errors.Is(err, ErrAtCapacity) and IsWouldBlock(err) match.
var ErrAtCapacity = fmt.Errorf("ringq: queue at capacity: %w", iox.ErrWouldBlock)

// ErrEmpty indicates Pop was called on an empty queue.
//
// ErrEmpty is the expected terminal state of a drain loop, not a failure.
// It wraps [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	for {
//	    rec, err := q.Pop()
//	    if err != nil {
//	        break // drained
//	    }
//	    handle(rec)
//	}
var ErrEmpty = fmt.Errorf("ringq: queue empty: %w", iox.ErrWouldBlock)

// ErrOutOfRange indicates a Peek index outside [0, Len()).
//
// Unlike ErrAtCapacity and ErrEmpty this is a caller bug, not a
// control flow signal, so it does not wrap iox.ErrWouldBlock. The queue
// state is unaffected.
var ErrOutOfRange = errors.New("ringq: peek index out of range")

// IsWouldBlock reports whether err indicates the operation could not
// proceed right now (queue full or empty). Matches both ErrAtCapacity and
// ErrEmpty. Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrAtCapacity, and ErrEmpty.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
