// Package mathprobe exercises wide-integer arithmetic through a real,
// non-folded call path and checks that the stack is left exactly as the
// caller expects.
//
// The argument-cleanup convention for synthesized arithmetic helpers can be
// masked by a frame-pointer-based caller, which reloads the stack pointer
// from the frame pointer on return. The probe runs the operation in a
// two-iteration loop and asserts that a stack-derived marker is identical on
// both iterations; a mismatch surfaces as an ordinary failed assertion. The
// trip count and operands are laundered through non-inlinable calls so the
// loop cannot be unrolled and the operation cannot be hoisted out of it.
package mathprobe

import (
	"unsafe"

	"github.com/dkoosis/bootcheck/internal/selftest"
)

// sink forces results to be materialized instead of optimized away.
var sink uint64

//go:noinline
func launder(x uint64) uint64 { return x }

//go:noinline
func launderS(x int64) int64 { return x }

// stackMarker returns a value at a fixed offset from the current stack
// pointer. Must not be inlined: the marker only means something if a real
// call frame is pushed and popped around it.
//
//go:noinline
func stackMarker() uintptr {
	var anchor int
	return uintptr(unsafe.Pointer(&anchor))
}

//go:noinline
func udiv(a, b uint64) uint64 { return a / b }

//go:noinline
func umod(a, b uint64) uint64 { return a % b }

//go:noinline
func sdiv(a, b int64) int64 { return a / b }

//go:noinline
func smod(a, b int64) int64 { return a % b }

// probeU64 runs op(dividend, divisor) in a non-unrollable loop of two
// iterations, asserting a stable stack marker between them. The assertion is
// attributed to the caller-supplied source location, since the logical check
// lives at the verification-suite call site, not here. Returns the result of
// the final iteration so the call site doubles as a correctness input.
func probeU64(dividend, divisor uint64, op func(a, b uint64) uint64,
	file string, line int) uint64 {

	trips := int(launder(2))
	var mark uintptr
	var result uint64

	for i := 0; i < trips; i++ {
		m := stackMarker()
		if i == 0 {
			mark = m
		} else {
			selftest.OkAtf(m == mark, file, line,
				"stack pointer changed across arithmetic call")
		}

		dividend = launder(dividend)
		divisor = launder(divisor)
		result = op(dividend, divisor)
		sink = result
	}
	return result
}

func probeS64(dividend, divisor int64, op func(a, b int64) int64,
	file string, line int) int64 {

	trips := int(launder(2))
	var mark uintptr
	var result int64

	for i := 0; i < trips; i++ {
		m := stackMarker()
		if i == 0 {
			mark = m
		} else {
			selftest.OkAtf(m == mark, file, line,
				"stack pointer changed across arithmetic call")
		}

		dividend = launderS(dividend)
		divisor = launderS(divisor)
		result = op(dividend, divisor)
		sink = uint64(result)
	}
	return result
}

// U64Div divides through the probe, reporting any stack-discipline failure
// against the supplied source location.
func U64Div(dividend, divisor uint64, file string, line int) uint64 {
	return probeU64(dividend, divisor, udiv, file, line)
}

// U64Mod is the modulus counterpart of U64Div.
func U64Mod(dividend, divisor uint64, file string, line int) uint64 {
	return probeU64(dividend, divisor, umod, file, line)
}

// S64Div divides (truncated toward zero) through the probe.
func S64Div(dividend, divisor int64, file string, line int) int64 {
	return probeS64(dividend, divisor, sdiv, file, line)
}

// S64Mod takes the remainder (sign follows the dividend) through the probe.
func S64Mod(dividend, divisor int64, file string, line int) int64 {
	return probeS64(dividend, divisor, smod, file, line)
}
