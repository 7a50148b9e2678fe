// Package mathtest is the arithmetic verification self-test unit. It checks
// the bit-scan, 64-bit division/modulus and integer square root primitives
// against fixed vectors, against an independent arbitrary-precision
// reference, and through the calling-convention probe.
package mathtest

import (
	"math/big"
	"runtime"

	"github.com/dkoosis/bootcheck/internal/mathprobe"
	"github.com/dkoosis/bootcheck/internal/selftest"
)

func init() {
	selftest.Register("math", run)
}

// site returns the file and line of the helper's caller, so that failures
// inside a helper are attributed to the vector that supplied the values.
func site() (string, int) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "???", 0
	}
	return file, line
}

// flslOK verifies one bit-scan vector on three paths: the ladder
// implementation, the independent reference, and a forced runtime call.
// Divergence between the folded and called forms is exactly the class of bug
// the dual check exists to catch.
func flslOK(value uint64, msb uint) {
	file, line := site()

	selftest.OkAtf(mathprobe.Flsl(value) == msb, file, line, "flsl")
	selftest.OkAtf(mathprobe.FlslRef(value) == msb, file, line, "flsl reference")
	selftest.OkAtf(mathprobe.FlslVar(value) == msb, file, line, "flsl via call")
}

// u64divmodOK verifies one unsigned division vector: internal consistency,
// agreement with big.Int, and exact quotient/remainder through the probe.
func u64divmodOK(dividend, divisor, quotient, remainder uint64) {
	file, line := site()

	selftest.OkAtf(divisor*quotient+remainder == dividend, file, line,
		"vector self-consistency")

	q, r := bigDivMod(new(big.Int).SetUint64(dividend), new(big.Int).SetUint64(divisor))
	selftest.OkAtf(q.Uint64() == quotient, file, line, "big.Int quotient")
	selftest.OkAtf(r.Uint64() == remainder, file, line, "big.Int remainder")

	selftest.OkAtf(mathprobe.U64Div(dividend, divisor, file, line) == quotient,
		file, line, "probe quotient")
	selftest.OkAtf(mathprobe.U64Mod(dividend, divisor, file, line) == remainder,
		file, line, "probe remainder")
}

// s64divmodOK is the signed counterpart: truncated division, remainder sign
// following the dividend, matching big.Int's Quo/Rem pair.
func s64divmodOK(dividend, divisor, quotient, remainder int64) {
	file, line := site()

	selftest.OkAtf(divisor*quotient+remainder == dividend, file, line,
		"vector self-consistency")

	q, r := bigDivMod(big.NewInt(dividend), big.NewInt(divisor))
	selftest.OkAtf(q.Int64() == quotient, file, line, "big.Int quotient")
	selftest.OkAtf(r.Int64() == remainder, file, line, "big.Int remainder")

	selftest.OkAtf(mathprobe.S64Div(dividend, divisor, file, line) == quotient,
		file, line, "probe quotient")
	selftest.OkAtf(mathprobe.S64Mod(dividend, divisor, file, line) == remainder,
		file, line, "probe remainder")
}

// bigDivMod returns the truncated quotient and remainder, the semantics Go's
// native / and % implement.
func bigDivMod(dividend, divisor *big.Int) (*big.Int, *big.Int) {
	q := new(big.Int)
	r := new(big.Int)
	return q.QuoRem(dividend, divisor, r)
}

// isqrtOK verifies one square-root vector plus the floor property around it.
func isqrtOK(value, root uint64) {
	file, line := site()

	got := mathprobe.Isqrt(value)
	selftest.OkAtf(got == root, file, line, "isqrt")
	selftest.OkAtf(got*got <= value, file, line, "isqrt floor lower bound")
	if got < 0xffffffff {
		selftest.OkAtf((got+1)*(got+1) > value, file, line, "isqrt floor upper bound")
	}
}

func run() {
	// Bit scan
	flslOK(0, 0)
	flslOK(1, 1)
	flslOK(255, 8)
	flslOK(256, 9)
	flslOK(257, 9)
	flslOK(0x69505845, 31)
	flslOK(1<<63, 64)
	flslOK(^uint64(0), 64)

	// 64-bit division and modulus. Each vector runs through the probe, so
	// these checks double as the calling-convention conformance pass.
	u64divmodOK(0x2b90ddccf699f765, 0xed9f5e73, 0x2eef6ab4, 0x0e12f089)
	s64divmodOK(0x2b90ddccf699f765, 0xed9f5e73, 0x2eef6ab4, 0x0e12f089)
	u64divmodOK(0xc09e00dcb9e34b54, 0x35968185cdc744f3, 3, 0x1fda7c4b508d7c7b)
	s64divmodOK(-0x3f61ff23461cb4ac, 0x35968185cdc744f3, -1, -0x9cb7d9d78556fb9)
	u64divmodOK(0, 0x5b2f2737f4ff, 0, 0)
	s64divmodOK(0, -0x44ff2128d89ddf81, 0, 0)

	// Integer square root
	isqrtOK(0, 0)
	isqrtOK(1, 1)
	isqrtOK(255, 15)
	isqrtOK(256, 16)
	isqrtOK(257, 16)
	isqrtOK(0xa53df2ad, 52652)
	isqrtOK(0x123793c6, 17482)
	isqrtOK(^uint64(0), 0xffffffff)
}
