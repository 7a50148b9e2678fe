package mathprobe

import "math/bits"

// flslTable gives the 1-based index of the most significant set bit for a
// four-bit value.
var flslTable = [16]uint{0, 1, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4, 4, 4}

// Flsl returns the 1-based index of the most significant set bit of x, or 0
// if no bits are set. This is the shift-ladder implementation whose agreement
// with the reference is verified by the math self-test unit.
func Flsl(x uint64) uint {
	var n uint

	if x&0xFFFFFFFF00000000 != 0 {
		n += 32
		x >>= 32
	}
	if x&0x00000000FFFF0000 != 0 {
		n += 16
		x >>= 16
	}
	if x&0x000000000000FF00 != 0 {
		n += 8
		x >>= 8
	}
	if x&0x00000000000000F0 != 0 {
		n += 4
		x >>= 4
	}
	return n + flslTable[x&0xf]
}

// FlslRef is the independent reference for Flsl.
func FlslRef(x uint64) uint {
	return uint(bits.Len64(x))
}

// FlslVar forces a genuine runtime call to Flsl, so that a call-path result
// can be compared against one the compiler was free to fold.
//
//go:noinline
func FlslVar(x uint64) uint {
	return Flsl(launder(x))
}
