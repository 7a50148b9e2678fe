package mathprobe

// Isqrt returns the integer square root of value: the largest root with
// root*root <= value. Classic shift-and-subtract, two bits per iteration.
func Isqrt(value uint64) uint64 {
	var root uint64

	bit := uint64(1) << 62
	for bit > value {
		bit >>= 2
	}

	for bit != 0 {
		if value >= root+bit {
			value -= root + bit
			root = root>>1 + bit
		} else {
			root >>= 1
		}
		bit >>= 2
	}
	return root
}
