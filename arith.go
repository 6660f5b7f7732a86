package num

import "math/bits"

// addLimbs returns x + y using a ripple carry. x and y must be canonical;
// the result is canonical and never aliases either input.
func addLimbs(x, y []uint32) []uint32 {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	z := make([]uint32, 0, n+1)

	var carry uint64
	for i := 0; i < len(x) || i < len(y) || carry > 0; i++ {
		sum := carry
		if i < len(x) {
			sum += uint64(x[i])
		}
		if i < len(y) {
			sum += uint64(y[i])
		}
		carry = sum >> limbBits
		z = append(z, uint32(sum&limbMask))
	}
	return z
}

// mulLimbs returns x * y using the schoolbook method. Every partial product
// is folded into z[i+j] and its carry is rippled upwards until it is
// absorbed, before the next pair is visited.
//
// z never overflows: after any prefix of pairs the accumulated value is at
// most x*y < 1<<(32*(len(x)+len(y))).
func mulLimbs(x, y []uint32) []uint32 {
	z := make([]uint32, len(x)+len(y))

	for i, xi := range x {
		for j, yj := range y {
			// (2^32-1)^2 + (2^32-1) < 2^64, so t cannot wrap.
			t := uint64(xi)*uint64(yj) + uint64(z[i+j])
			z[i+j] = uint32(t & limbMask)

			carry := t >> limbBits
			for k := i + j + 1; carry > 0; k++ {
				t = uint64(z[k]) + carry
				z[k] = uint32(t & limbMask)
				carry = t >> limbBits
			}
		}
	}
	return normLimbs(z)
}

// normLimbs strips high zero limbs, keeping at least one. The returned slice
// shares storage with z unless z is entirely zero.
func normLimbs(z []uint32) []uint32 {
	n := len(z)
	for n > 1 && z[n-1] == 0 {
		n--
	}
	if n == 0 || (n == 1 && z[0] == 0) {
		return zeroLimbs
	}
	return z[:n]
}

// cmpLimbs compares two canonical limb slices.
func cmpLimbs(x, y []uint32) int {
	if len(x) > len(y) {
		return 1
	} else if len(x) < len(y) {
		return -1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] > y[i] {
			return 1
		} else if x[i] < y[i] {
			return -1
		}
	}
	return 0
}

func bitLenLimbs(x []uint32) int {
	top := len(x) - 1
	return top*limbBits + bits.Len32(x[top])
}
