package num

type RandSource interface {
	Uint64() uint64
}

func LargerBigUint(a, b BigUint) BigUint {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

func SmallerBigUint(a, b BigUint) BigUint {
	if a.Cmp(b) > 0 {
		return b
	}
	return a
}
