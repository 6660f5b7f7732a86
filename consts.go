package num

import (
	"errors"
	"regexp"
)

const (
	limbBits      = 32
	limbHexDigits = limbBits / 4
	limbMask      = 1<<limbBits - 1

	intSize = 32 << (^uint(0) >> 63)
)

var (
	// ErrInvalidFormat is wrapped by every *ParseError.
	ErrInvalidFormat = errors.New("num: invalid hexadecimal format")

	// hexPattern matches a lowercase hex numeral with no leading zero digit.
	hexPattern = regexp.MustCompile(`^[1-9a-f][0-9a-f]*$`)

	// zeroLimbs backs the nil BigUint. It is never written to.
	zeroLimbs = []uint32{0}
)
