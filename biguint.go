package num

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const hexDigits = "0123456789abcdef"

// BigUint is an arbitrary-precision unsigned integer. The zero value is 0.
type BigUint struct {
	// Little-endian base 2^32 limbs with no high zero limbs, except for the
	// single-limb zero. nil is also zero.
	limbs []uint32
}

// ParseError is returned when text is not a hexadecimal numeral accepted by
// BigUintFromHexString. It wraps ErrInvalidFormat.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("num: biguint hex string %q invalid", e.Input)
}

func (e *ParseError) Unwrap() error { return ErrInvalidFormat }

func BigUintFrom32(v uint32) BigUint { return BigUint{limbs: []uint32{v}} }

func BigUintFrom64(v uint64) BigUint {
	if v>>limbBits == 0 {
		return BigUint{limbs: []uint32{uint32(v)}}
	}
	return BigUint{limbs: []uint32{uint32(v & limbMask), uint32(v >> limbBits)}}
}

// BigUintFromLimbs creates a BigUint from little-endian 32-bit limbs. The
// slice is copied; high zero limbs are discarded.
func BigUintFromLimbs(limbs []uint32) BigUint {
	cp := make([]uint32, len(limbs))
	copy(cp, limbs)
	return BigUint{limbs: normLimbs(cp)}
}

// BigUintFromHexString parses a hexadecimal numeral of any case. The first
// digit must not be zero and no prefix, sign or whitespace is permitted. The
// error, if any, is a *ParseError.
func BigUintFromHexString(s string) (out BigUint, err error) {
	hex := strings.ToLower(s)
	if !hexPattern.MatchString(hex) {
		return out, &ParseError{Input: s}
	}

	limbs := make([]uint32, 0, len(hex)/limbHexDigits+1)
	for end := len(hex); end > 0; end -= limbHexDigits {
		start := end - limbHexDigits
		if start < 0 {
			start = 0
		}
		v, err := strconv.ParseUint(hex[start:end], 16, limbBits)
		if err != nil {
			return out, &ParseError{Input: s}
		}
		limbs = append(limbs, uint32(v))
	}
	return BigUint{limbs: limbs}, nil
}

// BigUintFromBigInt creates a BigUint from a big.Int. Negative values produce
// 0 and set accurate to 'false'.
func BigUintFromBigInt(v *big.Int) (out BigUint, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		limbs := make([]uint32, 0, len(words)*2)
		for _, w := range words {
			limbs = append(limbs, uint32(uint64(w)&limbMask), uint32(uint64(w)>>limbBits))
		}
		return BigUint{limbs: normLimbs(limbs)}, true

	case 32:
		limbs := make([]uint32, len(words))
		for i, w := range words {
			limbs[i] = uint32(w)
		}
		return BigUint{limbs: normLimbs(limbs)}, true

	default:
		panic("num: unsupported bit size")
	}
}

// RandBigUint generates a random BigUint of at most 'limbs' limbs from an
// external source.
func RandBigUint(source RandSource, limbs int) BigUint {
	if limbs <= 0 {
		return BigUint{}
	}
	out := make([]uint32, limbs)
	for i := 0; i < limbs; i += 2 {
		v := source.Uint64()
		out[i] = uint32(v & limbMask)
		if i+1 < limbs {
			out[i+1] = uint32(v >> limbBits)
		}
	}
	return BigUint{limbs: normLimbs(out)}
}

func (u BigUint) norm() []uint32 {
	if len(u.limbs) == 0 {
		return zeroLimbs
	}
	return u.limbs
}

// Limbs returns a copy of the little-endian limbs of u. The result always
// has at least one element.
func (u BigUint) Limbs() []uint32 {
	limbs := u.norm()
	out := make([]uint32, len(limbs))
	copy(out, limbs)
	return out
}

func (u BigUint) IsZero() bool {
	limbs := u.norm()
	return len(limbs) == 1 && limbs[0] == 0
}

// BitLen returns the number of bits required to represent u. BitLen of 0 is 0.
func (u BigUint) BitLen() int { return bitLenLimbs(u.norm()) }

// HexString returns the canonical lowercase hexadecimal form of u, without
// a prefix or leading zeros. Zero is "0".
func (u BigUint) HexString() string {
	limbs := u.norm()
	top := len(limbs) - 1

	buf := make([]byte, 0, len(limbs)*limbHexDigits)
	buf = strconv.AppendUint(buf, uint64(limbs[top]), 16)
	for i := top - 1; i >= 0; i-- {
		v := limbs[i]
		for shift := limbBits - 4; shift >= 0; shift -= 4 {
			buf = append(buf, hexDigits[(v>>uint(shift))&0xf])
		}
	}
	return string(buf)
}

func (u BigUint) String() string { return u.HexString() }

// Format implements fmt.Formatter. %v and %s print the same text as
// HexString; other verbs are handled by big.Int.
func (u BigUint) Format(s fmt.State, c rune) {
	if c == 'v' || c == 's' {
		c = 'x'
	}
	u.AsBigInt().Format(s, c)
}

func (u BigUint) IntoBigInt(b *big.Int) {
	limbs := u.norm()

	switch intSize {
	case 64:
		words := make([]big.Word, (len(limbs)+1)/2)
		for i, l := range limbs {
			words[i/2] |= big.Word(uint64(l) << (uint(i%2) * limbBits))
		}
		b.SetBits(words)

	case 32:
		words := make([]big.Word, len(limbs))
		for i, l := range limbs {
			words[i] = big.Word(l)
		}
		b.SetBits(words)

	default:
		panic("num: unsupported bit size")
	}
}

func (u BigUint) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// Add returns u + n. Neither operand is modified.
func (u BigUint) Add(n BigUint) BigUint {
	return BigUint{limbs: addLimbs(u.norm(), n.norm())}
}

// Mul returns u * n. Neither operand is modified.
func (u BigUint) Mul(n BigUint) BigUint {
	return BigUint{limbs: mulLimbs(u.norm(), n.norm())}
}

func (u BigUint) Cmp(n BigUint) int {
	return cmpLimbs(u.norm(), n.norm())
}

func (u BigUint) Equal(n BigUint) bool       { return u.Cmp(n) == 0 }
func (u BigUint) GreaterThan(n BigUint) bool { return u.Cmp(n) > 0 }
func (u BigUint) LessThan(n BigUint) bool    { return u.Cmp(n) < 0 }

func (u BigUint) MarshalText() ([]byte, error) {
	return []byte(u.HexString()), nil
}

// UnmarshalText accepts anything BigUintFromHexString does, plus the "0"
// produced by MarshalText for zero.
func (u *BigUint) UnmarshalText(bts []byte) (err error) {
	v, err := parseMarshalled(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u BigUint) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.HexString() + `"`), nil
}

func (u *BigUint) UnmarshalJSON(bts []byte) (err error) {
	ln := len(bts)
	if ln < 2 || bts[0] != '"' || bts[ln-1] != '"' {
		return fmt.Errorf("num: biguint invalid JSON %q", string(bts))
	}

	v, err := parseMarshalled(string(bts[1 : ln-1]))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func parseMarshalled(s string) (BigUint, error) {
	if s == "0" {
		return BigUint{limbs: zeroLimbs}, nil
	}
	return BigUintFromHexString(s)
}
