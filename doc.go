/*
Package num provides BigUint, an arbitrary-precision unsigned integer stored as
32-bit limbs, with hexadecimal parsing and formatting, addition and
multiplication.

BigUint is a value type; all operations return new values and never modify
their operands.

Simple example:

	a, _ := BigUintFromHexString("ffffffffffffffff")
	b, _ := BigUintFromHexString("2")
	fmt.Println(a.Mul(b).Add(b))
	// Output: 20000000000000000

BigUint values can be created from a variety of sources:

	BigUintFromHexString(s string) (BigUint, error)
	BigUintFromLimbs(limbs []uint32) BigUint
	BigUintFrom64(v uint64) BigUint
	BigUintFrom32(v uint32) BigUint
	BigUintFromBigInt(v *big.Int) (out BigUint, accurate bool)

BigUint supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Only hexadecimal text is accepted. Signed values, division and bitwise
operations are not provided.

*/
package num
