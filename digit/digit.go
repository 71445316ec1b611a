// Package digit provides operations to extract and replace decimal
// digits of a signed integer, little-endian (position 0 is the least
// significant digit).
//
// This mirrors the organizing idiom of a bit-mask helper package —
// an opaque indexed-position type, a shared range check, and small
// pure functions — generalized from bit positions within a byte to
// digit positions within an int, which is what the dgt/dst
// instructions operate on.
package digit

import "strconv"

// Pos is a little-endian digit position into the decimal
// representation of an int. Position 0 is the ones digit.
type Pos int

func checkPos(pos Pos) {
	if pos < 0 {
		panic("digit: position must be >= 0")
	}
}

// digits returns the decimal digits of v, little-endian, ignoring
// sign (negative values are treated as their absolute value, matching
// the source language's str(v)-based digit extraction).
func digits(v int) []byte {
	s := strconv.Itoa(v)
	if s[0] == '-' {
		s = s[1:]
	}
	rev := make([]byte, len(s))
	for i := range s {
		rev[i] = s[len(s)-1-i]
	}
	return rev
}

// At returns the digit of v at the given little-endian position. ok is
// false if pos is past the number of digits v has, in which case the
// dgt instruction resets the accumulator to 0.
func At(v int, pos Pos) (d int, ok bool) {
	checkPos(pos)
	ds := digits(v)
	if int(pos) >= len(ds) {
		return 0, false
	}
	return int(ds[pos] - '0'), true
}

// With returns v with the digit at the given little-endian position
// replaced by d (taken mod 10, as only the least significant digit of
// d is ever used by the dst instruction). ok is false if pos is past
// the number of digits v has, in which case dst resets the
// accumulator to 0.
func With(v int, pos Pos, d int) (result int, ok bool) {
	checkPos(pos)
	ds := digits(v)
	if int(pos) >= len(ds) {
		return 0, false
	}
	d = ((d % 10) + 10) % 10
	ds[pos] = byte('0' + d)

	out := make([]byte, len(ds))
	for i, b := range ds {
		out[len(ds)-1-i] = b
	}
	n, err := strconv.Atoi(string(out))
	if err != nil {
		panic("digit: unreachable: " + err.Error())
	}
	if v < 0 {
		n = -n
	}
	return n, true
}
