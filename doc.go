/*
Package radix represents non-negative integers as digit arrays in an
arbitrary base, and encodes them as text through a caller-supplied alphabet.

A DigitArray is built from a value or from a digit sequence, grown with Add
and Multiply, converted between bases with ToBase, and mapped to and from text
with Encode and Decode. Base conversion works digit by digit, so values are not
limited to native integer ranges.

	d, _ := radix.Decode("999", 10, radix.Base10Alphabet, radix.BigEndian)
	hex, _ := d.ToBase(16)
	s, _ := hex.Encode(radix.Base16Alphabet, radix.BigEndian) // "3e7"

The radixutils sub-package holds the limits, validation and alphabet helpers.

*/
package radix
