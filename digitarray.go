/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package radix

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/capitalone/radix/radixutils"
)

// A DigitArray is a non-negative integer held as digits of a base:
//
//	n = d[0]*b^0 + d[1]*b^1 + ... + d[len-1]*b^(len-1)
//
// Digits are stored least significant first. Add, Multiply and Normalize
// modify the receiver and return it so calls can be chained. A DigitArray
// is not safe for concurrent mutation.
type DigitArray struct {
	base   uint64
	digits []uint64
}

// New returns the DigitArray for value in the given base.
func New(base int, value uint64) (*DigitArray, error) {
	if err := radixutils.CheckBase(base); err != nil {
		return nil, err
	}
	d := &DigitArray{base: uint64(base), digits: []uint64{value}}
	return d.Normalize(), nil
}

// Zero returns a DigitArray holding 0 in the given base.
func Zero(base int) (*DigitArray, error) {
	return New(base, 0)
}

// FromDigits builds a DigitArray from a copy of digits, ordered as e says.
// Digits are taken as given and are expected to be below base; call
// Normalize to carry any that are not. An empty sequence is zero.
func FromDigits(base int, digits []uint64, e Endianness) (*DigitArray, error) {
	if err := radixutils.CheckBase(base); err != nil {
		return nil, err
	}
	return fromOwned(uint64(base), slices.Clone(digits), e), nil
}

// fromOwned takes ownership of digits. base must already be valid.
func fromOwned(base uint64, digits []uint64, e Endianness) *DigitArray {
	if len(digits) == 0 {
		digits = []uint64{0}
	}
	if e == BigEndian {
		slices.Reverse(digits)
	}
	return &DigitArray{base: base, digits: digits}
}

// Base returns the base of the digits.
func (d *DigitArray) Base() int {
	return int(d.base)
}

// Len returns the number of stored digits, including any most significant zeros.
func (d *DigitArray) Len() int {
	return len(d.digits)
}

// Digits returns a copy of the digits in the order e says.
func (d *DigitArray) Digits(e Endianness) []uint64 {
	ret := slices.Clone(d.digits)
	if e == BigEndian {
		slices.Reverse(ret)
	}
	return ret
}

// Clone returns an independent copy of d.
func (d *DigitArray) Clone() *DigitArray {
	return &DigitArray{base: d.base, digits: slices.Clone(d.digits)}
}

// IsZero reports whether every digit is zero.
func (d *DigitArray) IsZero() bool {
	for _, v := range d.digits {
		if v != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether d and other have the same base and the same digits,
// ignoring most significant zeros.
func (d *DigitArray) Equal(other *DigitArray) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.base == other.base && slices.Equal(d.significant(), other.significant())
}

// significant returns the digits without most significant zeros, keeping at
// least one digit.
func (d *DigitArray) significant() []uint64 {
	n := len(d.digits)
	for n > 1 && d.digits[n-1] == 0 {
		n--
	}
	return d.digits[:n]
}

// Add adds value to the number.
//
//	m + n = (m + d[0])*b^0 + d[1]*b^1 + ...
func (d *DigitArray) Add(value uint64) *DigitArray {
	sum, carry := bits.Add64(d.digits[0], value, 0)
	d.digits[0] = sum
	if carry != 0 {
		// 65-bit sum
		q, r := bits.Div64(carry, sum, d.base)
		d.digits[0] = r
		d.propagate(1, q)
	}
	return d.Normalize()
}

// Multiply multiplies the number by value.
//
//	m * n = (m*d[0])*b^0 + (m*d[1])*b^1 + ...
//
// Each digit is multiplied before any carry is applied, so digit*value must
// fit in a uint64. This always holds for value <= MaxBase on normalized digits.
func (d *DigitArray) Multiply(value uint64) *DigitArray {
	for i := range d.digits {
		d.digits[i] *= value
	}
	return d.Normalize()
}

// Normalize carries every digit that is not below the base into the next
// position, appending positions for a final carry. Most significant zeros
// are not trimmed.
func (d *DigitArray) Normalize() *DigitArray {
	d.propagate(0, 0)
	return d
}

// propagate carries from position i upward, starting with carry.
func (d *DigitArray) propagate(i int, carry uint64) {
	for ; carry > 0 || i < len(d.digits); i++ {
		if i == len(d.digits) {
			d.digits = append(d.digits, 0)
		}
		sum, hi := bits.Add64(d.digits[i], carry, 0)
		if hi == 0 {
			carry, d.digits[i] = radixutils.Divide(sum, d.base)
		} else {
			carry, d.digits[i] = bits.Div64(hi, sum, d.base)
		}
	}
}

// ToBase returns the number converted to base. The receiver is unchanged.
//
// The value is folded in with Horner's rule, from the most significant
// digit down:
//
//	n = d[0] + b*(d[1] + b*(d[2] + ... + b*d[len-1]))
//
// so no step needs more than one digit times the source base.
func (d *DigitArray) ToBase(base int) (*DigitArray, error) {
	other, err := Zero(base)
	if err != nil {
		return nil, err
	}
	for i := len(d.digits) - 1; i >= 0; i-- {
		other.Multiply(d.base).Add(d.digits[i])
	}
	return other, nil
}

// Encode returns the digits as text, each digit replaced by the alphabet
// symbol at that position, ordered as e says.
func (d *DigitArray) Encode(alphabet string, e Endianness) (string, error) {
	if err := radixutils.CheckAlphabet(int(d.base), alphabet); err != nil {
		return "", err
	}
	return radixutils.LookupCodec(alphabet).DigitsToText(d.Digits(e))
}

// Decode builds a DigitArray from text written with alphabet in base.
// Text is read most significant symbol first unless e is LittleEndian.
// Empty text decodes to zero.
func Decode(text string, base int, alphabet string, e Endianness) (*DigitArray, error) {
	if err := radixutils.CheckBase(base); err != nil {
		return nil, err
	}
	if err := radixutils.CheckAlphabet(base, alphabet); err != nil {
		return nil, err
	}
	digits, err := radixutils.TextToDigits(text, alphabet)
	if err != nil {
		return nil, err
	}
	if e == LittleEndian {
		slices.Reverse(digits)
	}
	return fromOwned(uint64(base), digits, BigEndian), nil
}

// ToNumber returns the value as a float64. Values above MaxSafeInteger are
// approximated.
func (d *DigitArray) ToNumber() float64 {
	var n float64
	b := float64(d.base)
	for i := len(d.digits) - 1; i >= 0; i-- {
		n = n*b + float64(d.digits[i])
	}
	return n
}

// String formats the digits most significant first, followed by the base,
// e.g. "[1 0 1 1 1]_2".
func (d *DigitArray) String() string {
	return fmt.Sprintf("%v_%d", d.Digits(BigEndian), d.base)
}
