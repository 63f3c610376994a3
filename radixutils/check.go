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

// Package radixutils provides the validation and alphabet helpers
// shared by the radix digit array.
package radixutils

import "unicode/utf8"

// CheckBase returns a *BaseError wrapping ErrInvalidBase when base is
// outside [MinBase, MaxBase].
func CheckBase(base int) error {
	if base < MinBase || base > MaxBase {
		return &BaseError{Base: base}
	}
	return nil
}

// CheckAlphabet returns an *AlphabetError wrapping ErrInsufficientAlphabet
// when the alphabet has fewer symbols than base. Symbols are runes and
// duplicates are counted.
func CheckAlphabet(base int, alphabet string) error {
	if n := utf8.RuneCountInString(alphabet); n < base {
		return &AlphabetError{Base: base, Size: n}
	}
	return nil
}

// Divide returns the quotient and remainder of dividend / divisor,
// so that dividend == quotient*divisor + remainder and remainder < divisor.
func Divide(dividend, divisor uint64) (quotient, remainder uint64) {
	quotient = dividend / divisor
	remainder = dividend - quotient*divisor
	return quotient, remainder
}
