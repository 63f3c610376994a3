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

package radixutils

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrInvalidBase          = errors.New("invalid base")
	ErrInsufficientAlphabet = errors.New("insufficient alphabet")
	ErrUnknownSymbol        = errors.New("unknown symbol")
	ErrInvalidDigit         = errors.New("digit out of range")
	ErrOverflow             = errors.New("value overflows uint64")
	ErrNegative             = errors.New("negative value")
	ErrNilValue             = errors.New("nil value")
)

// BaseError reports a base outside [MinBase, MaxBase].
type BaseError struct {
	Base int
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("expected a base between %d and %d, but got (%d)", MinBase, MaxBase, e.Base)
}

func (e *BaseError) Unwrap() error { return ErrInvalidBase }

// AlphabetError reports an alphabet with fewer symbols than the base requires.
type AlphabetError struct {
	Base int
	Size int
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("alphabet must contain at least %d numerals, but has %d", e.Base, e.Size)
}

func (e *AlphabetError) Unwrap() error { return ErrInsufficientAlphabet }

// SymbolError identifies a character of the input that is not in the alphabet.
// Pos counts runes, not bytes.
type SymbolError struct {
	Symbol rune
	Pos    int
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("input contains a character (%q) at position %d not in the alphabet", e.Symbol, e.Pos)
}

func (e *SymbolError) Unwrap() error { return ErrUnknownSymbol }

// DigitError reports a digit that has no symbol in the alphabet.
type DigitError struct {
	Digit uint64
	Pos   int
	Max   int
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("numeral at position %d out of range: %d not in [0..%d]", e.Pos, e.Digit, e.Max)
}

func (e *DigitError) Unwrap() error { return ErrInvalidDigit }
