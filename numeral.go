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
	"strings"

	"github.com/capitalone/radix/radixutils"
)

// Common alphabets. Any prefix of Base62Alphabet of length n is a valid
// alphabet for base n.
const (
	Base2Alphabet       = "01"
	Base8Alphabet       = "01234567"
	Base10Alphabet      = "0123456789"
	Base16Alphabet      = "0123456789abcdef"
	Base36Alphabet      = "0123456789abcdefghijklmnopqrstuvwxyz"
	Base58Alphabet      = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	Base62Alphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	Crockford32Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
)

var alphabets = map[string]string{
	"base2":       Base2Alphabet,
	"base8":       Base8Alphabet,
	"base10":      Base10Alphabet,
	"base16":      Base16Alphabet,
	"base36":      Base36Alphabet,
	"base58":      Base58Alphabet,
	"base62":      Base62Alphabet,
	"crockford32": Crockford32Alphabet,
}

// LookupAlphabet returns the predefined alphabet called name
// (e.g. "base62"), case-insensitively.
func LookupAlphabet(name string) (string, bool) {
	a, ok := alphabets[strings.ToLower(name)]
	return a, ok
}

// A Numeral describes how numbers are written: the base, the symbols for
// each digit and the order of significance.
type Numeral struct {
	Base       int
	Alphabet   string
	Endianness Endianness
}

// Predefined numerals, all most significant digit first.
var (
	Binary      = Numeral{Base: 2, Alphabet: Base2Alphabet}
	Octal       = Numeral{Base: 8, Alphabet: Base8Alphabet}
	Decimal     = Numeral{Base: 10, Alphabet: Base10Alphabet}
	Hex         = Numeral{Base: 16, Alphabet: Base16Alphabet}
	Base36      = Numeral{Base: 36, Alphabet: Base36Alphabet}
	Base58      = Numeral{Base: 58, Alphabet: Base58Alphabet}
	Base62      = Numeral{Base: 62, Alphabet: Base62Alphabet}
	Crockford32 = Numeral{Base: 32, Alphabet: Crockford32Alphabet}
)

// Validate checks the base and that the alphabet is large enough for it.
func (n Numeral) Validate() error {
	if err := radixutils.CheckBase(n.Base); err != nil {
		return err
	}
	return radixutils.CheckAlphabet(n.Base, n.Alphabet)
}

// Decode reads text written in n.
func (n Numeral) Decode(text string) (*DigitArray, error) {
	return Decode(text, n.Base, n.Alphabet, n.Endianness)
}

// Encode writes d in n, converting it to n.Base first if needed.
func (n Numeral) Encode(d *DigitArray) (string, error) {
	if err := n.Validate(); err != nil {
		return "", err
	}
	if d.Base() != n.Base {
		var err error
		if d, err = d.ToBase(n.Base); err != nil {
			return "", err
		}
	}
	return d.Encode(n.Alphabet, n.Endianness)
}

func (n Numeral) String() string {
	return fmt.Sprintf("base%d(%s, %s)", n.Base, n.Alphabet, n.Endianness)
}

// Convert rewrites text from one numeral system to another.
// Both numerals are validated before any text is read.
func Convert(text string, from, to Numeral) (string, error) {
	if err := from.Validate(); err != nil {
		return "", fmt.Errorf("source numeral: %w", err)
	}
	if err := to.Validate(); err != nil {
		return "", fmt.Errorf("target numeral: %w", err)
	}
	d, err := from.Decode(text)
	if err != nil {
		return "", err
	}
	return to.Encode(d)
}
