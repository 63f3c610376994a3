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
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru"
)

// codecCacheSize bounds the number of distinct alphabets whose inverse
// tables are kept. Alphabets are usually a small fixed set.
const codecCacheSize = 256

var codecs *lru.Cache

func init() {
	var err error
	codecs, err = lru.New(codecCacheSize)
	if err != nil {
		panic(err)
	}
}

// Codec maps between the symbols of an alphabet and digit values.
// Element 'rtd' (rune-to-digit) supports the mapping from runes to digit values.
// Element 'dtr' (digit-to-rune) supports the mapping from digit values to runes.
type Codec struct {
	rtd map[rune]uint64
	dtr []rune
}

// NewCodec builds a Codec from the characters of the string s, in order.
// The string contains arbitrary UTF-8 characters. Duplicates keep their
// position, so they still count toward Radix, but a duplicated rune decodes
// to its first position.
func NewCodec(s string) *Codec {
	ret := &Codec{
		rtd: make(map[rune]uint64, utf8.RuneCountInString(s)),
		dtr: []rune(s),
	}
	for i, rv := range ret.dtr {
		if _, ok := ret.rtd[rv]; !ok {
			ret.rtd[rv] = uint64(i)
		}
	}
	return ret
}

// LookupCodec returns the Codec for alphabet, building it on first use.
// It is safe for concurrent use.
func LookupCodec(alphabet string) *Codec {
	if c, ok := codecs.Get(alphabet); ok {
		// only *Codec values are ever added
		return c.(*Codec)
	}
	c := NewCodec(alphabet)
	codecs.Add(alphabet, c)
	return c
}

// Radix returns the number of symbols in the alphabet.
func (c *Codec) Radix() int {
	return len(c.dtr)
}

// TextToDigits returns the alphabet position of each character of text, in
// the order of the text.
// It is an error for the text to contain characters that are not in the
// alphabet.
func (c *Codec) TextToDigits(text string) ([]uint64, error) {
	ret := make([]uint64, 0, utf8.RuneCountInString(text))
	for _, rv := range text {
		d, ok := c.rtd[rv]
		if !ok {
			return nil, &SymbolError{Symbol: rv, Pos: len(ret)}
		}
		ret = append(ret, d)
	}
	return ret, nil
}

// DigitsToText builds a string from digit values, each one the position of
// a character in the alphabet.
func (c *Codec) DigitsToText(digits []uint64) (string, error) {
	var b strings.Builder
	b.Grow(len(digits))
	for i, v := range digits {
		if v >= uint64(len(c.dtr)) {
			return "", &DigitError{Digit: v, Pos: i, Max: len(c.dtr) - 1}
		}
		b.WriteRune(c.dtr[v])
	}
	return b.String(), nil
}

// TextToDigits maps each character of text to its position in alphabet.
// The inverse table for each alphabet is cached.
func TextToDigits(text, alphabet string) ([]uint64, error) {
	return LookupCodec(alphabet).TextToDigits(text)
}
