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

// Limits on bases and exact values.
const (
	MaxSafeInteger = radixutils.MaxSafeInteger
	MinBase        = radixutils.MinBase
	MaxBase        = radixutils.MaxBase
)

// Errors
var (
	ErrInvalidBase          = radixutils.ErrInvalidBase
	ErrInsufficientAlphabet = radixutils.ErrInsufficientAlphabet
	ErrUnknownSymbol        = radixutils.ErrUnknownSymbol
	ErrInvalidDigit         = radixutils.ErrInvalidDigit
	ErrOverflow             = radixutils.ErrOverflow
	ErrNegative             = radixutils.ErrNegative
	ErrNilValue             = radixutils.ErrNilValue
)

// Endianness describes the order of significance of a sequence of digits.
type Endianness int

const (
	// BigEndian orders digits most significant first. It is the default.
	BigEndian Endianness = iota
	// LittleEndian orders digits least significant first.
	LittleEndian
)

func (e Endianness) String() string {
	switch e {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return fmt.Sprintf("Endianness(%d)", int(e))
	}
}

// ParseEndianness accepts "big" or "little", case-insensitively.
func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(s) {
	case "big":
		return BigEndian, nil
	case "little":
		return LittleEndian, nil
	}
	return BigEndian, fmt.Errorf("unknown endianness %q: expected big or little", s)
}
