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
	"math/big"
	"math/bits"

	"github.com/capitalone/radix/radixutils"
)

// ToBig returns the exact value of d.
func (d *DigitArray) ToBig() *big.Int {
	var bigBase, bv big.Int
	x := new(big.Int)
	bigBase.SetUint64(d.base)
	for i := len(d.digits) - 1; i >= 0; i-- {
		bv.SetUint64(d.digits[i])
		x.Mul(x, &bigBase)
		x.Add(x, &bv)
	}
	return x
}

// FromBig returns the DigitArray for x in the given base.
// It is an error for x to be nil or negative.
func FromBig(base int, x *big.Int) (*DigitArray, error) {
	if err := radixutils.CheckBase(base); err != nil {
		return nil, err
	}
	if x == nil {
		return nil, ErrNilValue
	}
	if x.Sign() < 0 {
		return nil, ErrNegative
	}

	var bigBase, mod, v big.Int
	v.Set(x)
	bigBase.SetUint64(uint64(base))
	digits := make([]uint64, 0, x.BitLen()/bits.Len(uint(base-1))+1)
	for v.Sign() != 0 {
		v.DivMod(&v, &bigBase, &mod)
		digits = append(digits, mod.Uint64())
	}
	return fromOwned(uint64(base), digits, LittleEndian), nil
}

// ToUint64 returns the exact value of d, or ErrOverflow if it does not fit.
func (d *DigitArray) ToUint64() (uint64, error) {
	var n uint64
	for i := len(d.digits) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(n, d.base)
		if hi != 0 {
			return 0, ErrOverflow
		}
		var carry uint64
		n, carry = bits.Add64(lo, d.digits[i], 0)
		if carry != 0 {
			return 0, ErrOverflow
		}
	}
	return n, nil
}
