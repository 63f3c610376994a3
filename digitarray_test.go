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
	"math"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	testBases  = []int{MinBase, 3, 7, 10, 16, 36, 62, 1000, 65536, MaxBase}
	testValues = []uint64{0, 1, 23, 999, 1<<40 + 12345, MaxSafeInteger}
)

func TestNew(t *testing.T) {
	d, err := New(2, 23)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 1, 1, 0, 1}, d.Digits(LittleEndian))
	require.Equal(t, 2, d.Base())
	require.Equal(t, 5, d.Len())
	require.Equal(t, "[1 0 1 1 1]_2", d.String())

	z, err := Zero(10)
	require.NoError(t, err)
	require.Equal(t, []uint64{0}, z.Digits(BigEndian))
	require.True(t, z.IsZero())
}

func TestFromDigits(t *testing.T) {
	d, err := FromDigits(4, []uint64{3, 2, 1, 0}, BigEndian)
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1, 2, 3}, d.Digits(LittleEndian))

	in := []uint64{5, 0, 9}
	be, err := FromDigits(10, in, BigEndian)
	require.NoError(t, err)
	le, err := FromDigits(10, []uint64{9, 0, 5}, LittleEndian)
	require.NoError(t, err)
	require.Equal(t, be.Digits(LittleEndian), le.Digits(LittleEndian))
	require.Equal(t, float64(509), be.ToNumber())

	// the caller's slice is copied, not aliased
	in[0] = 7
	require.Equal(t, []uint64{5, 0, 9}, be.Digits(BigEndian))
	out := be.Digits(BigEndian)
	out[0] = 8
	require.Equal(t, []uint64{5, 0, 9}, be.Digits(BigEndian))

	for _, empty := range [][]uint64{nil, {}} {
		z, err := FromDigits(3, empty, BigEndian)
		require.NoError(t, err)
		require.Equal(t, []uint64{0}, z.Digits(BigEndian))
	}
}

func TestInvalidBase(t *testing.T) {
	for _, base := range []int{-2, 0, 1, MaxBase + 1} {
		_, err := New(base, 1)
		require.ErrorIs(t, err, ErrInvalidBase, "base %d", base)

		_, err = FromDigits(base, []uint64{1}, BigEndian)
		require.ErrorIs(t, err, ErrInvalidBase)

		_, err = Decode("1", base, Base62Alphabet, BigEndian)
		require.ErrorIs(t, err, ErrInvalidBase)

		d, err := New(10, 42)
		require.NoError(t, err)
		_, err = d.ToBase(base)
		require.ErrorIs(t, err, ErrInvalidBase)
		require.Equal(t, float64(42), d.ToNumber())
	}
}

func TestToNumber(t *testing.T) {
	for _, base := range testBases {
		for _, v := range testValues {
			d, err := New(base, v)
			require.NoError(t, err)
			require.Equal(t, float64(v), d.ToNumber(), "base %d value %d", base, v)

			n, err := d.ToUint64()
			require.NoError(t, err)
			require.Equal(t, v, n)
		}
	}
}

func TestToBase(t *testing.T) {
	for _, from := range testBases {
		for _, to := range testBases {
			for _, v := range testValues {
				d, err := New(from, v)
				require.NoError(t, err)
				before := d.Digits(LittleEndian)

				c, err := d.ToBase(to)
				require.NoError(t, err)
				require.Equal(t, to, c.Base())
				require.Equal(t, float64(v), c.ToNumber(), "value %d from %d to %d", v, from, to)
				requireNormalized(t, c)
				require.Equal(t, before, d.Digits(LittleEndian))
			}
		}
	}
}

func TestToBaseDecimalHex(t *testing.T) {
	d, err := New(10, 999)
	require.NoError(t, err)

	h, err := d.ToBase(16)
	require.NoError(t, err)
	require.Equal(t, []uint64{3, 14, 7}, h.Digits(BigEndian))

	back, err := h.ToBase(10)
	require.NoError(t, err)
	require.Equal(t, []uint64{9, 9, 9}, back.Digits(BigEndian))
	require.True(t, back.Equal(d))
}

func TestToBaseBeyondUint64(t *testing.T) {
	nines := strings.Repeat("9", 40)
	d, err := Decode(nines, 10, Base10Alphabet, BigEndian)
	require.NoError(t, err)

	want, ok := new(big.Int).SetString(nines, 10)
	require.True(t, ok)

	b62, err := d.ToBase(62)
	require.NoError(t, err)
	require.Zero(t, want.Cmp(b62.ToBig()))

	back, err := b62.ToBase(10)
	require.NoError(t, err)
	s, err := back.Encode(Base10Alphabet, BigEndian)
	require.NoError(t, err)
	require.Equal(t, nines, s)

	_, err = back.ToUint64()
	require.ErrorIs(t, err, ErrOverflow)
	require.InEpsilon(t, 1e40, back.ToNumber(), 1e-12)
}

func TestAddMultiply(t *testing.T) {
	d, err := New(10, 0)
	require.NoError(t, err)
	require.Same(t, d, d.Add(5))
	require.Same(t, d, d.Multiply(3))
	require.Equal(t, []uint64{1, 5}, d.Digits(BigEndian))

	d.Add(85).Multiply(10)
	require.Equal(t, []uint64{1, 0, 0, 0}, d.Digits(BigEndian))

	d.Multiply(0)
	require.True(t, d.IsZero())
	// most significant zeros are kept
	require.Equal(t, 4, d.Len())
}

func TestAddOverflow(t *testing.T) {
	d, err := New(10, math.MaxUint64)
	require.NoError(t, err)
	d.Add(math.MaxUint64)

	want := new(big.Int).SetUint64(math.MaxUint64)
	want.Lsh(want, 1)
	require.Zero(t, want.Cmp(d.ToBig()))
	requireNormalized(t, d)
}

func TestNormalizeInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, base := range testBases {
		d, err := New(base, rng.Uint64()>>12)
		require.NoError(t, err)
		want := d.ToBig()
		for i := 0; i < 50; i++ {
			a := uint64(rng.Int63n(1 << 40))
			m := uint64(rng.Int63n(int64(base))) + 1
			d.Add(a)
			want.Add(want, new(big.Int).SetUint64(a))
			requireNormalized(t, d)
			d.Multiply(m)
			want.Mul(want, new(big.Int).SetUint64(m))
			requireNormalized(t, d)
		}
		require.Zero(t, want.Cmp(d.ToBig()), "base %d", base)
	}
}

func TestNormalize(t *testing.T) {
	d, err := FromDigits(10, []uint64{0, 123}, LittleEndian)
	require.NoError(t, err)
	require.Same(t, d, d.Normalize())
	require.Equal(t, []uint64{0, 3, 2, 1}, d.Digits(LittleEndian))
}

func TestEncode(t *testing.T) {
	d, err := New(16, 999)
	require.NoError(t, err)

	s, err := d.Encode(Base16Alphabet, BigEndian)
	require.NoError(t, err)
	require.Equal(t, "3e7", s)

	s, err = d.Encode(Base16Alphabet, LittleEndian)
	require.NoError(t, err)
	require.Equal(t, "7e3", s)

	// a longer alphabet is fine, only the first base symbols are used
	s, err = d.Encode(Base62Alphabet, BigEndian)
	require.NoError(t, err)
	require.Equal(t, "3E7", s)

	_, err = d.Encode(Base10Alphabet, BigEndian)
	require.ErrorIs(t, err, ErrInsufficientAlphabet)

	z, err := Zero(62)
	require.NoError(t, err)
	s, err = z.Encode(Base62Alphabet, BigEndian)
	require.NoError(t, err)
	require.Equal(t, "0", s)
}

func TestEncodeDigitOutOfRange(t *testing.T) {
	d, err := FromDigits(2, []uint64{5}, BigEndian)
	require.NoError(t, err)

	_, err = d.Encode(Base2Alphabet, BigEndian)
	require.ErrorIs(t, err, ErrInvalidDigit)

	s, err := d.Normalize().Encode(Base2Alphabet, BigEndian)
	require.NoError(t, err)
	require.Equal(t, "101", s)
}

func TestDecode(t *testing.T) {
	d, err := Decode("3e7", 16, Base16Alphabet, BigEndian)
	require.NoError(t, err)
	require.Equal(t, float64(999), d.ToNumber())

	d, err = Decode("7e3", 16, Base16Alphabet, LittleEndian)
	require.NoError(t, err)
	require.Equal(t, float64(999), d.ToNumber())

	d, err = Decode("", 16, Base16Alphabet, BigEndian)
	require.NoError(t, err)
	require.True(t, d.IsZero())
	require.Equal(t, 1, d.Len())
}

// Text is read most significant first; only LittleEndian reverses it.
func TestDecodeEndianness(t *testing.T) {
	be, err := Decode("12", 10, Base10Alphabet, BigEndian)
	require.NoError(t, err)
	require.Equal(t, []uint64{2, 1}, be.Digits(LittleEndian))
	require.Equal(t, float64(12), be.ToNumber())

	le, err := Decode("12", 10, Base10Alphabet, LittleEndian)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2}, le.Digits(LittleEndian))
	require.Equal(t, float64(21), le.ToNumber())

	s, err := le.Encode(Base10Alphabet, LittleEndian)
	require.NoError(t, err)
	require.Equal(t, "12", s)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode("12", 16, Base10Alphabet, BigEndian)
	require.ErrorIs(t, err, ErrInsufficientAlphabet)

	// the base is checked before the alphabet
	_, err = Decode("12", 1, "", BigEndian)
	require.ErrorIs(t, err, ErrInvalidBase)

	_, err = Decode("12x4", 10, Base10Alphabet, BigEndian)
	require.ErrorIs(t, err, ErrUnknownSymbol)
	require.ErrorContains(t, err, "'x'")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for base := MinBase; base <= 62; base++ {
		alphabet := Base62Alphabet[:base]
		for _, v := range testValues {
			d, err := New(base, v)
			require.NoError(t, err)
			for _, e := range []Endianness{BigEndian, LittleEndian} {
				s, err := d.Encode(alphabet, e)
				require.NoError(t, err)

				back, err := Decode(s, base, alphabet, e)
				require.NoError(t, err)
				require.Equal(t, float64(v), back.ToNumber(), "base %d value %d %s", base, v, e)
			}
		}
	}
}

func TestCloneEqual(t *testing.T) {
	d, err := New(10, 12)
	require.NoError(t, err)

	c := d.Clone()
	require.True(t, c.Equal(d))
	c.Add(1)
	require.False(t, c.Equal(d))
	require.Equal(t, float64(12), d.ToNumber())

	padded, err := FromDigits(10, []uint64{0, 0, 1, 2}, BigEndian)
	require.NoError(t, err)
	require.True(t, padded.Equal(d))

	other, err := New(16, 12)
	require.NoError(t, err)
	require.False(t, other.Equal(d))

	var nilArray *DigitArray
	require.False(t, d.Equal(nilArray))
	require.True(t, nilArray.Equal(nil))
}

func TestEndianness(t *testing.T) {
	require.Equal(t, "big", BigEndian.String())
	require.Equal(t, "little", LittleEndian.String())
	require.Equal(t, "Endianness(7)", Endianness(7).String())

	e, err := ParseEndianness("Little")
	require.NoError(t, err)
	require.Equal(t, LittleEndian, e)

	e, err = ParseEndianness("big")
	require.NoError(t, err)
	require.Equal(t, BigEndian, e)

	_, err = ParseEndianness("middle")
	require.Error(t, err)
}

func requireNormalized(t *testing.T, d *DigitArray) {
	t.Helper()
	for i, v := range d.Digits(LittleEndian) {
		require.Less(t, v, uint64(d.Base()), "digit %d of %s", i, d)
	}
}
