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

package radix_test

import (
	"fmt"

	"github.com/capitalone/radix"
)

func ExampleDecode() {
	d, err := radix.Decode("999", 10, radix.Base10Alphabet, radix.BigEndian)
	if err != nil {
		panic(err)
	}
	hex, err := d.ToBase(16)
	if err != nil {
		panic(err)
	}
	s, err := hex.Encode(radix.Base16Alphabet, radix.BigEndian)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: 3e7
}

func ExampleNew() {
	d, err := radix.New(2, 23)
	if err != nil {
		panic(err)
	}
	fmt.Println(d.Digits(radix.LittleEndian))
	fmt.Println(d.Multiply(2).Add(1).ToNumber())
	// Output:
	// [1 1 1 0 1]
	// 47
}

func ExampleConvert() {
	s, err := radix.Convert("18446744073709551616", radix.Decimal, radix.Base62)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: LygHa16AHYG
}
