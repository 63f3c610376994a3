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

const (
	// MaxSafeInteger is the largest integer a float64 holds exactly.
	// Digit products are kept below it so ToNumber stays exact for any
	// value that fits.
	MaxSafeInteger = 1<<53 - 1

	// MinBase is the smallest base that is practical for encoding values.
	MinBase = 2

	// MaxBase is floor(sqrt(MaxSafeInteger)): the product of two digits
	// never leaves the exact range.
	MaxBase = 94906265
)
