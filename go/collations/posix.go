/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package collations

import (
	"slices"
	"unicode/utf8"
)

// Collation_posix is the C/POSIX collation: code points compare by value
// and the sort key is the string itself.
type Collation_posix struct{}

func newPosix(Config) (Collation, error) {
	return Collation_posix{}, nil
}

func (Collation_posix) Name() string {
	return BackendPosix
}

func (Collation_posix) Collate(left, right []rune) int {
	return slices.Compare(left, right)
}

// WeightString appends the UTF-8 encoding of src, whose byte order is the
// code point order.
func (Collation_posix) WeightString(dst []byte, src []rune) []byte {
	for _, r := range src {
		dst = utf8.AppendRune(dst, r)
	}
	return dst
}

func (Collation_posix) WeightStringWide(dst []rune, src []rune) []rune {
	return append(dst, src...)
}
