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

// Package libc exposes strcoll, strxfrm, wcscoll and wcsxfrm bound to the
// LC_COLLATE locale of a locale.Thread. Inputs follow C string rules: they
// end at the first NUL.
package libc

import (
	"strings"

	"vitess.io/collate/go/collations"
	"vitess.io/collate/go/locale"
)

func cstring(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

func wcstring(s []rune) []rune {
	for i, r := range s {
		if r == 0 {
			return s[:i]
		}
	}
	return s
}

// Strcoll compares two narrow strings under the thread's collation. Narrow
// strings are decoded as UTF-8 and invalid bytes become U+FFFD, except in
// the C locale, which compares bytes like strcmp.
func Strcoll(t *locale.Thread, a, b string) int {
	a, b = cstring(a), cstring(b)
	coll := t.Collation()
	if _, ok := coll.(collations.Collation_posix); ok {
		return strings.Compare(a, b)
	}
	return coll.Collate([]rune(a), []rune(b))
}

// Strxfrm writes the sort key of src and a NUL terminator into dst when
// they fit, and returns the length of the key. See collations.Strxfrm.
func Strxfrm(t *locale.Thread, dst []byte, src string) int {
	src = cstring(src)
	coll := t.Collation()
	if _, ok := coll.(collations.Collation_posix); ok {
		if len(src)+1 <= len(dst) {
			n := copy(dst, src)
			dst[n] = 0
		}
		return len(src)
	}
	return collations.Strxfrm(coll, dst, []rune(src))
}

// Wcscoll compares two wide strings under the thread's collation.
func Wcscoll(t *locale.Thread, a, b []rune) int {
	return t.Collation().Collate(wcstring(a), wcstring(b))
}

// Wcsxfrm is Strxfrm for wide strings and keys.
func Wcsxfrm(t *locale.Thread, dst []rune, src []rune) int {
	return collations.Wcsxfrm(t.Collation(), dst, wcstring(src))
}

// KeyFunc returns a function appending the key Strxfrm produces for src
// under the thread's current collation. Unlike the Thread, the function is
// safe for concurrent use.
func KeyFunc(t *locale.Thread) func(dst []byte, src string) []byte {
	coll := t.Collation()
	if _, ok := coll.(collations.Collation_posix); ok {
		return func(dst []byte, src string) []byte {
			return append(dst, cstring(src)...)
		}
	}
	return func(dst []byte, src string) []byte {
		return coll.WeightString(dst, []rune(cstring(src)))
	}
}
