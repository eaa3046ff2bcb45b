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

// Strxfrm writes the narrow sort key of src followed by a NUL terminator
// into dst, but only when both fit; otherwise dst is left untouched. It
// returns the length of the key without the terminator, so a caller can
// retry with a buffer of at least the returned length plus one.
func Strxfrm(c Collation, dst []byte, src []rune) int {
	key := c.WeightString(nil, src)
	if len(key)+1 <= len(dst) {
		n := copy(dst, key)
		dst[n] = 0
	}
	return len(key)
}

// Wcsxfrm is Strxfrm for wide keys.
func Wcsxfrm(c Collation, dst []rune, src []rune) int {
	key := c.WeightStringWide(nil, src)
	if len(key)+1 <= len(dst) {
		n := copy(dst, key)
		dst[n] = 0
	}
	return len(key)
}
