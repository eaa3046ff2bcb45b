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

package uca

func isASCIIAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func foldASCII(r rune) rune {
	if r > 'Z' {
		return r - 0x20
	}
	return r
}

// asciiFastPath walks a and b in lock step. As long as both sides are ASCII
// letters and digits the order is decided here: the first case-insensitive
// difference wins, then the length, then the first case-only difference,
// where lowercase sorts first. ok is false as soon as a code point outside
// the ASCII alphanumeric range is reached on either side, including the
// first code point past the end of the shorter side.
func asciiFastPath(a, b []rune) (cmp int, ok bool) {
	var caseDiff int
	var i int
	for ; i < len(a) && i < len(b); i++ {
		ra, rb := a[i], b[i]
		if !isASCIIAlnum(ra) || !isASCIIAlnum(rb) {
			break
		}
		if ra == rb {
			continue
		}
		fa, fb := foldASCII(ra), foldASCII(rb)
		if fa != fb {
			if fa < fb {
				return -1, true
			}
			return 1, true
		}
		if caseDiff == 0 {
			if rb < ra {
				caseDiff = -1
			} else {
				caseDiff = 1
			}
		}
	}

	switch {
	case i < len(a) && i < len(b):
		return 0, false
	case i < len(a) && !isASCIIAlnum(a[i]):
		return 0, false
	case i < len(b) && !isASCIIAlnum(b[i]):
		// The tail may be ignorable, so the length alone does not decide.
		return 0, false
	case len(a) < len(b):
		return -1, true
	case len(a) > len(b):
		return 1, true
	}
	return caseDiff, true
}
