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

// firstPrimaries decides the comparison from the first code point of each
// side when that is possible without generating the full weight arrays:
// both must be distinct, must not start a contraction, and their first
// collation elements must carry different non-zero primary weights that
// are not shifted away.
func firstPrimaries(a, b []rune, shifting bool, tb *Tables) (int, bool) {
	fa, fb := a[0], b[0]
	if fa == fb || tb.startsContraction(fa) || tb.startsContraction(fb) {
		return 0, false
	}

	pa := tb.firstPrimary(fa, shifting)
	if pa == 0 {
		return 0, false
	}
	pb := tb.firstPrimary(fb, shifting)
	if pb == 0 || pa == pb {
		return 0, false
	}
	if pa < pb {
		return -1, true
	}
	return 1, true
}

func (tb *Tables) firstPrimary(cp rune, shifting bool) uint16 {
	var scratch [2]Elem
	e := tb.row(cp, &scratch)[0]
	if shifting && e.Variable() {
		return 0
	}
	return e.Primary()
}
