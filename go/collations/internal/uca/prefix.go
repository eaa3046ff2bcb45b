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

// trimPrefix drops the longest common run of code points that cannot take
// part in a contraction. With shifted weighting, the cut is moved back to
// the last position where the weights seen so far do not end in a variable
// element, so both remainders start with the shifter in its initial state.
func trimPrefix(a, b []rune, shifting bool, tb *Tables) ([]rune, []rune) {
	var p int
	for p < len(a) && p < len(b) && a[p] == b[p] && !tb.startsContraction(a[p]) {
		p++
	}
	if p == 0 || !shifting {
		return a[p:], b[p:]
	}

	var (
		sh      shifter
		scratch [2]Elem
		cut     int
	)
	for i := 0; i < p; i++ {
		for _, e := range tb.row(a[i], &scratch) {
			sh.shift(e)
		}
		if !sh.lastVariable {
			cut = i + 1
		}
	}
	return a[cut:], b[cut:]
}
