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

import "slices"

type ceaWriter struct {
	cea      []Elem
	shifting bool
	sh       shifter
}

func (w *ceaWriter) push(row []Elem) {
	if !w.shifting {
		w.cea = append(w.cea, row...)
		return
	}
	for _, e := range row {
		if e = w.sh.shift(e); e != 0 {
			w.cea = append(w.cea, e)
		}
	}
}

// cccIncreasing reports whether every code point in chars is a non-starter
// and their combining classes are strictly increasing.
func cccIncreasing(chars []rune) bool {
	var last uint8
	for _, r := range chars {
		ccc := combiningClass(r)
		if ccc == 0 || ccc <= last {
			return false
		}
		last = ccc
	}
	return true
}

// generate appends the collation element array of chars to cea. chars must
// be in NFD; code points pulled into a discontiguous contraction are
// removed from it. Completely ignorable elements are not stored.
func generate(cea []Elem, chars []rune, shifting bool, tb *Tables) []Elem {
	w := ceaWriter{cea: cea, shifting: shifting}
	cldr := tb.tailoring.IsCldr()

	var scratch [2]Elem
	left := 0

outer:
	for left < len(chars) {
		cp := chars[left]

		if uint32(cp) < lowLimit {
			if row := tb.low[cp]; row != nil {
				w.push(row)
				left++
				continue
			}
		}

		lookahead := tb.lookaheadOf(cp)
		if lookahead == 1 || len(chars)-left == 1 {
			w.push(tb.row(cp, &scratch))
			left++
			continue
		}

		// Longest contiguous match first.
		for right := min(len(chars), left+lookahead); right > left+1; right-- {
			row := tb.multis.find(chars[left:right]...)
			if row == nil {
				continue
			}
			if right-left == 2 && right+1 < len(chars) {
				ccc0, ccc1 := combiningClass(chars[right]), combiningClass(chars[right+1])
				if ccc0 > 0 && ccc1 > ccc0 {
					if long := tb.multis.find(chars[left], chars[left+1], chars[right+1]); long != nil {
						row = long
						chars = slices.Delete(chars, right+1, right+2)
					}
				}
			}
			w.push(row)
			left = right
			continue outer
		}

		// A single starter: look for a discontiguous match with the marks
		// that follow it.
		right := left + 1
		maxRight := right
		switch n := len(chars) - right; {
		case n >= 3:
			maxRight = right + 2
		case n == 2:
			maxRight = right + 1
		}
		tryTwo := cldr && maxRight-right == 2

		for maxRight > right {
			if !cccIncreasing(chars[right : maxRight+1]) {
				tryTwo = false
				maxRight--
				continue
			}

			var row []Elem
			if tryTwo {
				row = tb.multis.find(cp, chars[maxRight-1], chars[maxRight])
			} else {
				row = tb.multis.find(cp, chars[maxRight])
			}
			if row != nil {
				w.push(row)
				if tryTwo {
					chars = slices.Delete(chars, maxRight-1, maxRight+1)
				} else {
					chars = slices.Delete(chars, maxRight, maxRight+1)
				}
				left++
				continue outer
			}

			if tryTwo {
				tryTwo = false
			} else {
				maxRight--
			}
		}

		w.push(tb.row(cp, &scratch))
		left++
	}

	return w.cea
}
