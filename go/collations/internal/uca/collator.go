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

// Collator compares sequences of code points with the Unicode Collation
// Algorithm. A Collator keeps scratch buffers between calls and must not be
// used concurrently; the tables it reads are shared.
type Collator struct {
	Tailoring Tailoring
	// Shifting enables the "Shifted" variable weighting: punctuation,
	// symbols and whitespace only matter at the quaternary level.
	Shifting bool
	// Tiebreak orders inputs that are equal at every level by their code
	// points, so that only identical inputs compare equal.
	Tiebreak bool

	aChars, bChars []rune
	aCEA, bCEA     []Elem
}

// NewCollator returns a Collator with the given configuration.
func NewCollator(t Tailoring, shifting, tiebreak bool) *Collator {
	return &Collator{
		Tailoring: t,
		Shifting:  shifting,
		Tiebreak:  tiebreak,
		aChars:    make([]rune, 0, 32),
		bChars:    make([]rune, 0, 32),
		aCEA:      make([]Elem, 0, 32),
		bCEA:      make([]Elem, 0, 32),
	}
}

// NewDefaultCollator returns a Collator for the CLDR root tailoring with
// shifted weighting and tiebreaking enabled.
func NewDefaultCollator() *Collator {
	return NewCollator(Cldr(LocaleRoot), true, true)
}

// Collate returns -1, 0 or +1 depending on whether a sorts before, equal
// to or after b.
func (c *Collator) Collate(a, b []rune) int {
	if slices.Equal(a, b) {
		return 0
	}
	if cmp, ok := asciiFastPath(a, b); ok {
		return cmp
	}

	tb := TablesFor(c.Tailoring)

	c.aChars = decompose(c.aChars[:0], a)
	c.bChars = decompose(c.bChars[:0], b)
	if slices.Equal(c.aChars, c.bChars) {
		return c.tiebreak(a, b)
	}

	ra, rb := trimPrefix(c.aChars, c.bChars, c.Shifting, tb)
	if len(ra) > 0 && len(rb) > 0 {
		if cmp, ok := firstPrimaries(ra, rb, c.Shifting, tb); ok {
			return cmp
		}
	}

	c.aCEA = generate(c.aCEA[:0], ra, c.Shifting, tb)
	c.bCEA = generate(c.bCEA[:0], rb, c.Shifting, tb)
	if cmp := compareLevels(c.aCEA, c.bCEA, c.Shifting); cmp != 0 {
		return cmp
	}
	return c.tiebreak(a, b)
}

func (c *Collator) tiebreak(a, b []rune) int {
	if !c.Tiebreak {
		return 0
	}
	return slices.Compare(a, b)
}
