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

const (
	// keySeparator ends every level of a narrow key. Each weight byte has
	// its top bit set, so the separator sorts below any weight.
	keySeparator byte = 0x01
	// keySeparatorWide plays the same role for wide keys, whose units are
	// all offset by one.
	keySeparatorWide rune = 1
)

// SortKey builds binary sort keys. Comparing two keys with bytes.Compare
// (or strcmp) gives the same order as Collator.Collate with the same
// configuration. Like Collator, a SortKey is not safe for concurrent use.
type SortKey struct {
	Tailoring Tailoring
	Shifting  bool
	Tiebreak  bool

	chars []rune
	cea   []Elem
}

// NewSortKey returns a SortKey with the given configuration.
func NewSortKey(t Tailoring, shifting, tiebreak bool) *SortKey {
	return &SortKey{
		Tailoring: t,
		Shifting:  shifting,
		Tiebreak:  tiebreak,
		chars:     make([]rune, 0, 32),
		cea:       make([]Elem, 0, 32),
	}
}

func (sk *SortKey) weights(src []rune) []Elem {
	tb := TablesFor(sk.Tailoring)
	sk.chars = decompose(sk.chars[:0], src)
	sk.cea = generate(sk.cea[:0], sk.chars, sk.Shifting, tb)
	return sk.cea
}

// Elements returns the collation element array of src, after canonical
// decomposition and variable weighting.
func (sk *SortKey) Elements(src []rune) []Elem {
	return slices.Clone(sk.weights(src))
}

// Key appends the sort key of src to dst. Every weight is written as three
// bytes carrying seven bits each with the top bit set, so the key never
// contains a NUL byte.
func (sk *SortKey) Key(dst []byte, src []rune) []byte {
	cea := sk.weights(src)
	for i, proj := range levels(sk.Shifting) {
		if i > 0 {
			dst = append(dst, keySeparator)
		}
		for _, e := range cea {
			if w := proj(e); w != 0 {
				dst = appendKeyUnit(dst, uint32(w))
			}
		}
	}
	if sk.Tiebreak {
		dst = append(dst, keySeparator)
		for _, r := range src {
			dst = appendKeyUnit(dst, uint32(r))
		}
	}
	return dst
}

// KeyWide appends the wide sort key of src to dst. Every unit is its weight
// plus one, so no unit is zero and none collides with the separator.
func (sk *SortKey) KeyWide(dst []rune, src []rune) []rune {
	cea := sk.weights(src)
	for i, proj := range levels(sk.Shifting) {
		if i > 0 {
			dst = append(dst, keySeparatorWide)
		}
		for _, e := range cea {
			if w := proj(e); w != 0 {
				dst = append(dst, rune(w)+1)
			}
		}
	}
	if sk.Tiebreak {
		dst = append(dst, keySeparatorWide)
		for _, r := range src {
			dst = append(dst, r+1)
		}
	}
	return dst
}

func appendKeyUnit(dst []byte, v uint32) []byte {
	return append(dst,
		0x80|byte(v>>14)&0x7F,
		0x80|byte(v>>7)&0x7F,
		0x80|byte(v)&0x7F)
}
