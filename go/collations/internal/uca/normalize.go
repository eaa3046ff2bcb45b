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

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	hangulSBase  = 0xAC00
	hangulLBase  = 0x1100
	hangulVBase  = 0x1161
	hangulTBase  = 0x11A7
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulSCount = hangulLCount * hangulNCount
)

func properties(r rune) norm.Properties {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return norm.NFD.Properties(buf[:n])
}

// combiningClass returns the canonical combining class of r.
func combiningClass(r rune) uint8 {
	if r < 0x300 {
		return 0
	}
	return properties(r).CCC()
}

// decompose appends the canonical decomposition (NFD) of src to dst.
// Hangul syllables are decomposed algorithmically; every maximal run of
// non-starters is then stably sorted by combining class.
func decompose(dst, src []rune) []rune {
	start := len(dst)
	for _, r := range src {
		dst = decomposeRune(dst, r)
	}
	reorderMarks(dst[start:])
	return dst
}

func decomposeRune(dst []rune, r rune) []rune {
	if r < 0xC0 {
		return append(dst, r)
	}

	if s := r - hangulSBase; s >= 0 && s < hangulSCount {
		dst = append(dst,
			hangulLBase+s/hangulNCount,
			hangulVBase+(s%hangulNCount)/hangulTCount)
		if t := s % hangulTCount; t != 0 {
			dst = append(dst, hangulTBase+t)
		}
		return dst
	}

	d := properties(r).Decomposition()
	if d == nil {
		return append(dst, r)
	}
	for len(d) > 0 {
		dr, n := utf8.DecodeRune(d)
		d = d[n:]
		if dr == r {
			dst = append(dst, dr)
			continue
		}
		dst = decomposeRune(dst, dr)
	}
	return dst
}

// reorderMarks applies the canonical ordering algorithm in place.
func reorderMarks(chars []rune) {
	for i := 1; i < len(chars); i++ {
		ccc := combiningClass(chars[i])
		if ccc == 0 {
			continue
		}
		r := chars[i]
		j := i
		for j > 0 {
			prev := combiningClass(chars[j-1])
			if prev == 0 || prev <= ccc {
				break
			}
			chars[j] = chars[j-1]
			j--
		}
		chars[j] = r
	}
}
