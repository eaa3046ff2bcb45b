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

import "unicode"

const (
	implicitBaseCoreHan  = 0xFB40
	implicitBaseOtherHan = 0xFB80
	implicitBaseOther    = 0xFBC0
)

// implicitWeights derives the pair of collation elements for a code point
// that has no entry in the tables (UTS #10, section 10.1).
func (tb *Tables) implicitWeights(cp rune) (Elem, Elem) {
	for _, ir := range tb.implicits {
		if cp >= ir.lo && cp <= ir.hi {
			// Every range sharing a base is offset from the lowest of them,
			// so the Tangut supplement continues after the main block.
			lo := ir.lo
			for _, other := range tb.implicits {
				if other.base == ir.base && other.lo < lo {
					lo = other.lo
				}
			}
			return implicitPair(ir.base, uint16(cp-lo)|0x8000)
		}
	}

	var base uint16
	switch {
	case unicode.Is(unicode.Unified_Ideograph, cp):
		if (cp >= 0x4E00 && cp <= 0x9FFF) || (cp >= 0xF900 && cp <= 0xFAFF) {
			base = implicitBaseCoreHan
		} else {
			base = implicitBaseOtherHan
		}
	default:
		base = implicitBaseOther
	}
	return implicitPair(base+uint16(cp>>15), uint16(cp&0x7FFF)|0x8000)
}

func implicitPair(aaaa, bbbb uint16) (Elem, Elem) {
	return MakeElem(false, aaaa, 0x0020, 0x0002), MakeElem(false, bbbb, 0, 0)
}
