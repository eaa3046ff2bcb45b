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

import "fmt"

// Elem is a single collation element. All the weights of an element are
// packed into one word:
//
//	pppppppp pppppppp sssssssss ttttt 0 v
//	  - p* is the primary weight
//	  - s* is the secondary weight
//	  - t* is the tertiary weight
//	  - v is set for variable elements (punctuation, symbols, whitespace)
//
// Bit 1 is never set, so no element packs to ElemSentinel.
type Elem uint32

const (
	elemPrimaryShift   = 16
	elemSecondaryShift = 7
	elemTertiaryShift  = 2

	elemSecondaryMask = 0x1FF
	elemTertiaryMask  = 0x1F

	elemVariable Elem = 0x1

	// ElemSentinel marks the end of a weight stream when one is dumped in a
	// flat representation.
	ElemSentinel Elem = 0xFFFFFFFF
)

// MakeElem packs the given weights into an Elem. Secondary weights are
// truncated to 9 bits and tertiary weights to 5 bits, which is the range
// used by every DUCET version.
func MakeElem(variable bool, primary, secondary, tertiary uint16) Elem {
	e := Elem(primary)<<elemPrimaryShift |
		Elem(secondary&elemSecondaryMask)<<elemSecondaryShift |
		Elem(tertiary&elemTertiaryMask)<<elemTertiaryShift
	if variable {
		e |= elemVariable
	}
	return e
}

// Primary returns the primary weight of the element.
func (e Elem) Primary() uint16 {
	return uint16(e >> elemPrimaryShift)
}

// Secondary returns the secondary weight of the element.
func (e Elem) Secondary() uint16 {
	return uint16(e>>elemSecondaryShift) & elemSecondaryMask
}

// Tertiary returns the tertiary weight of the element.
func (e Elem) Tertiary() uint16 {
	return uint16(e>>elemTertiaryShift) & elemTertiaryMask
}

// Variable reports whether the element is tagged as variable.
func (e Elem) Variable() bool {
	return e&elemVariable != 0
}

// String formats the element the way allkeys.txt does.
func (e Elem) String() string {
	if e == ElemSentinel {
		return "[END]"
	}
	mark := '.'
	if e.Variable() {
		mark = '*'
	}
	return fmt.Sprintf("[%c%04X.%04X.%04X]", mark, e.Primary(), e.Secondary(), e.Tertiary())
}

// shifter applies the "Shifted" variable weighting of UTS #10 to a stream
// of elements. The zero value is ready to use for a new stream.
type shifter struct {
	lastVariable bool
}

// shift returns the element that must be stored in the weight stream for e.
// Variable elements keep their primary (it becomes the quaternary weight)
// but lose their secondary and tertiary weights; primary-ignorable
// elements that follow a variable element are dropped entirely.
func (s *shifter) shift(e Elem) Elem {
	switch {
	case e == 0:
		return 0
	case e.Variable():
		s.lastVariable = true
		return MakeElem(true, e.Primary(), 0, 0)
	case e.Primary() == 0 && (e.Tertiary() == 0 || s.lastVariable):
		return 0
	}
	s.lastVariable = false
	return e
}
