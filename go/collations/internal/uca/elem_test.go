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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElemPacking(t *testing.T) {
	testCases := []struct {
		variable bool
		p, s, t  uint16
		str      string
	}{
		{false, 0x1FA2, 0x0020, 0x0002, "[.1FA2.0020.0002]"},
		{true, 0x0209, 0x0020, 0x0002, "[*0209.0020.0002]"},
		{false, 0x0000, 0x0118, 0x0002, "[.0000.0118.0002]"},
		{false, 0xFFFD, 0x011C, 0x001E, "[.FFFD.011C.001E]"},
		{false, 0, 0, 0, "[.0000.0000.0000]"},
	}

	for _, tc := range testCases {
		e := MakeElem(tc.variable, tc.p, tc.s, tc.t)
		assert.Equal(t, tc.variable, e.Variable())
		assert.Equal(t, tc.p, e.Primary())
		assert.Equal(t, tc.s, e.Secondary())
		assert.Equal(t, tc.t, e.Tertiary())
		assert.Equal(t, tc.str, e.String())
		assert.NotEqual(t, ElemSentinel, e)
	}
	assert.Equal(t, "[END]", ElemSentinel.String())
}

func TestShifter(t *testing.T) {
	var (
		letter   = MakeElem(false, 0x1FA2, 0x0020, 0x0002)
		space    = MakeElem(true, 0x0209, 0x0020, 0x0002)
		acute    = MakeElem(false, 0, 0x0024, 0x0002)
		noTert   = MakeElem(false, 0, 0x0024, 0)
		shifted  = MakeElem(true, 0x0209, 0, 0)
		ignoreMe = Elem(0)
	)

	testCases := []struct {
		name string
		in   []Elem
		want []Elem
	}{
		{"letter passes", []Elem{letter}, []Elem{letter}},
		{"variable keeps its primary", []Elem{space}, []Elem{shifted}},
		{"mark after variable is dropped", []Elem{space, acute}, []Elem{shifted, 0}},
		{"mark after letter survives", []Elem{letter, acute}, []Elem{letter, acute}},
		{"letter resets the state", []Elem{space, letter, acute}, []Elem{shifted, letter, acute}},
		{"zero tertiary is dropped", []Elem{noTert}, []Elem{0}},
		{"ignorable does not reset", []Elem{space, ignoreMe, acute}, []Elem{shifted, 0, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var sh shifter
			got := make([]Elem, 0, len(tc.in))
			for _, e := range tc.in {
				got = append(got, sh.shift(e))
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
