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
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortKeyLayout(t *testing.T) {
	sk := NewSortKey(Cldr(LocaleRoot), true, true)
	assert.Equal(t, []byte{
		0x80, 0xBF, 0xA2, // primary 1FA2
		0x01,
		0x80, 0x80, 0xA0, // secondary 0020
		0x01,
		0x80, 0x80, 0x82, // tertiary 0002
		0x01,
		0x80, 0xBF, 0xA2, // quaternary
		0x01,
		0x80, 0x80, 0xE1, // U+0061
	}, sk.Key(nil, []rune("a")))

	assert.Equal(t, []rune{0x1FA3, 1, 0x21, 1, 0x03, 1, 0x1FA3, 1, 0x62}, sk.KeyWide(nil, []rune("a")))

	sk = NewSortKey(Ducet, false, false)
	assert.Equal(t, []byte{0x80, 0xBF, 0xA2, 0x01, 0x80, 0x80, 0xA0, 0x01, 0x80, 0x80, 0x82},
		sk.Key(nil, []rune("a")))
	assert.Equal(t, []byte{0x01, 0x01}, sk.Key(nil, nil))
	assert.Equal(t, []rune{1, 1}, sk.KeyWide(nil, []rune{0}))

	// keys are appended
	prefix := []byte("key:")
	got := sk.Key(prefix, []rune("a"))
	assert.True(t, bytes.HasPrefix(got, []byte("key:")))
}

func TestSortKeyProperties(t *testing.T) {
	for _, coll := range configurations() {
		t.Run(configName(coll), func(t *testing.T) {
			sk := NewSortKey(coll.Tailoring, coll.Shifting, coll.Tiebreak)
			for _, a := range corpus {
				key := sk.Key(nil, []rune(a))
				require.NotContains(t, key, byte(0), "narrow key of %+q", a)
				require.Equal(t, key, sk.Key(nil, []rune(a)), "key of %+q must be stable", a)

				wide := sk.KeyWide(nil, []rune(a))
				require.NotContains(t, wide, rune(0), "wide key of %+q", a)

				for _, b := range corpus {
					want := coll.Collate([]rune(a), []rune(b))
					got := slices.Compare(wide, sk.KeyWide(nil, []rune(b)))
					require.Equal(t, want, sign(got), "wide key order of %+q and %+q", a, b)
				}
			}
		})
	}
}

func TestSortKeyElements(t *testing.T) {
	sk := NewSortKey(Ducet, true, true)
	got := sk.Elements([]rune("a b"))
	assert.Equal(t, []Elem{
		MakeElem(false, 0x1FA2, 0x0020, 0x0002),
		MakeElem(true, 0x0209, 0, 0),
		MakeElem(false, 0x1FBC, 0x0020, 0x0002),
	}, got)

	// the returned slice is not reused by later calls
	_ = sk.Elements([]rune("zzzz"))
	assert.Equal(t, MakeElem(false, 0x1FA2, 0x0020, 0x0002), got[0])
}
