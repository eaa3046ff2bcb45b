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

package collations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrxfrm(t *testing.T) {
	coll, err := New(DefaultConfig())
	require.NoError(t, err)

	src := []rune("a")
	key := coll.WeightString(nil, src)
	require.NotEmpty(t, key)

	// too small: nothing is written, the full length is returned
	for _, size := range []int{0, 1, len(key)} {
		dst := make([]byte, size)
		for i := range dst {
			dst[i] = 0xAA
		}
		assert.Equal(t, len(key), Strxfrm(coll, dst, src), "size %d", size)
		for _, b := range dst {
			assert.Equal(t, byte(0xAA), b, "size %d", size)
		}
	}

	dst := make([]byte, len(key)+4)
	assert.Equal(t, len(key), Strxfrm(coll, dst, src))
	assert.Equal(t, key, dst[:len(key)])
	assert.Equal(t, byte(0), dst[len(key)])

	// measuring with a nil buffer, then transforming
	n := Strxfrm(coll, nil, []rune("hello"))
	buf := make([]byte, n+1)
	assert.Equal(t, n, Strxfrm(coll, buf, []rune("hello")))
	assert.Equal(t, coll.WeightString(nil, []rune("hello")), buf[:n])
}

func TestWcsxfrm(t *testing.T) {
	coll, err := New(Config{Backend: BackendPosix})
	require.NoError(t, err)

	src := []rune("abc")
	dst := make([]rune, 3)
	assert.Equal(t, 3, Wcsxfrm(coll, dst, src))
	assert.Equal(t, []rune{0, 0, 0}, dst)

	dst = make([]rune, 4)
	assert.Equal(t, 3, Wcsxfrm(coll, dst, src))
	assert.Equal(t, []rune{'a', 'b', 'c', 0}, dst)

	assert.Equal(t, 0, Strxfrm(coll, make([]byte, 1), nil))
}
