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

package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# sample
@version 13.0.0
@implicitweights 17000..18AFF; FB00
0061 ; [.1FA2.0020.0002]
0041 ; [.1FA2.0020.0008]
006C 00B7 ; [.20D6.0020.0002][.0000.0118.0002]
`

func TestCompress(t *testing.T) {
	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			var out bytes.Buffer
			ds, err := compress(&out, strings.NewReader(sample), gzip.BestCompression, workers)
			require.NoError(t, err)
			assert.Equal(t, "13.0.0", ds.Version())

			singles, multis := ds.Len()
			assert.Equal(t, 2, singles)
			assert.Equal(t, 1, multis)

			gz, err := gzip.NewReader(&out)
			require.NoError(t, err)
			assert.Equal(t, "allkeys.txt", gz.Name)
			raw, err := io.ReadAll(gz)
			require.NoError(t, err)
			assert.Equal(t, sample, string(raw))
		})
	}
}

func TestCompressRejectsInvalidData(t *testing.T) {
	testCases := []string{
		"0061 [.1FA2.0020.0002]\n",
		"@unknown\n",
		"0061 ; [.1FA2.0020]\n",
	}
	for _, tc := range testCases {
		var out bytes.Buffer
		_, err := compress(&out, strings.NewReader(tc), gzip.DefaultCompression, 1)
		assert.Error(t, err, "%q", tc)
		assert.Zero(t, out.Len(), "nothing is written for %q", tc)
	}
}
