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
	"bytes"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var corpus = []string{
	"", "a", "A", "b", "ab", "a b", "a-b", "abc", "ABC", "abd",
	"e", "\u00E9", "e\u0301", "cote", "c\u00F4te", "cot\u00E9",
	"l\u00B7", "lz", "\u0628", "\u4E00", "\u0378", "9", "a\u0000",
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestNew(t *testing.T) {
	coll, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, "posix", coll.Name())

	coll, err = New(DefaultConfig())
	require.NoError(t, err)
	require.IsType(t, &Collation_uca{}, coll)
	assert.Equal(t, "uca_cldr_root_shifted_tiebreak", coll.Name())

	coll, err = New(Config{Backend: BackendUCA, Tailoring: Ducet})
	require.NoError(t, err)
	assert.Equal(t, "uca_ducet", coll.Name())

	coll, err = New(Config{Backend: BackendXText, Language: "de"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(coll.Name(), "xtext_de"), coll.Name())

	_, err = New(Config{Backend: BackendXText, Language: "not a language tag"})
	require.Error(t, err)

	_, err = New(Config{Backend: "icu"})
	require.ErrorIs(t, err, ErrUnknownBackend)

	assert.Equal(t, []string{"posix", "uca", "xtext"}, Backends())
	assert.Panics(t, func() { Register(BackendUCA, newUCA) })
}

func TestConfigString(t *testing.T) {
	assert.Equal(t, "posix", Config{}.String())
	assert.Equal(t, "uca/cldr_root/shifting=true/tiebreak=true", DefaultConfig().String())
	assert.Equal(t, "xtext/sv/shifting=false/tiebreak=false", Config{Backend: BackendXText, Language: "sv"}.String())
}

func testConfigs() []Config {
	var out []Config
	for _, tailoring := range Tailorings() {
		for _, shifting := range []bool{true, false} {
			for _, tiebreak := range []bool{true, false} {
				out = append(out, Config{Backend: BackendUCA, Tailoring: tailoring, Shifting: shifting, Tiebreak: tiebreak})
			}
		}
	}
	for _, tiebreak := range []bool{true, false} {
		out = append(out,
			Config{Backend: BackendXText, Tiebreak: tiebreak},
			Config{Backend: BackendXText, Language: "sv", Shifting: true, Tiebreak: tiebreak},
		)
	}
	return append(out, Config{Backend: BackendPosix})
}

func TestWeightStringOrder(t *testing.T) {
	for _, cfg := range testConfigs() {
		t.Run(cfg.String(), func(t *testing.T) {
			coll, err := New(cfg)
			require.NoError(t, err)

			for _, a := range corpus {
				ra := []rune(a)
				ka := coll.WeightString(nil, ra)
				wa := coll.WeightStringWide(nil, ra)
				assert.Equal(t, 0, coll.Collate(ra, ra))

				for _, b := range corpus {
					rb := []rune(b)
					want := coll.Collate(ra, rb)
					assert.Equal(t, want, sign(bytes.Compare(ka, coll.WeightString(nil, rb))), "narrow keys of %+q and %+q", a, b)
					assert.Equal(t, want, sign(slices.Compare(wa, coll.WeightStringWide(nil, rb))), "wide keys of %+q and %+q", a, b)
					if cfg.Tiebreak && a != b {
						assert.NotEqual(t, 0, want, "tiebreak must separate %+q and %+q", a, b)
					}
				}
			}
		})
	}
}

func TestPosix(t *testing.T) {
	coll, err := New(Config{Backend: BackendPosix})
	require.NoError(t, err)

	assert.Equal(t, -1, coll.Collate([]rune("B"), []rune("a")))
	assert.Equal(t, 1, coll.Collate([]rune("\u00E9"), []rune("f")))
	assert.Equal(t, []byte("h\u00E9"), coll.WeightString(nil, []rune("h\u00E9")))
	assert.Equal(t, []rune("h\u00E9"), coll.WeightStringWide(nil, []rune("h\u00E9")))
	assert.NotImplements(t, (*Versioned)(nil), coll)
}

func TestUCA(t *testing.T) {
	testCases := []struct {
		cfg  Config
		a, b string
		want int
	}{
		{DefaultConfig(), "abc", "ABC", -1},
		{DefaultConfig(), "de-luge", "delta", 1},
		{DefaultConfig(), "\u00E9", "e\u0301", 1},
		{Config{Backend: BackendUCA, Tailoring: CldrRoot, Shifting: true}, "\u00E9", "e\u0301", 0},
		{Config{Backend: BackendUCA, Tailoring: CldrRoot}, "de-luge", "delta", -1},
		{DefaultConfig(), "\u0628", "b", 1},
		{Config{Backend: BackendUCA, Tailoring: CldrArabicScript, Shifting: true, Tiebreak: true}, "\u0628", "b", -1},
	}

	for _, tc := range testCases {
		coll, err := New(tc.cfg)
		require.NoError(t, err)
		assert.Equal(t, tc.want, coll.Collate([]rune(tc.a), []rune(tc.b)), "%s: %+q vs %+q", tc.cfg, tc.a, tc.b)
	}
}

func TestUCAVersion(t *testing.T) {
	versions := make(map[string]Tailoring)
	for _, tailoring := range Tailorings() {
		coll, err := New(Config{Backend: BackendUCA, Tailoring: tailoring})
		require.NoError(t, err)

		v, ok := coll.(Versioned)
		require.True(t, ok)
		version := v.Version()
		assert.True(t, strings.HasPrefix(version, "uca-13.0.0-"), version)
		assert.NotContains(t, versions, version, "%s shares a version with %s", tailoring, versions[version])
		versions[version] = tailoring

		again, err := New(Config{Backend: BackendUCA, Tailoring: tailoring, Shifting: true})
		require.NoError(t, err)
		assert.Equal(t, version, again.(Versioned).Version())
	}
}

func TestUCAElements(t *testing.T) {
	coll, err := New(Config{Backend: BackendUCA, Tailoring: Ducet})
	require.NoError(t, err)

	elems := coll.(*Collation_uca).Elements([]rune("a"))
	require.Len(t, elems, 1)
	assert.Equal(t, uint16(0x1FA2), elems[0].Primary())
	assert.Equal(t, Ducet, coll.(*Collation_uca).Tailoring())
}

func TestXText(t *testing.T) {
	coll, err := New(Config{Backend: BackendXText, Language: "en"})
	require.NoError(t, err)

	assert.Equal(t, -1, coll.Collate([]rune("a"), []rune("b")))
	assert.Equal(t, -1, coll.Collate([]rune("a"), []rune("A")))
	assert.Equal(t, 0, coll.Collate([]rune("\u00E9"), []rune("e\u0301")))
	assert.Equal(t, -1, coll.Collate([]rune("e"), []rune("\u00E9")))

	v, ok := coll.(Versioned)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(v.Version(), "cldr-"))
}

func TestXTextShifted(t *testing.T) {
	for _, lang := range []string{"", "sv", "en"} {
		for _, tiebreak := range []bool{true, false} {
			cfg := Config{Backend: BackendXText, Language: lang, Shifting: true, Tiebreak: tiebreak}
			coll, err := New(cfg)
			require.NoError(t, err)

			testCases := []struct {
				a, b string
				want int
			}{
				{"9", "a", -1},
				{"9", "a\u0000", -1},
				{"de-luge", "delta", 1},
			}
			for _, tc := range testCases {
				ra, rb := []rune(tc.a), []rune(tc.b)
				assert.Equal(t, tc.want, coll.Collate(ra, rb), "%s: Collate(%+q, %+q)", cfg, tc.a, tc.b)
				assert.Equal(t, -tc.want, coll.Collate(rb, ra), "%s: Collate(%+q, %+q)", cfg, tc.b, tc.a)
				assert.Equal(t, tc.want, sign(bytes.Compare(coll.WeightString(nil, ra), coll.WeightString(nil, rb))),
					"%s: keys of %+q and %+q", cfg, tc.a, tc.b)
			}
		}
	}
}

func TestXTextKeysHoldNoNUL(t *testing.T) {
	for _, tiebreak := range []bool{true, false} {
		coll, err := New(Config{Backend: BackendXText, Language: "de", Shifting: true, Tiebreak: tiebreak})
		require.NoError(t, err)
		for _, s := range corpus {
			key := coll.WeightString(nil, []rune(s))
			assert.NotContains(t, key, byte(0), "narrow key of %+q", s)
			assert.NotContains(t, coll.WeightStringWide(nil, []rune(s)), rune(0), "wide key of %+q", s)
		}
	}
}

func TestConcurrentCollate(t *testing.T) {
	coll, err := New(DefaultConfig())
	require.NoError(t, err)

	want := make([]int, len(corpus))
	for i, s := range corpus {
		want[i] = coll.Collate([]rune(s), []rune("m"))
	}

	var wg sync.WaitGroup
	errs := make(chan string, 8*len(corpus))
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, s := range corpus {
				if got := coll.Collate([]rune(s), []rune("m")); got != want[i] {
					errs <- s
				}
				_ = coll.WeightString(nil, []rune(s))
			}
		}()
	}
	wg.Wait()
	close(errs)

	var failed []string
	for s := range errs {
		failed = append(failed, s)
	}
	assert.Empty(t, failed)
}

func TestTables(t *testing.T) {
	infos := Tables()
	require.Len(t, infos, 4)
	assert.Equal(t, Ducet, infos[0].Tailoring)
	assert.Equal(t, 32129, infos[0].Singles)
	assert.Equal(t, 939, infos[0].Contractions)
	for _, info := range infos {
		assert.Equal(t, "13.0.0", info.UnicodeVersion)
		assert.Greater(t, info.Weights, info.Singles)
		assert.NotZero(t, info.Fingerprint)
	}
}
