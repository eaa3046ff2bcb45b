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

package command

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutils "vitess.io/collate/go/test/utils"
)

func TestMain(m *testing.M) {
	code := m.Run()
	if code == 0 {
		if err := testutils.GetLeaks(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			code = 1
		}
	}
	os.Exit(code)
}

// resetFlags restores every flag to its default, since cobra keeps parsed
// values between executions of the same command tree.
func resetFlags() {
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset(Root.PersistentFlags())
	for _, cmd := range Root.Commands() {
		reset(cmd.Flags())
	}
}

func run(t *testing.T, stdin string, args ...string) (stdout string, stderr string, err error) {
	t.Helper()
	resetFlags()

	var out, errOut bytes.Buffer
	Stdin = strings.NewReader(stdin)
	Root.SetOut(&out)
	Root.SetErr(&errOut)
	Root.SetArgs(args)
	t.Cleanup(func() {
		Stdin = os.Stdin
		Root.SetOut(nil)
		Root.SetErr(nil)
	})

	err = Root.Execute()
	return out.String(), errOut.String(), err
}

func useMemFS(t *testing.T, files map[string]string) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	prev := FS
	FS = fs
	t.Cleanup(func() { FS = prev })
}

func TestSort(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		in   string
		want string
	}{
		{
			name: "uca",
			args: []string{"--locale", "en_US.UTF-8"},
			in:   "b\nB\na\nA\n",
			want: "a\nA\nb\nB\n",
		},
		{
			name: "C locale sorts bytes",
			args: []string{"--locale", "C"},
			in:   "b\nB\na\nA\n",
			want: "A\nB\na\nb\n",
		},
		{
			name: "punctuation is ignored at first",
			args: []string{"--locale", "en_US.UTF-8"},
			in:   "deluge\ndelta\nde-luge\n",
			want: "delta\nde-luge\ndeluge\n",
		},
		{
			name: "reverse",
			args: []string{"--locale", "en_US.UTF-8", "--reverse"},
			in:   "b\nc\na\n",
			want: "c\nb\na\n",
		},
		{
			name: "unique",
			args: []string{"--locale", "en_US.UTF-8", "--unique"},
			in:   "b\na\nb\na\n",
			want: "a\nb\n",
		},
		{
			name: "unique keeps canonical equivalents apart with a tiebreak",
			args: []string{"--locale", "en_US.UTF-8", "--unique"},
			in:   "\u00E9\ne\u0301\n",
			want: "e\u0301\n\u00E9\n",
		},
		{
			name: "unique merges canonical equivalents without a tiebreak",
			args: []string{"--locale", "en_US.UTF-8@notiebreak", "--unique"},
			in:   "\u00E9\ne\u0301\n",
			want: "\u00E9\n",
		},
		{
			name: "reverse keeps the input order of equal lines",
			args: []string{"--locale", "en_US.UTF-8@notiebreak", "--reverse"},
			in:   "e\u0301\nb\n\u00E9\na\n",
			want: "b\ne\u0301\n\u00E9\na\n",
		},
		{
			name: "ducet puts the noncharacter last",
			args: []string{"--locale", "en_US.UTF-8@ducet"},
			in:   "\uFFFE\na\n",
			want: "a\n\uFFFE\n",
		},
		{
			name: "empty input",
			args: []string{"--locale", "en_US.UTF-8"},
			in:   "",
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.in, append([]string{"sort"}, tc.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestSortParallel(t *testing.T) {
	var in strings.Builder
	for i := 0; i < 5000; i++ {
		fmt.Fprintf(&in, "line %d %c\n", (i*7919)%5000, 'a'+rune(i%26))
	}

	sequential, _, err := run(t, in.String(), "sort", "--locale", "de_DE.UTF-8")
	require.NoError(t, err)
	parallel, _, err := run(t, in.String(), "sort", "--locale", "de_DE.UTF-8", "--parallel", "8")
	require.NoError(t, err)
	assert.Equal(t, sequential, parallel)
	assert.Len(t, strings.Split(strings.TrimSuffix(parallel, "\n"), "\n"), 5000)
}

func TestSortFiles(t *testing.T) {
	useMemFS(t, map[string]string{
		"/in/one.txt": "pear\napple\n",
		"/in/two.txt": "Banana\ncherry",
	})

	out, _, err := run(t, "", "sort", "--locale", "en_US.UTF-8", "/in/one.txt", "/in/two.txt")
	require.NoError(t, err)
	assert.Equal(t, "apple\nBanana\ncherry\npear\n", out)

	_, _, err = run(t, "", "sort", "/in/missing.txt")
	assert.Error(t, err)
}

func TestLocaleSources(t *testing.T) {
	useMemFS(t, map[string]string{
		"/etc/collsort.yaml": "locale: C\n",
	})
	in := "b\nB\n"

	out, _, err := run(t, in, "sort", "--config", "/etc/collsort.yaml")
	require.NoError(t, err)
	assert.Equal(t, "B\nb\n", out, "locale from the config file")

	out, _, err = run(t, in, "sort", "--config", "/etc/collsort.yaml", "--locale", "en_US.UTF-8")
	require.NoError(t, err)
	assert.Equal(t, "b\nB\n", out, "flags override the config file")

	t.Setenv("COLLSORT_LOCALE", "C")
	out, _, err = run(t, in, "sort")
	require.NoError(t, err)
	assert.Equal(t, "B\nb\n", out, "locale from the environment")

	_, _, err = run(t, in, "sort", "--config", "/etc/missing.yaml")
	assert.ErrorContains(t, err, "reading config")

	_, _, err = run(t, in, "sort", "--locale", "../etc/passwd")
	assert.Error(t, err)
}

func TestCmp(t *testing.T) {
	testCases := []struct {
		args []string
		want string
	}{
		{[]string{"abc", "abd"}, "-1\n"},
		{[]string{"abd", "abc"}, "1\n"},
		{[]string{"abc", "abc"}, "0\n"},
		{[]string{"--locale", "en_US.UTF-8@notiebreak", "\u00E9", "e\u0301"}, "0\n"},
		{[]string{"--locale", "C", "a", "B"}, "1\n"},
		{[]string{"--locale", "en_US.UTF-8", "a", "B"}, "-1\n"},
		{[]string{"--locale", "en_US.UTF-8", "--wide", "a", "B"}, "-1\n"},
	}

	for _, tc := range testCases {
		args := append([]string{"cmp", "--locale", "en_US.UTF-8"}, tc.args...)
		out, _, err := run(t, "", args...)
		require.NoError(t, err, "%v", args)
		assert.Equal(t, tc.want, out, "%v", args)
	}

	_, _, err := run(t, "", "cmp", "only-one")
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	out, _, err := run(t, "", "key", "--locale", "en_US.UTF-8", "a")
	require.NoError(t, err)
	assert.Equal(t, "80bfa2018080a0018080820180bfa2018080e1\n", out)

	out, _, err = run(t, "", "key", "--locale", "C", "ab", "")
	require.NoError(t, err)
	assert.Equal(t, "6162\n\n", out)

	out, _, err = run(t, "", "key", "--locale", "C", "--wide", "ab")
	require.NoError(t, err)
	assert.Equal(t, "0061 0062\n", out)

	out, _, err = run(t, "", "key", "--locale", "en_US.UTF-8", "--wide", "a")
	require.NoError(t, err)
	assert.Equal(t, "1fa3 0001 0021 0001 0003 0001 1fa3 0001 0062\n", out)
}

func TestExplain(t *testing.T) {
	out, _, err := run(t, "", "explain", "--locale", "en_US.UTF-8@ducet", "a b")
	require.NoError(t, err)
	assert.Contains(t, out, "collation: uca_ducet_shifted_tiebreak")
	assert.Contains(t, out, "version: uca-13.0.0-")
	assert.Contains(t, out, "[.1FA2.0020.0002]")
	assert.Contains(t, out, "[*0209.0000.0000]")
	assert.Contains(t, out, "[.1FBC.0020.0002]")

	_, _, err = run(t, "", "explain", "--locale", "C", "a")
	assert.ErrorContains(t, err, "does not use the uca backend")
}

func TestTables(t *testing.T) {
	out, _, err := run(t, "", "tables")
	require.NoError(t, err)
	for _, name := range []string{"ducet", "cldr_root", "13.0.0"} {
		assert.Contains(t, out, name)
	}
}

func TestLocale(t *testing.T) {
	out, _, err := run(t, "", "locale", "--locale", "fr_FR.UTF-8")
	require.NoError(t, err)
	assert.Contains(t, out, "LC_COLLATE")
	assert.Contains(t, out, "fr_FR.UTF-8")
	assert.Contains(t, out, "collation: uca_cldr_root_shifted_tiebreak")
	assert.Contains(t, out, "version: uca-")

	out, _, err = run(t, "", "locale", "--locale", "POSIX")
	require.NoError(t, err)
	assert.Contains(t, out, "collation: posix")
	assert.NotContains(t, out, "version:")
}

func TestDumpMetrics(t *testing.T) {
	_, stderr, err := run(t, "b\na\n", "sort", "--locale", "en_US.UTF-8", "--dump-metrics")
	require.NoError(t, err)
	assert.Contains(t, stderr, "collsort_lines_sorted")
	assert.Contains(t, stderr, "collsort_sort_phases")
}
