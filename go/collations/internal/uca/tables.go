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
	"embed"
	"encoding/binary"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/gzip"

	"vitess.io/collate/go/log"
	"vitess.io/collate/go/stats"
)

//go:embed data/allkeys.txt.gz data/cldr_root.txt data/arabic_script.txt data/arabic_interleaved.txt
var dataFS embed.FS

const (
	dataDucet             = "data/allkeys.txt.gz"
	dataCldrRoot          = "data/cldr_root.txt"
	dataArabicScript      = "data/arabic_script.txt"
	dataArabicInterleaved = "data/arabic_interleaved.txt"
)

// lowLimit is the first code point that is not served by the dense low table.
const lowLimit = 0xB7

// Letter primaries start at LATIN SMALL LETTER A and end where the implicit
// weights begin. Script reordering permutes primaries inside this range.
const (
	letterPrimaryFirst = 0x1FA2
	letterPrimaryLimit = 0xFB00
)

var (
	tableBuilds = stats.NewCountersWithSingleLabel(
		"CollationTableBuilds",
		"Number of collation weight tables decoded from the embedded data",
		"Tailoring")
	tableBuildTimings = stats.NewTimings(
		"CollationTableBuildTime",
		"Time spent decoding and deriving collation weight tables",
		"Tailoring")
)

// Tables holds the immutable weight data of one tailoring. Tables are safe
// for concurrent use once returned by TablesFor.
type Tables struct {
	tailoring Tailoring
	version   string

	singles   map[rune][]Elem
	multis    contractions
	implicits []implicitRange

	// low mirrors singles for every code point below lowLimit that does not
	// start a contraction; the other slots are nil.
	low [lowLimit][]Elem
	// lookahead is the length of the longest contraction that starts with a
	// given code point, capped at 3. Code points absent from the map never
	// start a contraction.
	lookahead map[rune]int

	fingerprint uint64
}

var (
	ducetOnce sync.Once
	ducetData *Dataset

	tablesOnce [4]sync.Once
	tables     [4]*Tables
)

func tailoringIndex(t Tailoring) int {
	if !t.IsCldr() {
		return 0
	}
	return 1 + int(t.Locale())
}

// TablesFor returns the weight tables for the given tailoring. Tables are
// built the first time they are requested; concurrent callers block until
// the build is done.
func TablesFor(t Tailoring) *Tables {
	idx := tailoringIndex(t)
	if idx >= len(tables) {
		panic(fmt.Sprintf("uca: unsupported tailoring %v", t))
	}
	tablesOnce[idx].Do(func() {
		tables[idx] = buildTables(t)
	})
	return tables[idx]
}

func ducetDataset() *Dataset {
	ducetOnce.Do(func() {
		f, err := dataFS.Open(dataDucet)
		if err != nil {
			panic(err)
		}
		defer f.Close()

		gz, err := gzip.NewReader(f)
		if err != nil {
			panic(fmt.Errorf("uca: corrupted %s: %w", dataDucet, err))
		}
		ds, err := ParseDataset(dataDucet, gz)
		if err != nil {
			panic(fmt.Errorf("uca: corrupted embedded data: %w", err))
		}
		ducetData = ds
	})
	return ducetData
}

func loadExtension(name string) *Dataset {
	f, err := dataFS.Open(name)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	return mustParse(name, f)
}

func mustParse(name string, r io.Reader) *Dataset {
	ds, err := ParseDataset(name, r)
	if err != nil {
		panic(fmt.Errorf("uca: corrupted embedded data: %w", err))
	}
	return ds
}

func buildTables(t Tailoring) *Tables {
	start := time.Now()
	defer tableBuildTimings.Record(t.String(), start)
	tableBuilds.Add(t.String(), 1)

	base := ducetDataset()
	tb := &Tables{
		tailoring: t,
		version:   base.version,
		singles:   make(map[rune][]Elem, len(base.singles)+16),
		implicits: base.implicits,
	}
	tb.merge(base)

	if t.IsCldr() {
		tb.merge(loadExtension(dataCldrRoot))

		switch t.Locale() {
		case LocaleArabicScript:
			ext := loadExtension(dataArabicScript)
			tb.merge(ext)
			for _, script := range ext.reorder {
				tb.reorderScript(script)
			}
		case LocaleArabicInterleaved:
			tb.merge(loadExtension(dataArabicInterleaved))
		}
	}

	tb.derive()

	log.Infof("uca: built %s tables (version %s): %d singles, %d contractions in %v",
		t, tb.version, len(tb.singles), tb.multis.len(), time.Since(start))
	return tb
}

// merge layers ds over the current contents; entries for the same code
// point or sequence are replaced.
func (tb *Tables) merge(ds *Dataset) {
	for cp, row := range ds.singles {
		tb.singles[cp] = row
	}
	ds.multis.each(func(path []rune, row []Elem) {
		tb.multis.insert(path, row)
	})
	if ds.version != "" {
		tb.version = ds.version
	}
}

// reorderScript moves the letter primaries used by the given script ahead of
// every other letter primary. The new order is a permutation of the primary
// values already in use, so no two distinct primaries collide and the
// relative order inside each group is kept.
func (tb *Tables) reorderScript(script string) {
	rt := unicode.Scripts[script]
	if rt == nil {
		panic(fmt.Sprintf("uca: unknown script %q in @reorder", script))
	}

	all := make(map[uint16]bool)
	moved := make(map[uint16]bool)
	collect := func(row []Elem, inScript bool) {
		for _, e := range row {
			p := e.Primary()
			if p < letterPrimaryFirst || p >= letterPrimaryLimit {
				continue
			}
			all[p] = true
			if inScript {
				moved[p] = true
			}
		}
	}
	for cp, row := range tb.singles {
		collect(row, unicode.Is(rt, cp))
	}
	tb.multis.each(func(path []rune, row []Elem) {
		collect(row, unicode.Is(rt, path[0]))
	})

	var (
		slots []uint16
		first []uint16
		rest  []uint16
	)
	for p := range all {
		slots = append(slots, p)
		if moved[p] {
			first = append(first, p)
		} else {
			rest = append(rest, p)
		}
	}
	slices.Sort(slots)
	slices.Sort(first)
	slices.Sort(rest)

	remap := make(map[uint16]uint16, len(slots))
	for i, p := range append(first, rest...) {
		remap[p] = slots[i]
	}

	rewrite := func(row []Elem) []Elem {
		out := make([]Elem, len(row))
		for i, e := range row {
			if np, ok := remap[e.Primary()]; ok {
				e = MakeElem(e.Variable(), np, e.Secondary(), e.Tertiary())
			}
			out[i] = e
		}
		return out
	}
	for cp, row := range tb.singles {
		tb.singles[cp] = rewrite(row)
	}

	var reordered contractions
	tb.multis.each(func(path []rune, row []Elem) {
		reordered.insert(path, rewrite(row))
	})
	tb.multis = reordered
}

func (tb *Tables) derive() {
	tb.lookahead = tb.multis.starters()
	for cp, n := range tb.lookahead {
		if n > 3 {
			tb.lookahead[cp] = 3
		}
	}
	for cp := rune(0); cp < lowLimit; cp++ {
		if _, starts := tb.lookahead[cp]; starts {
			continue
		}
		tb.low[cp] = tb.singles[cp]
	}
	tb.fingerprint = tb.computeFingerprint()
}

func (tb *Tables) computeFingerprint() uint64 {
	h := xxhash.New()
	var buf [4]byte
	writeRow := func(path []rune, row []Elem) {
		for _, cp := range path {
			binary.LittleEndian.PutUint32(buf[:], uint32(cp))
			_, _ = h.Write(buf[:])
		}
		for _, e := range row {
			binary.LittleEndian.PutUint32(buf[:], uint32(e))
			_, _ = h.Write(buf[:])
		}
		binary.LittleEndian.PutUint32(buf[:], uint32(ElemSentinel))
		_, _ = h.Write(buf[:])
	}

	_, _ = h.WriteString(tb.tailoring.String())
	_, _ = h.WriteString(tb.version)

	cps := make([]rune, 0, len(tb.singles))
	for cp := range tb.singles {
		cps = append(cps, cp)
	}
	slices.Sort(cps)
	for _, cp := range cps {
		writeRow([]rune{cp}, tb.singles[cp])
	}

	type multi struct {
		path []rune
		row  []Elem
	}
	var multis []multi
	tb.multis.each(func(path []rune, row []Elem) {
		multis = append(multis, multi{slices.Clone(path), row})
	})
	slices.SortFunc(multis, func(a, b multi) int {
		return slices.Compare(a.path, b.path)
	})
	for _, m := range multis {
		writeRow(m.path, m.row)
	}

	for _, ir := range tb.implicits {
		binary.LittleEndian.PutUint32(buf[:], uint32(ir.lo))
		_, _ = h.Write(buf[:])
		binary.LittleEndian.PutUint32(buf[:], uint32(ir.hi))
		_, _ = h.Write(buf[:])
		binary.LittleEndian.PutUint32(buf[:], uint32(ir.base))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// Tailoring returns the tailoring these tables were built for.
func (tb *Tables) Tailoring() Tailoring { return tb.tailoring }

// UnicodeVersion returns the version of the weight data.
func (tb *Tables) UnicodeVersion() string { return tb.version }

// Fingerprint identifies the exact contents of the tables. Sort keys built
// from tables with different fingerprints must not be compared.
func (tb *Tables) Fingerprint() uint64 { return tb.fingerprint }

// Len returns the number of single code point entries and of contractions.
func (tb *Tables) Len() (singles, multis int) {
	return len(tb.singles), tb.multis.len()
}

// Weights returns the number of collation elements stored in the tables.
func (tb *Tables) Weights() (n int) {
	for _, row := range tb.singles {
		n += len(row)
	}
	tb.multis.each(func(_ []rune, row []Elem) {
		n += len(row)
	})
	return n
}

// lookaheadOf returns how many code points starting at cp may form a single
// contraction: 1 when cp never starts one.
func (tb *Tables) lookaheadOf(cp rune) int {
	if n, ok := tb.lookahead[cp]; ok {
		return n
	}
	return 1
}

// startsContraction reports whether cp is the first code point of any
// contraction.
func (tb *Tables) startsContraction(cp rune) bool {
	_, ok := tb.lookahead[cp]
	return ok
}

// row returns the weights of a single code point: the low table, the
// singles table, or the implicit weights. The returned slice must not be
// modified.
func (tb *Tables) row(cp rune, scratch *[2]Elem) []Elem {
	if cp >= 0 && cp < lowLimit {
		if r := tb.low[cp]; r != nil {
			return r
		}
	}
	if r, ok := tb.singles[cp]; ok {
		return r
	}
	scratch[0], scratch[1] = tb.implicitWeights(cp)
	return scratch[:]
}
