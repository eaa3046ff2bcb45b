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
	"fmt"
	"slices"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collation_xtext delegates to golang.org/x/text/collate, which carries its
// own CLDR tables for many languages.
type Collation_xtext struct {
	tag      language.Tag
	tiebreak bool

	pool sync.Pool
}

type xtextState struct {
	coll *collate.Collator
	buf  collate.Buffer
}

func newXText(cfg Config) (Collation, error) {
	tag := language.Und
	if cfg.Language != "" {
		var err error
		tag, err = language.Parse(cfg.Language)
		if err != nil {
			return nil, fmt.Errorf("xtext collation for %q: %w", cfg.Language, err)
		}
	}

	alternate := "noignore"
	if cfg.Shifting {
		alternate = "shifted"
	}
	tag, err := tag.SetTypeForKey("ka", alternate)
	if err != nil {
		return nil, fmt.Errorf("xtext collation for %q: %w", cfg.Language, err)
	}

	c := &Collation_xtext{tag: tag, tiebreak: cfg.Tiebreak}
	c.pool.New = func() any {
		return &xtextState{coll: collate.New(c.tag)}
	}
	return c, nil
}

func (c *Collation_xtext) Name() string {
	return "xtext_" + c.tag.String()
}

// Collate orders by the x/text keys. CompareString is not used: with
// shifted weighting it ignores the letters and digits following a variable
// and disagrees with the keys.
func (c *Collation_xtext) Collate(left, right []rune) int {
	st := c.pool.Get().(*xtextState)
	defer c.pool.Put(st)

	st.buf.Reset()
	kl := st.coll.KeyFromString(&st.buf, string(left))
	kr := st.coll.KeyFromString(&st.buf, string(right))
	if cmp := bytes.Compare(kl, kr); cmp != 0 || !c.tiebreak {
		return cmp
	}
	return slices.Compare(left, right)
}

// WeightString appends the x/text key of src with every byte escaped so
// that the result holds no NUL: bytes below 0xFD gain 2, larger ones become
// 0xFF followed by b-0xFC. The tiebreak follows a 0x01 separator as the
// UTF-8 of src with every byte plus one.
func (c *Collation_xtext) WeightString(dst []byte, src []rune) []byte {
	st := c.pool.Get().(*xtextState)
	defer c.pool.Put(st)

	st.buf.Reset()
	for _, b := range st.coll.KeyFromString(&st.buf, string(src)) {
		if b < 0xFD {
			dst = append(dst, b+2)
		} else {
			dst = append(dst, 0xFF, b-0xFC)
		}
	}
	if !c.tiebreak {
		return dst
	}
	dst = append(dst, 0x01)
	for _, r := range src {
		start := len(dst)
		dst = utf8.AppendRune(dst, r)
		for i := start; i < len(dst); i++ {
			dst[i]++
		}
	}
	return dst
}

// WeightStringWide widens every key byte by one so that the tiebreak
// separator 1 sorts lowest.
func (c *Collation_xtext) WeightStringWide(dst []rune, src []rune) []rune {
	st := c.pool.Get().(*xtextState)
	defer c.pool.Put(st)

	st.buf.Reset()
	key := st.coll.KeyFromString(&st.buf, string(src))
	for _, b := range key {
		dst = append(dst, rune(b)+2)
	}
	if c.tiebreak {
		dst = append(dst, 1)
		for _, r := range src {
			dst = append(dst, r+1)
		}
	}
	return dst
}

// Version returns the CLDR version of the x/text tables.
func (c *Collation_xtext) Version() string {
	return "cldr-" + collate.CLDRVersion
}
