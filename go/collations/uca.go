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
	"fmt"
	"sync"

	"vitess.io/collate/go/collations/internal/uca"
)

// Collation_uca collates with the Unicode Collation Algorithm. The engine
// keeps per-call scratch buffers, so collators and key builders are pooled.
type Collation_uca struct {
	name      string
	tailoring Tailoring
	shifting  bool
	tiebreak  bool

	collators sync.Pool
	keys      sync.Pool
}

func newUCA(cfg Config) (Collation, error) {
	c := &Collation_uca{
		name:      fmt.Sprintf("uca_%s%s%s", cfg.Tailoring, flagSuffix(cfg.Shifting, "_shifted"), flagSuffix(cfg.Tiebreak, "_tiebreak")),
		tailoring: cfg.Tailoring,
		shifting:  cfg.Shifting,
		tiebreak:  cfg.Tiebreak,
	}
	c.collators.New = func() any {
		return uca.NewCollator(c.tailoring, c.shifting, c.tiebreak)
	}
	c.keys.New = func() any {
		return uca.NewSortKey(c.tailoring, c.shifting, c.tiebreak)
	}
	return c, nil
}

func flagSuffix(set bool, suffix string) string {
	if set {
		return suffix
	}
	return ""
}

func (c *Collation_uca) Name() string {
	return c.name
}

func (c *Collation_uca) Collate(left, right []rune) int {
	coll := c.collators.Get().(*uca.Collator)
	defer c.collators.Put(coll)
	return coll.Collate(left, right)
}

func (c *Collation_uca) WeightString(dst []byte, src []rune) []byte {
	sk := c.keys.Get().(*uca.SortKey)
	defer c.keys.Put(sk)
	return sk.Key(dst, src)
}

func (c *Collation_uca) WeightStringWide(dst []rune, src []rune) []rune {
	sk := c.keys.Get().(*uca.SortKey)
	defer c.keys.Put(sk)
	return sk.KeyWide(dst, src)
}

// Elements returns the collation elements of src, after canonical
// decomposition and variable shifting.
func (c *Collation_uca) Elements(src []rune) []uca.Elem {
	sk := c.keys.Get().(*uca.SortKey)
	defer c.keys.Put(sk)
	return sk.Elements(src)
}

// Tailoring returns the weight tables this collation uses.
func (c *Collation_uca) Tailoring() Tailoring {
	return c.tailoring
}

// Version combines the Unicode version of the weight data with the
// fingerprint of the tables it was built into.
func (c *Collation_uca) Version() string {
	tb := uca.TablesFor(c.tailoring)
	return fmt.Sprintf("uca-%s-%016x", tb.UnicodeVersion(), tb.Fingerprint())
}

// Elem is a packed collation element.
type Elem = uca.Elem
