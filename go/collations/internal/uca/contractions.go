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

type trie struct {
	children map[rune]*trie
	weights  []Elem
}

func (t *trie) insert(path []rune, weights []Elem) (replaced bool) {
	if len(path) == 0 {
		replaced = t.weights != nil
		t.weights = weights
		return
	}

	if t.children == nil {
		t.children = make(map[rune]*trie)
	}
	ch := t.children[path[0]]
	if ch == nil {
		ch = &trie{}
		t.children[path[0]] = ch
	}
	return ch.insert(path[1:], weights)
}

func (t *trie) depth() int {
	var longest int
	for _, ch := range t.children {
		if d := ch.depth() + 1; d > longest {
			longest = d
		}
	}
	return longest
}

func (t *trie) walk(path []rune, fn func(path []rune, weights []Elem)) {
	if t.weights != nil {
		fn(path, t.weights)
	}
	for cp, ch := range t.children {
		ch.walk(append(path, cp), fn)
	}
}

// contractions is the multis table: it maps fixed sequences of two or more
// code points to their weight row.
type contractions struct {
	tr    trie
	count int
}

// insert adds a contraction. An existing contraction for the same path is
// replaced, which is how tailorings override the root table.
func (ctr *contractions) insert(path []rune, weights []Elem) {
	if len(path) < 2 {
		panic("contraction is too short")
	}
	if len(weights) == 0 {
		panic("contraction without weights")
	}
	if !ctr.tr.insert(path, weights) {
		ctr.count++
	}
}

// find returns the weight row for exactly the given sequence of code
// points, or nil if the sequence is not a contraction.
func (ctr *contractions) find(path ...rune) []Elem {
	t := &ctr.tr
	for _, cp := range path {
		t = t.children[cp]
		if t == nil {
			return nil
		}
	}
	return t.weights
}

// starters returns, for every code point that begins a contraction, the
// length of the longest contraction it begins.
func (ctr *contractions) starters() map[rune]int {
	out := make(map[rune]int, len(ctr.tr.children))
	for cp, ch := range ctr.tr.children {
		out[cp] = ch.depth() + 1
	}
	return out
}

// each calls fn for every contraction. The path slice is only valid for the
// duration of the call.
func (ctr *contractions) each(fn func(path []rune, weights []Elem)) {
	ctr.tr.walk(make([]rune, 0, 4), fn)
}

func (ctr *contractions) len() int {
	return ctr.count
}
