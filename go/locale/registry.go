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

// Package locale keeps the process-wide locale of each category and lets a
// single goroutine shadow it with its own, the way setlocale and uselocale
// do for C threads.
package locale

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"vitess.io/collate/go/collations"
	"vitess.io/collate/go/log"
)

// posixName is the name every slot starts with.
const posixName = "C"

// Registry holds the global locale of every category.
type Registry struct {
	// Getenv looks up the environment when a locale is set from it.
	// It defaults to os.Getenv.
	Getenv func(string) string

	mu    sync.RWMutex
	slots [numCategories]string
}

// NewRegistry returns a registry with every category set to "C".
func NewRegistry() *Registry {
	r := &Registry{Getenv: os.Getenv}
	for i := range r.slots {
		r.slots[i] = posixName
	}
	return r
}

// Set changes the global locale of cat and returns the resulting name, as
// setlocale does. An empty name is resolved from the environment. Setting
// LC_ALL changes every category; it also accepts the composite names
// returned by CurrentFor(LC_ALL). On error no slot changes.
func (r *Registry) Set(cat Category, name string) (string, error) {
	if !cat.valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidCategory, int(cat))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.slots
	if err := resolveInto(&next, cat, name, r.getenv); err != nil {
		return "", err
	}
	r.slots = next

	log.DebugS("locale set", "category", cat.String(), "name", name)
	return query(&r.slots, cat), nil
}

// CurrentFor returns the global locale name of cat. For LC_ALL it is the
// common name, or a composite "LC_CTYPE=...;LC_NUMERIC=...;..." when the
// categories differ.
func (r *Registry) CurrentFor(cat Category) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return query(&r.slots, cat)
}

func (r *Registry) getenv(key string) string {
	if r.Getenv == nil {
		return os.Getenv(key)
	}
	return r.Getenv(key)
}

// NewThread returns a view of the registry owned by a single goroutine.
func (r *Registry) NewThread() *Thread {
	return &Thread{reg: r, cache: make(map[string]collations.Collation)}
}

// Thread is the locale state of one goroutine: the global registry,
// optionally shadowed by a thread override. A Thread must not be shared
// between goroutines.
type Thread struct {
	reg      *Registry
	override *[numCategories]string
	cache    map[string]collations.Collation
}

// SetThreadOverride makes cat use name on this thread only, as uselocale
// with a locale from newlocale would. Categories that were not overridden
// keep following the global registry as of the first override. It returns
// the resulting name for cat.
func (t *Thread) SetThreadOverride(cat Category, name string) (string, error) {
	if !cat.valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidCategory, int(cat))
	}

	var next [numCategories]string
	if t.override != nil {
		next = *t.override
	} else {
		t.reg.mu.RLock()
		next = t.reg.slots
		t.reg.mu.RUnlock()
	}

	if err := resolveInto(&next, cat, name, t.reg.getenv); err != nil {
		return "", err
	}
	t.override = &next
	return query(t.override, cat), nil
}

// ClearThreadOverride makes this thread follow the global registry again.
func (t *Thread) ClearThreadOverride() {
	t.override = nil
}

// HasThreadOverride reports whether a thread override is active.
func (t *Thread) HasThreadOverride() bool {
	return t.override != nil
}

// CurrentFor returns the locale name of cat as seen by this thread.
func (t *Thread) CurrentFor(cat Category) string {
	if t.override != nil {
		return query(t.override, cat)
	}
	return t.reg.CurrentFor(cat)
}

// Collation returns the collation of the thread's current LC_COLLATE
// locale. Collations are cached per locale name.
func (t *Thread) Collation() collations.Collation {
	name := t.CurrentFor(LC_COLLATE)
	if coll, ok := t.cache[name]; ok {
		return coll
	}

	coll, err := collationFor(name)
	if err != nil {
		log.Warningf("locale %q: %v; using the root collation", name, err)
		coll, _ = collations.New(collations.DefaultConfig())
	}
	t.cache[name] = coll
	return coll
}

func collationFor(name string) (collations.Collation, error) {
	n, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return collations.New(n.Config())
}

// resolveInto validates name and stores it in the slots addressed by cat.
func resolveInto(slots *[numCategories]string, cat Category, name string, getenv func(string) string) error {
	if cat == LC_ALL && strings.Contains(name, ";") {
		return resolveComposite(slots, name)
	}
	if cat == LC_ALL {
		for c := range numCategories {
			resolved, err := resolveName(Category(c), name, getenv)
			if err != nil {
				return err
			}
			slots[c] = resolved
		}
		return nil
	}

	resolved, err := resolveName(cat, name, getenv)
	if err != nil {
		return err
	}
	slots[cat] = resolved
	return nil
}

func resolveComposite(slots *[numCategories]string, name string) error {
	next := *slots
	for _, part := range strings.Split(name, ";") {
		catName, value, ok := strings.Cut(part, "=")
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidLocaleName, name)
		}
		cat, err := ParseCategory(catName)
		if err != nil || cat == LC_ALL {
			return fmt.Errorf("%w: %q", ErrInvalidLocaleName, name)
		}
		resolved, err := resolveName(cat, value, nil)
		if err != nil {
			return err
		}
		next[cat] = resolved
	}
	*slots = next
	return nil
}

// resolveName looks an empty name up in the environment and canonicalizes
// POSIX to C.
func resolveName(cat Category, name string, getenv func(string) string) (string, error) {
	if name == "" && getenv != nil {
		name = fromEnvironment(cat, getenv)
	}
	n, err := ParseName(name)
	if err != nil {
		return "", err
	}
	if name == "POSIX" {
		return posixName, nil
	}
	return n.String(), nil
}

// fromEnvironment follows POSIX: LC_ALL, then the category variable, then
// LANG, then "C".
func fromEnvironment(cat Category, getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", cat.String(), "LANG"} {
		if v := getenv(key); v != "" {
			return v
		}
	}
	return posixName
}

func query(slots *[numCategories]string, cat Category) string {
	if cat != LC_ALL {
		return slots[cat]
	}

	same := true
	for _, s := range slots[1:] {
		if s != slots[0] {
			same = false
			break
		}
	}
	if same {
		return slots[0]
	}

	parts := make([]string, numCategories)
	for c := range numCategories {
		parts[c] = Category(c).String() + "=" + slots[c]
	}
	return strings.Join(parts, ";")
}
