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

// Package collations decides the relative order of Unicode strings under a
// locale's rules and builds binary sort keys reproducing that order.
//
// A Collation is obtained from a Config through New, which dispatches to one
// of the registered backends: "posix" (code point order), "uca" (the Unicode
// Collation Algorithm with the DUCET or a CLDR tailoring) and "xtext"
// (golang.org/x/text/collate).
package collations

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"vitess.io/collate/go/collations/internal/uca"
)

// Collation orders sequences of Unicode scalar values. Implementations
// returned by New are safe for concurrent use.
type Collation interface {
	// Name returns the canonical name of the collation.
	Name() string

	// Collate returns -1, 0 or 1 depending on whether left sorts before,
	// equal to or after right.
	Collate(left, right []rune) int

	// WeightString appends the narrow sort key of src to dst. Comparing
	// two keys with bytes.Compare has the sign of Collate.
	WeightString(dst []byte, src []rune) []byte

	// WeightStringWide appends the wide sort key of src to dst. Wide keys
	// compare with slices.Compare.
	WeightStringWide(dst []rune, src []rune) []rune
}

// Versioned is implemented by collations whose sort keys depend on
// versioned data. Persisted keys must be rebuilt when the version changes.
type Versioned interface {
	Version() string
}

// Tailoring selects the weight tables of the uca backend.
type Tailoring = uca.Tailoring

var (
	// Ducet is the plain Default Unicode Collation Element Table.
	Ducet = uca.Ducet
	// CldrRoot is the CLDR root collation.
	CldrRoot = uca.Cldr(uca.LocaleRoot)
	// CldrArabicScript is CLDR root with the Arabic script sorted before
	// every other script.
	CldrArabicScript = uca.Cldr(uca.LocaleArabicScript)
	// CldrArabicInterleaved is CLDR root with the Arabic letter tailoring
	// but no script reordering.
	CldrArabicInterleaved = uca.Cldr(uca.LocaleArabicInterleaved)
)

// Tailorings lists every tailoring the uca backend supports.
func Tailorings() []Tailoring {
	return uca.Tailorings()
}

// Config describes a collation. The zero value is the posix backend.
type Config struct {
	// Backend names a registered backend. Empty means "posix".
	Backend string
	// Tailoring and the two flags below configure the uca backend. The
	// xtext backend honors Shifting and Tiebreak through its options.
	Tailoring Tailoring
	Shifting  bool
	Tiebreak  bool
	// Language is the BCP 47 tag used by the xtext backend.
	Language string
}

// DefaultConfig is the uca backend with the CLDR root tailoring, shifted
// variable weighting and a code point tiebreak.
func DefaultConfig() Config {
	return Config{
		Backend:   BackendUCA,
		Tailoring: CldrRoot,
		Shifting:  true,
		Tiebreak:  true,
	}
}

func (cfg Config) String() string {
	switch cfg.Backend {
	case "", BackendPosix:
		return BackendPosix
	case BackendXText:
		return fmt.Sprintf("%s/%s/shifting=%v/tiebreak=%v", cfg.Backend, cfg.Language, cfg.Shifting, cfg.Tiebreak)
	default:
		return fmt.Sprintf("%s/%s/shifting=%v/tiebreak=%v", cfg.Backend, cfg.Tailoring, cfg.Shifting, cfg.Tiebreak)
	}
}

const (
	BackendPosix = "posix"
	BackendUCA   = "uca"
	BackendXText = "xtext"
)

// ErrUnknownBackend is returned by New for a backend that was never
// registered.
var ErrUnknownBackend = errors.New("unknown collation backend")

// Backend builds a Collation from a Config.
type Backend func(cfg Config) (Collation, error)

var (
	backendsMu sync.RWMutex
	backends   = make(map[string]Backend)
)

// Register makes a backend available under name. Registering the same
// name twice panics.
func Register(name string, b Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()

	if _, found := backends[name]; found {
		panic(fmt.Sprintf("duplicated collation backend: %s", name))
	}
	backends[name] = b
}

// LookupBackend returns the backend registered under name.
func LookupBackend(name string) (Backend, bool) {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	b, ok := backends[name]
	return b, ok
}

// Backends returns the names of all registered backends, sorted.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns the Collation described by cfg.
func New(cfg Config) (Collation, error) {
	name := cfg.Backend
	if name == "" {
		name = BackendPosix
	}
	b, ok := LookupBackend(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return b(cfg)
}

func init() {
	Register(BackendPosix, newPosix)
	Register(BackendUCA, newUCA)
	Register(BackendXText, newXText)
}
