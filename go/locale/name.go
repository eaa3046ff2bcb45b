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

package locale

import (
	"errors"
	"fmt"
	"strings"

	"vitess.io/collate/go/collations"
)

var (
	// ErrInvalidLocaleName is returned for names that cannot be a locale:
	// empty, too long, or containing a path separator.
	ErrInvalidLocaleName = errors.New("invalid locale name")
	// ErrInvalidCategory is returned for an unknown locale category.
	ErrInvalidCategory = errors.New("invalid locale category")
)

// maxNameLen is the longest locale name accepted.
const maxNameLen = 255

// Name is a parsed locale name of the form
// language[_TERRITORY][.codeset][@modifier[,modifier...]].
type Name struct {
	Language  string
	Territory string
	Codeset   string
	Modifiers []string
}

// ParseName splits a locale name into its parts. Any well-formed name
// parses; the parts are only interpreted by Config.
func ParseName(name string) (Name, error) {
	if name == "" || len(name) > maxNameLen || strings.ContainsAny(name, "/\x00") {
		return Name{}, fmt.Errorf("%w: %q", ErrInvalidLocaleName, name)
	}

	var n Name
	rest := name
	if i := strings.IndexByte(rest, '@'); i >= 0 {
		for _, m := range strings.Split(rest[i+1:], ",") {
			if m != "" {
				n.Modifiers = append(n.Modifiers, m)
			}
		}
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		n.Codeset = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '_'); i >= 0 {
		n.Territory = rest[i+1:]
		rest = rest[:i]
	}
	n.Language = rest
	return n, nil
}

// IsPosix reports whether the name selects the C/POSIX locale.
func (n Name) IsPosix() bool {
	return n.Territory == "" && (n.Language == "C" || n.Language == "POSIX")
}

// HasModifier reports whether m was given after the '@'.
func (n Name) HasModifier(m string) bool {
	for _, mod := range n.Modifiers {
		if strings.EqualFold(mod, m) {
			return true
		}
	}
	return false
}

func (n Name) String() string {
	var b strings.Builder
	b.WriteString(n.Language)
	if n.Territory != "" {
		b.WriteByte('_')
		b.WriteString(n.Territory)
	}
	if n.Codeset != "" {
		b.WriteByte('.')
		b.WriteString(n.Codeset)
	}
	if len(n.Modifiers) > 0 {
		b.WriteByte('@')
		b.WriteString(strings.Join(n.Modifiers, ","))
	}
	return b.String()
}

// Config resolves the name to a collation configuration. C and POSIX use
// code point order. Every other name uses the UCA with the CLDR root
// tailoring, except Arabic which sorts its script first. Modifiers adjust
// the result:
//
//	interleaved  Arabic letters tailored but not moved before Latin
//	ducet        the untailored DUCET
//	noshift      variable elements are not shifted
//	notiebreak   no code point tiebreak
//	xtext        delegate to golang.org/x/text/collate
//
// Unknown languages and modifiers fall back to the root tailoring.
func (n Name) Config() collations.Config {
	if n.IsPosix() {
		return collations.Config{Backend: collations.BackendPosix}
	}

	cfg := collations.DefaultConfig()
	if strings.EqualFold(n.Language, "ar") {
		cfg.Tailoring = collations.CldrArabicScript
		if n.HasModifier("interleaved") {
			cfg.Tailoring = collations.CldrArabicInterleaved
		}
	}
	if n.HasModifier("ducet") {
		cfg.Tailoring = collations.Ducet
	}
	if n.HasModifier("noshift") {
		cfg.Shifting = false
	}
	if n.HasModifier("notiebreak") {
		cfg.Tiebreak = false
	}
	if n.HasModifier("xtext") {
		cfg.Backend = collations.BackendXText
		cfg.Language = n.Language
		if n.Territory != "" {
			cfg.Language += "-" + n.Territory
		}
	}
	return cfg
}
