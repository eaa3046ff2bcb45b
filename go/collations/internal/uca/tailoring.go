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

// Locale selects one of the CLDR tailorings layered over the root tables.
type Locale uint8

const (
	LocaleRoot Locale = iota
	LocaleArabicScript
	LocaleArabicInterleaved
)

func (l Locale) String() string {
	switch l {
	case LocaleRoot:
		return "root"
	case LocaleArabicScript:
		return "arabic_script"
	case LocaleArabicInterleaved:
		return "arabic_interleaved"
	default:
		return "unknown"
	}
}

// Tailoring selects the set of weight tables used by a collator: either
// the plain DUCET or a CLDR locale. The zero value is Cldr(LocaleRoot).
type Tailoring struct {
	ducet  bool
	locale Locale
}

// Ducet is the Default Unicode Collation Element Table without any of the
// CLDR root changes.
var Ducet = Tailoring{ducet: true}

// Cldr returns the tailoring for the given CLDR locale.
func Cldr(l Locale) Tailoring {
	return Tailoring{locale: l}
}

// IsCldr reports whether the tailoring is one of the CLDR variants.
func (t Tailoring) IsCldr() bool {
	return !t.ducet
}

// Locale returns the CLDR locale of the tailoring. It is LocaleRoot for Ducet.
func (t Tailoring) Locale() Locale {
	if t.ducet {
		return LocaleRoot
	}
	return t.locale
}

func (t Tailoring) String() string {
	if t.ducet {
		return "ducet"
	}
	return "cldr_" + t.locale.String()
}

// Tailorings lists every supported tailoring.
func Tailorings() []Tailoring {
	return []Tailoring{
		Ducet,
		Cldr(LocaleRoot),
		Cldr(LocaleArabicScript),
		Cldr(LocaleArabicInterleaved),
	}
}
