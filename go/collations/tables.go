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

import "vitess.io/collate/go/collations/internal/uca"

// TableInfo describes the weight tables of one uca tailoring.
type TableInfo struct {
	Tailoring      Tailoring
	UnicodeVersion string
	Singles        int
	Contractions   int
	// Weights is the number of collation elements stored, 4 bytes each.
	Weights     int
	Fingerprint uint64
}

// Tables returns the table information of every tailoring, building the
// tables that were not used yet.
func Tables() []TableInfo {
	var out []TableInfo
	for _, t := range uca.Tailorings() {
		tb := uca.TablesFor(t)
		singles, multis := tb.Len()
		out = append(out, TableInfo{
			Tailoring:      t,
			UnicodeVersion: tb.UnicodeVersion(),
			Singles:        singles,
			Contractions:   multis,
			Weights:        tb.Weights(),
			Fingerprint:    tb.Fingerprint(),
		})
	}
	return out
}
