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

// A projection extracts the weight of one comparison level from an
// element; zero means the element does not take part in that level.
type projection func(e Elem) uint16

func projectPrimary(e Elem) uint16 { return e.Primary() }

func projectPrimaryShifted(e Elem) uint16 {
	if e.Variable() {
		return 0
	}
	return e.Primary()
}

func projectSecondary(e Elem) uint16 { return e.Secondary() }

func projectTertiary(e Elem) uint16 { return e.Tertiary() }

func projectQuaternary(e Elem) uint16 {
	if e.Variable() || e.Tertiary() != 0 {
		return e.Primary()
	}
	return 0
}

var (
	levelsNonIgnorable = []projection{projectPrimary, projectSecondary, projectTertiary}
	levelsShifted      = []projection{projectPrimaryShifted, projectSecondary, projectTertiary, projectQuaternary}
)

func levels(shifting bool) []projection {
	if shifting {
		return levelsShifted
	}
	return levelsNonIgnorable
}

// compareLevels compares two collation element arrays level by level. At
// each level only the non-zero weights are compared; when one side runs out
// first it sorts first.
func compareLevels(a, b []Elem, shifting bool) int {
	for _, proj := range levels(shifting) {
		if cmp := compareLevel(a, b, proj); cmp != 0 {
			return cmp
		}
	}
	return 0
}

func compareLevel(a, b []Elem, proj projection) int {
	var i, j int
	for {
		var wa, wb uint16
		for ; i < len(a); i++ {
			if wa = proj(a[i]); wa != 0 {
				i++
				break
			}
		}
		for ; j < len(b); j++ {
			if wb = proj(b[j]); wb != 0 {
				j++
				break
			}
		}
		switch {
		case wa < wb:
			return -1
		case wa > wb:
			return 1
		case wa == 0:
			return 0
		}
	}
}
