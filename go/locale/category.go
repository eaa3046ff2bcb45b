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

import "fmt"

// Category is a locale category, as passed to setlocale.
type Category int

const (
	LC_CTYPE Category = iota
	LC_NUMERIC
	LC_TIME
	LC_COLLATE
	LC_MONETARY
	LC_MESSAGES
	LC_ALL
)

// numCategories is the number of categories with their own slot; LC_ALL
// addresses all of them at once.
const numCategories = int(LC_ALL)

var categoryNames = [...]string{
	LC_CTYPE:    "LC_CTYPE",
	LC_NUMERIC:  "LC_NUMERIC",
	LC_TIME:     "LC_TIME",
	LC_COLLATE:  "LC_COLLATE",
	LC_MONETARY: "LC_MONETARY",
	LC_MESSAGES: "LC_MESSAGES",
	LC_ALL:      "LC_ALL",
}

func (c Category) String() string {
	if c.valid() {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

func (c Category) valid() bool {
	return c >= LC_CTYPE && c <= LC_ALL
}

// ParseCategory returns the category with the given name, e.g. "LC_COLLATE".
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return Category(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, name)
}
