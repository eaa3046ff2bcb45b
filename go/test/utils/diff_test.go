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

package utils

import (
	"testing"
)

type point struct {
	x, y  int
	label string
}

func TestMustMatch(t *testing.T) {
	MustMatch(t, point{1, 2, "a"}, point{1, 2, "a"})
	MustMatch(t, []point{{x: 1}}, []point{{x: 1}})

	mustMatch := MustMatchFn(".label")
	mustMatch(t, point{1, 2, "a"}, point{1, 2, "b"}, "labels are ignored")
}

func TestGetLeaks(t *testing.T) {
	EnsureNoLeaks(t)
}
