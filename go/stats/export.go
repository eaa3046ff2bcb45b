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

// Package stats is a small set of named metric variables. Variables are
// published under a name when created and handed to every registered
// backend, so a backend installed late still sees the variables created
// at package initialization.
package stats

import (
	"sort"
	"sync"
)

// Variable is the interface every stats variable implements.
type Variable interface {
	// Help returns the help string of the variable.
	Help() string
	// String returns a JSON-ish rendering of the current value.
	String() string
}

// NewVarHook is called with every published variable.
type NewVarHook func(name string, v Variable)

type varGroup struct {
	mu        sync.Mutex
	vars      map[string]Variable
	newVarHks []NewVarHook
}

var defaultVarGroup = varGroup{vars: make(map[string]Variable)}

// publish registers v under name. Publishing the same name twice panics,
// like expvar.
func publish(name string, v Variable) {
	defaultVarGroup.mu.Lock()
	defer defaultVarGroup.mu.Unlock()

	if _, dup := defaultVarGroup.vars[name]; dup {
		panic("stats: reuse of variable name " + name)
	}
	defaultVarGroup.vars[name] = v
	for _, hook := range defaultVarGroup.newVarHks {
		hook(name, v)
	}
}

// Register installs a backend hook. The hook is invoked immediately for
// every variable already published, then for each new one.
func Register(nvh NewVarHook) {
	defaultVarGroup.mu.Lock()
	defer defaultVarGroup.mu.Unlock()

	defaultVarGroup.newVarHks = append(defaultVarGroup.newVarHks, nvh)
	for _, name := range sortedNames(defaultVarGroup.vars) {
		nvh(name, defaultVarGroup.vars[name])
	}
}

// Get returns the variable published under name, or nil.
func Get(name string) Variable {
	defaultVarGroup.mu.Lock()
	defer defaultVarGroup.mu.Unlock()
	return defaultVarGroup.vars[name]
}

// Do calls f for every published variable in name order.
func Do(f func(name string, v Variable)) {
	defaultVarGroup.mu.Lock()
	names := sortedNames(defaultVarGroup.vars)
	vars := make([]Variable, len(names))
	for i, name := range names {
		vars[i] = defaultVarGroup.vars[name]
	}
	defaultVarGroup.mu.Unlock()

	for i, name := range names {
		f(name, vars[i])
	}
}

func sortedNames(vars map[string]Variable) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
