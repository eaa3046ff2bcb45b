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

package stats

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"
)

// bucketCutoffs are in nanoseconds, from half a millisecond to ten seconds.
var bucketCutoffs = []int64{5e5, 1e6, 5e6, 1e7, 5e7, 1e8, 5e8, 1e9, 5e9, 1e10}

// Timings tracks durations per category, one histogram each.
type Timings struct {
	mu         sync.RWMutex
	totalCount int64
	totalTime  int64
	histograms map[string]*Histogram

	name  string
	help  string
	label string
}

// NewTimings creates a new Timings object, and publishes it if name is set.
// categories is an optional list of categories to initialize to 0.
func NewTimings(name, help, label string, categories ...string) *Timings {
	t := &Timings{
		histograms: make(map[string]*Histogram),
		name:       name,
		help:       help,
		label:      label,
	}
	for _, cat := range categories {
		t.histograms[cat] = NewHistogram("", "", bucketCutoffs)
	}
	if name != "" {
		publish(name, t)
	}
	return t
}

// Add will add a new value to the named histogram.
func (t *Timings) Add(name string, elapsed time.Duration) {
	t.mu.RLock()
	hist, ok := t.histograms[name]
	t.mu.RUnlock()

	if !ok {
		t.mu.Lock()
		hist, ok = t.histograms[name]
		if !ok {
			hist = NewHistogram("", "", bucketCutoffs)
			t.histograms[name] = hist
		}
		t.mu.Unlock()
	}

	elapsedNs := int64(elapsed)
	hist.Add(elapsedNs)

	t.mu.Lock()
	t.totalCount++
	t.totalTime += elapsedNs
	t.mu.Unlock()
}

// Record is a convenience function that records completion
// timing data based on the provided start time of an event.
func (t *Timings) Record(name string, startTime time.Time) {
	t.Add(name, time.Since(startTime))
}

func (t *Timings) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.histograms))
	for name := range t.histograms {
		names = append(names, name)
	}
	sort.Strings(names)

	b := bytes.NewBuffer(make([]byte, 0, 256))
	fmt.Fprintf(b, "{\"TotalCount\": %d, \"TotalTime\": %d, \"Histograms\": {", t.totalCount, t.totalTime)
	for i, name := range names {
		if i > 0 {
			fmt.Fprintf(b, ", ")
		}
		fmt.Fprintf(b, "%q: %s", name, t.histograms[name].String())
	}
	fmt.Fprintf(b, "}}")
	return b.String()
}

// Histograms returns a map pointing at the histograms.
func (t *Timings) Histograms() (h map[string]*Histogram) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	h = make(map[string]*Histogram, len(t.histograms))
	for k, v := range t.histograms {
		h[k] = v
	}
	return
}

// Count returns the total count for all values.
func (t *Timings) Count() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.totalCount
}

// Time returns the total time elapsed for all values.
func (t *Timings) Time() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.totalTime
}

// Counts returns the total count for each category.
func (t *Timings) Counts() map[string]int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	counts := make(map[string]int64, len(t.histograms))
	for k, v := range t.histograms {
		counts[k] = v.Count()
	}
	return counts
}

// Cutoffs returns the cutoffs used in the component histograms.
// Do not change the returned slice.
func (t *Timings) Cutoffs() []int64 {
	return bucketCutoffs
}

// Help returns the help string.
func (t *Timings) Help() string {
	return t.help
}

// Label returns the label name.
func (t *Timings) Label() string {
	return t.label
}
