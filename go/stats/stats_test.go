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
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersWithSingleLabel(t *testing.T) {
	c := NewCountersWithSingleLabel("TestCountersBuilds", "table builds", "Tailoring", "ducet")
	assert.Equal(t, map[string]int64{"ducet": 0}, c.Counts())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				c.Add("cldr_root", 1)
			}
		}()
	}
	wg.Wait()

	c.Add("ducet", 2)
	assert.Equal(t, map[string]int64{"ducet": 2, "cldr_root": 800}, c.Counts())
	assert.Equal(t, `{"cldr_root": 800, "ducet": 2}`, c.String())
	assert.Equal(t, "Tailoring", c.Label())
	assert.Equal(t, "table builds", c.Help())

	c.Reset("ducet")
	assert.EqualValues(t, 0, c.Counts()["ducet"])
	assert.Same(t, c, Get("TestCountersBuilds"))
}

func TestCounter(t *testing.T) {
	c := NewCounter("", "keys built")
	c.Add(3)
	c.Add(4)
	assert.EqualValues(t, 7, c.Get())
	assert.Equal(t, "7", c.String())
	c.Reset()
	assert.EqualValues(t, 0, c.Get())
}

func TestHistogram(t *testing.T) {
	h := NewHistogram("", "", []int64{1, 5})
	for _, v := range []int64{0, 1, 2, 5, 6, 100} {
		h.Add(v)
	}
	assert.Equal(t, []int64{2, 2, 2}, h.Buckets())
	assert.EqualValues(t, 6, h.Count())
	assert.EqualValues(t, 114, h.Total())
	assert.Equal(t, `{"1": 2, "5": 2, "inf": 2, "Count": 6, "Total": 114}`, h.String())

	assert.Panics(t, func() {
		NewGenericHistogram("", "", []int64{1}, []string{"a"}, "Count", "Total")
	})
}

func TestTimings(t *testing.T) {
	tm := NewTimings("TestTimingsBuildTime", "build time", "Tailoring", "ducet")
	tm.Add("ducet", 2*time.Millisecond)
	tm.Add("cldr_root", 700*time.Microsecond)
	tm.Record("cldr_root", time.Now())

	assert.Equal(t, map[string]int64{"ducet": 1, "cldr_root": 2}, tm.Counts())
	assert.EqualValues(t, 3, tm.Count())
	assert.GreaterOrEqual(t, tm.Time(), int64(2700*time.Microsecond))
	assert.Equal(t, "Tailoring", tm.Label())
	assert.Len(t, tm.Histograms(), 2)
	assert.True(t, strings.HasPrefix(tm.String(), `{"TotalCount": 3, `))
}

func TestRegisterReplaysPublished(t *testing.T) {
	NewCounter("TestRegisterEarly", "")

	var seen []string
	Register(func(name string, v Variable) {
		if strings.HasPrefix(name, "TestRegister") {
			seen = append(seen, name)
		}
	})
	NewCounter("TestRegisterLate", "")

	require.Equal(t, []string{"TestRegisterEarly", "TestRegisterLate"}, seen)

	assert.Panics(t, func() { NewCounter("TestRegisterLate", "") })

	var names []string
	Do(func(name string, v Variable) {
		if strings.HasPrefix(name, "TestRegister") {
			names = append(names, name)
		}
	})
	assert.Equal(t, []string{"TestRegisterEarly", "TestRegisterLate"}, names)
}
