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

// Package prometheusbackend exports the stats variables to a prometheus
// registry.
package prometheusbackend

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"vitess.io/collate/go/log"
	"vitess.io/collate/go/stats"
)

// PromBackend publishes stats variables as prometheus collectors.
type PromBackend struct {
	namespace string
	reg       prometheus.Registerer
}

// Init installs a backend that registers every stats variable, past and
// future, with reg under the given namespace. A nil reg means the default
// prometheus registerer.
func Init(namespace string, reg prometheus.Registerer) *PromBackend {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	be := &PromBackend{namespace: namespace, reg: reg}
	stats.Register(be.publishPrometheusMetric)
	return be
}

func (be *PromBackend) publishPrometheusMetric(name string, v stats.Variable) {
	switch st := v.(type) {
	case *stats.Counter:
		be.newMetric(st, name, prometheus.CounterValue, func() float64 { return float64(st.Get()) })
	case *stats.CountersWithSingleLabel:
		be.newCountersWithSingleLabel(st, name, st.Label(), prometheus.CounterValue)
	case *stats.Histogram:
		be.newHistogram(st, name)
	case *stats.Timings:
		be.newTiming(st, name)
	default:
		log.Warningf("Not exporting to Prometheus an unsupported metric type of %T: %s", st, name)
	}
}

func (be *PromBackend) newCountersWithSingleLabel(c *stats.CountersWithSingleLabel, name string, labelName string, vt prometheus.ValueType) {
	collector := &countersWithSingleLabelCollector{
		counters: c,
		desc: prometheus.NewDesc(
			be.buildPromName(name),
			c.Help(),
			[]string{normalizeMetric(labelName)},
			nil),
		vt: vt}

	be.reg.MustRegister(collector)
}

func (be *PromBackend) newTiming(t *stats.Timings, name string) {
	collector := &timingsCollector{
		t: t,
		desc: prometheus.NewDesc(
			be.buildPromName(name),
			t.Help(),
			[]string{normalizeMetric(t.Label())},
			nil),
	}

	be.reg.MustRegister(collector)
}

func (be *PromBackend) newHistogram(h *stats.Histogram, name string) {
	collector := &histogramCollector{
		h: h,
		desc: prometheus.NewDesc(
			be.buildPromName(name),
			h.Help(),
			nil,
			nil),
	}

	be.reg.MustRegister(collector)
}

func (be *PromBackend) newMetric(v stats.Variable, name string, vt prometheus.ValueType, f func() float64) {
	collector := &metricFuncCollector{
		f: f,
		desc: prometheus.NewDesc(
			be.buildPromName(name),
			v.Help(),
			nil,
			nil),
		vt: vt}

	be.reg.MustRegister(collector)
}

// buildPromName specifies the namespace as a prefix to the metric name
func (be *PromBackend) buildPromName(name string) string {
	s := strings.TrimPrefix(normalizeMetric(name), be.namespace+"_")
	return prometheus.BuildFQName("", be.namespace, s)
}

func normalizeMetric(name string) string {
	return stats.GetSnakeName(name)
}
