/*
Copyright 2025 The llm-d Authors

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

// Package metrics exposes dimension registry activity as Prometheus metrics.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/llm-d/llm-d-physical-units/pkg/units"
)

const namespace = "dimensions"

// Load results.
const (
	ResultSuccess           = "success"
	ResultNotFound          = "not_found"
	ResultInvalid           = "invalid"
	ResultUnsupportedFormat = "unsupported_format"
	ResultError             = "error"
)

// Recorder implements units.Observer on top of Prometheus collectors.
type Recorder struct {
	size       prometheus.Gauge
	registered *prometheus.CounterVec
	loads      *prometheus.CounterVec
	lookups    *prometheus.CounterVec
}

var _ units.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_size",
			Help:      "Number of dimensions currently registered",
		}),
		registered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registered_total",
			Help:      "Total number of dimension registrations, by whether the name was new or replaced",
		}, []string{"result"}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "table_loads_total",
			Help:      "Total number of dimension table loads",
		}, []string{"table", "format", "result"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Total number of dimension lookups by name",
		}, []string{"result"}),
	}
	for _, c := range []prometheus.Collector{r.size, r.registered, r.loads, r.lookups} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering dimension metrics: %w", err)
		}
	}
	return r, nil
}

// ObserveRegister implements units.Observer.
func (r *Recorder) ObserveRegister(added, replaced, size int) {
	r.registered.WithLabelValues("added").Add(float64(added))
	r.registered.WithLabelValues("replaced").Add(float64(replaced))
	r.size.Set(float64(size))
}

// ObserveLoad implements units.Observer.
func (r *Recorder) ObserveLoad(table string, format units.Format, err error) {
	r.loads.WithLabelValues(table, string(format), loadResult(err)).Inc()
}

// ObserveLookup implements units.Observer.
func (r *Recorder) ObserveLookup(_ string, found bool) {
	result := "miss"
	if found {
		result = "hit"
	}
	r.lookups.WithLabelValues(result).Inc()
}

func loadResult(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, units.ErrSourceNotFound):
		return ResultNotFound
	case errors.Is(err, units.ErrInvalidTable):
		return ResultInvalid
	case errors.Is(err, units.ErrUnsupportedFormat):
		return ResultUnsupportedFormat
	default:
		return ResultError
	}
}
