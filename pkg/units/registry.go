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

package units

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"

	"github.com/llm-d/llm-d-physical-units/internal/logging"
)

// Entry is a named dimension held by a Registry.
type Entry struct {
	// Name is the registry key (e.g., "force").
	Name string
	// Dimension is the exponent vector registered under Name.
	Dimension Dimension
	// DisplayName is optional; when set, units looked up by Name carry it (e.g., "Newton").
	DisplayName string
}

// Unit returns the unit described by e.
func (e Entry) Unit() Unit {
	return FromDimension(e.Dimension).WithName(e.DisplayName)
}

// Observer receives notifications about registry activity.
// Implementations must be safe for concurrent use.
type Observer interface {
	// ObserveRegister is called after a merge with the number of new and replaced entries and the resulting size.
	ObserveRegister(added, replaced, size int)
	// ObserveLoad is called after every Load attempt with the requested format tag; err is nil on success.
	ObserveLoad(table string, format Format, err error)
	// ObserveLookup is called for every Lookup.
	ObserveLookup(name string, found bool)
}

type noopObserver struct{}

func (noopObserver) ObserveRegister(int, int, int)     {}
func (noopObserver) ObserveLoad(string, Format, error) {}
func (noopObserver) ObserveLookup(string, bool)        {}

// Registry maps dimension names to exponent vectors.
// Iteration order is insertion order; re-registering a name replaces its entry in place.
// There is no removal. A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	entries  map[string]Entry
	logger   logr.Logger
	observer Observer
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registry mutations. It defaults to the base logger
// installed with logging.SetLogger at construction time.
func WithLogger(logger logr.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithObserver sets the observer notified of registry activity.
func WithObserver(o Observer) Option {
	return func(r *Registry) {
		if o != nil {
			r.observer = o
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries:  make(map[string]Entry),
		logger:   logging.Log.WithName("units"),
		observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewDefaultRegistry creates a registry seeded with DefaultEntries.
func NewDefaultRegistry(opts ...Option) *Registry {
	r := NewRegistry(opts...)
	r.Register(DefaultEntries()...)
	return r
}

// DefaultEntries returns the built-in dimension table: the base and geometric dimensions
// as pure exponent vectors, followed by common derived dimensions with display names.
func DefaultEntries() []Entry {
	return []Entry{
		{Name: "mass", Dimension: Dimension{1}},
		{Name: "length", Dimension: Dimension{0, 1}},
		{Name: "area", Dimension: Dimension{0, 2}},
		{Name: "volume", Dimension: Dimension{0, 3}},
		{Name: "time", Dimension: Dimension{0, 0, 1}},
		{Name: "temperature", Dimension: Dimension{0, 0, 0, 1}},
		{Name: "current", Dimension: Dimension{0, 0, 0, 0, 1}},
		{Name: "amount", Dimension: Dimension{0, 0, 0, 0, 0, 1}},
		{Name: "luminous intensity", Dimension: Dimension{0, 0, 0, 0, 0, 0, 1}},
		{Name: "speed", Dimension: Dimension{0, 1, -1}, DisplayName: "meters per second"},
		{Name: "acceleration", Dimension: Dimension{0, 1, -2}, DisplayName: "meters per square second"},
		{Name: "energy", Dimension: Dimension{1, 2, -2}, DisplayName: "Joule"},
		{Name: "momentum", Dimension: Dimension{1, 1, -1}, DisplayName: "kilograms meter per second"},
		{Name: "angular momentum", Dimension: Dimension{1, 2, -1}, DisplayName: "kilograms square meter per second"},
		{Name: "force", Dimension: Dimension{1, 1, -2}, DisplayName: "Newton"},
		{Name: "torque", Dimension: Dimension{1, 2, -2}, DisplayName: "Newton meter"},
		{Name: "power", Dimension: Dimension{1, 2, -3}, DisplayName: "Watt"},
		{Name: "pressure", Dimension: Dimension{1, -1, -2}, DisplayName: "Pascal"},
	}
}

// Register merges entries into the registry. A name that already exists is overwritten
// and keeps its original position.
func (r *Registry) Register(entries ...Entry) {
	r.mu.Lock()
	added, replaced := 0, 0
	for _, e := range entries {
		e.Dimension = e.Dimension.canonical()
		if _, exists := r.entries[e.Name]; exists {
			replaced++
			r.logger.V(logging.DEBUG).Info("Overriding registered dimension",
				"name", e.Name,
				"dimension", e.Dimension.String())
		} else {
			added++
			r.order = append(r.order, e.Name)
		}
		r.entries[e.Name] = e
	}
	size := len(r.order)
	r.mu.Unlock()

	r.logger.V(logging.DEBUG).Info("Registered dimensions",
		"added", added,
		"replaced", replaced,
		"size", size)
	r.observer.ObserveRegister(added, replaced, size)
}

// Lookup returns the unit registered under name.
func (r *Registry) Lookup(name string) (Unit, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()

	r.observer.ObserveLookup(name, ok)
	if !ok {
		return None, fmt.Errorf("%w: %q", ErrUnknownDimension, name)
	}
	return e.Unit(), nil
}

// Entry returns the raw entry registered under name.
func (r *Registry) Entry(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Entries returns a snapshot of all entries in registry order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out
}

// Names returns the registered names in registry order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Classify returns every registered name whose exponent vector matches u exactly,
// in registry order. Display names play no part in classification.
func (r *Registry) Classify(u Unit) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	for _, name := range r.order {
		if r.entries[name].Dimension == u.dim {
			names = append(names, name)
		}
	}
	return names
}

// ResolveName classifies u and reduces the result to at most one name.
// No match yields "", a single match yields that name, and several matches are handed to d.
// A nil d behaves like FailOnAmbiguity.
func (r *Registry) ResolveName(u Unit, d Disambiguator) (string, error) {
	candidates := r.Classify(u)
	switch len(candidates) {
	case 0:
		return "", nil
	case 1:
		return candidates[0], nil
	}
	if d == nil {
		d = FailOnAmbiguity
	}
	return d(u.dim, candidates)
}
