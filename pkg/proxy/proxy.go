// Package proxy lets a specialized widget feed its own inputs into a base
// widget's configuration without duplicating the base logic.
//
// A specialized widget declares a [Mapping] from its input names to the
// base input they replace. The base reads every configurable input through
// [Get]: when the specialized resolver yields a value it wins, otherwise
// the base widget's own value is used.
//
//	p := proxy.Compose(tooltipInputs, proxy.Mapping{
//	    "PopoverTitle": {Target: "Title", Resolve: proxy.NonZero(func() string { return pop.Title })},
//	})
//	title := proxy.Get(p, "Title", tip.Title)
package proxy

import "slices"

// Resolver produces the specialized value for a target. The bool is false
// when the specialized widget leaves the input undefined.
type Resolver func() (any, bool)

// Entry routes one specialized input to a base target.
type Entry struct {
	Target  string
	Resolve Resolver
}

// Mapping maps specialized input names to entries.
type Mapping map[string]Entry

// Proxy is a composed, inspectable mapping table.
type Proxy struct {
	byKey    map[string]Entry
	byTarget map[string]string
}

// Compose merges mappings ordered from least to most specific. Keys from
// every layer are kept. When two layers use the same key, or route
// different keys to the same target, the more specific layer wins. Within
// one layer, keys routing to the same target are resolved in key order.
func Compose(layers ...Mapping) *Proxy {
	p := &Proxy{
		byKey:    make(map[string]Entry),
		byTarget: make(map[string]string),
	}
	for _, layer := range layers {
		keys := make([]string, 0, len(layer))
		for key := range layer {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		claimed := make(map[string]bool, len(layer))
		for _, key := range keys {
			entry := layer[key]
			if entry.Target == "" {
				entry.Target = key
			}
			if claimed[entry.Target] {
				continue
			}
			claimed[entry.Target] = true

			if old, ok := p.byKey[key]; ok {
				delete(p.byTarget, old.Target)
			}
			if oldKey, ok := p.byTarget[entry.Target]; ok {
				delete(p.byKey, oldKey)
			}
			p.byKey[key] = entry
			p.byTarget[entry.Target] = key
		}
	}
	return p
}

// Extend returns a new proxy with more specific layers on top of p.
func (p *Proxy) Extend(layers ...Mapping) *Proxy {
	return Compose(append([]Mapping{p.Mapping()}, layers...)...)
}

// Lookup returns the resolver routed to target.
func (p *Proxy) Lookup(target string) (Resolver, bool) {
	if p == nil {
		return nil, false
	}
	key, ok := p.byTarget[target]
	if !ok {
		return nil, false
	}
	return p.byKey[key].Resolve, true
}

// Source returns the specialized input name routed to target.
func (p *Proxy) Source(target string) (string, bool) {
	if p == nil {
		return "", false
	}
	key, ok := p.byTarget[target]
	return key, ok
}

// Keys returns the specialized input names in sorted order.
func (p *Proxy) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, 0, len(p.byKey))
	for key := range p.byKey {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Mapping returns a copy of the composed table.
func (p *Proxy) Mapping() Mapping {
	if p == nil {
		return Mapping{}
	}
	out := make(Mapping, len(p.byKey))
	for key, entry := range p.byKey {
		out[key] = entry
	}
	return out
}

// Get resolves target through p. It returns base when no resolver is
// routed to target, the resolver leaves it undefined, or the resolved
// value is not a T.
func Get[T any](p *Proxy, target string, base T) T {
	resolve, ok := p.Lookup(target)
	if !ok || resolve == nil {
		return base
	}
	v, defined := resolve()
	if !defined {
		return base
	}
	typed, ok := v.(T)
	if !ok {
		return base
	}
	return typed
}

// Optional defines the input when f returns a non-nil pointer.
func Optional[T any](f func() *T) Resolver {
	return func() (any, bool) {
		v := f()
		if v == nil {
			return nil, false
		}
		return *v, true
	}
}

// Value always defines the input.
func Value[T any](f func() T) Resolver {
	return func() (any, bool) {
		return f(), true
	}
}

// NonZero defines the input when f returns a non-zero value.
func NonZero[T comparable](f func() T) Resolver {
	return func() (any, bool) {
		var zero T
		v := f()
		if v == zero {
			return nil, false
		}
		return v, true
	}
}
