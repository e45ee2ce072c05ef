// Copyright 2026 The validate-i18n Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package catalog decodes flat translation catalogs.
//
// A catalog is a flat mapping of translation key to translation value, the
// shape i18next and similar frameworks use for one locale. Decoding preserves
// the order keys appear in the source file so that reported issues are stable
// across runs.
package catalog

import (
	"fmt"
	"iter"
)

// Kind tags the value classes a decoded document or entry can hold.
type Kind int

const (
	KindMapping Kind = iota
	KindString
	KindNumber
	KindBool
	KindNull
	KindSequence
)

// Value is a single decoded entry value. Only string values carry a payload;
// the checks never look inside nested structures.
type Value struct {
	Kind Kind
	Str  string // set when Kind is KindString
}

// StringValue wraps s as a catalog string value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Catalog is a flat key-value translation mapping.
// Iteration follows source order. A nil Catalog is an empty one.
type Catalog struct {
	keys   []string
	values map[string]Value
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Get returns the value stored under key.
func (c *Catalog) Get(key string) (Value, bool) {
	if c == nil {
		return Value{}, false
	}
	v, ok := c.values[key]
	return v, ok
}

// Keys returns the keys in source order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Entries iterates over the catalog in source order.
func (c *Catalog) Entries() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if c == nil {
			return
		}
		for _, key := range c.keys {
			if !yield(key, c.values[key]) {
				return
			}
		}
	}
}

// set stores value under key. A duplicate key keeps its original position
// and takes the new value, matching how common JSON parsers resolve
// duplicate object members.
func (c *Catalog) set(key string, value Value) {
	if c.values == nil {
		c.values = make(map[string]Value)
	}
	if _, dup := c.values[key]; !dup {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Document is the decoded root of a catalog file. Well-formed files whose
// root is not an object still decode successfully; they just carry no
// entries for the checks to inspect.
type Document struct {
	kind    Kind
	mapping *Catalog
}

// Kind returns the class of the document's root value.
func (d *Document) Kind() Kind {
	return d.kind
}

// Mapping returns the flat catalog when the document root is an object.
func (d *Document) Mapping() (*Catalog, bool) {
	if d == nil || d.kind != KindMapping {
		return nil, false
	}
	return d.mapping, true
}

// SyntaxError reports a malformed catalog file, with the 1-based position of
// the failure when the underlying parser exposes one.
type SyntaxError struct {
	Msg    string
	Line   int // 0 when unknown
	Column int // 0 when unknown
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d, column %d", e.Msg, e.Line, e.Column)
	}
	return e.Msg
}
