/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package snapshot provides a write-once record of named attributes
// observed at a point in time, e.g. the state of a GPU or a process.
package snapshot

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// RealKey is the reserved name of the distinguished attribute.
const RealKey = "real"

// DefaultName is the class name used by String when none is set.
const DefaultName = "Snapshot"

var (
	ErrReservedField  = errors.New("reserved field name")
	ErrDuplicateField = errors.New("duplicate field name")
	ErrEmptyField     = errors.New("empty field name")
)

// Field is a named attribute passed to New.
type Field struct {
	Name  string
	Value Value
}

// F builds a Field, wrapping v with ValueOf.
func F(name string, v any) Field {
	return Field{Name: name, Value: ValueOf(v)}
}

// Snapshot holds the live object it approximates (Real) plus a fixed set of
// extra attributes. The zero Snapshot has no attributes and is falsy.
type Snapshot struct {
	name   string
	real   Value
	set    bool
	fields map[string]Value
}

// New creates a snapshot. Field names must be non-empty, unique and must
// not shadow "real".
func New(real Value, fields ...Field) (Snapshot, error) {
	s := Snapshot{
		real: real,
		set:  true,
	}
	if len(fields) == 0 {
		return s, nil
	}

	s.fields = make(map[string]Value, len(fields))
	for _, f := range fields {
		switch {
		case f.Name == "":
			return Snapshot{}, ErrEmptyField
		case f.Name == RealKey:
			return Snapshot{}, fmt.Errorf("%w: %q", ErrReservedField, f.Name)
		}
		if _, dup := s.fields[f.Name]; dup {
			return Snapshot{}, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		s.fields[f.Name] = f.Value
	}
	return s, nil
}

// MustNew is like New but panics on invalid field names.
func MustNew(real Value, fields ...Field) Snapshot {
	s, err := New(real, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// WithName returns a copy of s that renders under the given class name.
func (s Snapshot) WithName(name string) Snapshot {
	s.name = name
	return s
}

// Name returns the class name used by String.
func (s Snapshot) Name() string {
	if s.name == "" {
		return DefaultName
	}
	return s.name
}

// Real returns the distinguished attribute.
func (s Snapshot) Real() Value { return s.real }

// Truthy reports whether s holds any attribute. Every snapshot built by New
// is truthy, even when Real is Nil.
func (s Snapshot) Truthy() bool {
	return s.set || len(s.fields) > 0
}

// Len returns the number of attributes including real.
func (s Snapshot) Len() int {
	if !s.set {
		return len(s.fields)
	}
	return len(s.fields) + 1
}

// Get looks up an attribute by name.
func (s Snapshot) Get(name string) (Value, bool) {
	if name == RealKey {
		return s.real, s.set
	}
	v, ok := s.fields[name]
	return v, ok
}

// Value returns the named attribute, or NA when it is missing.
func (s Snapshot) Value(name string) Value {
	if v, ok := s.Get(name); ok {
		return v
	}
	return NA()
}

func (s Snapshot) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Keys returns attribute names in render order: real first, then the rest
// sorted lexicographically.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, s.Len())
	for k := range s.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if s.set {
		keys = append([]string{RealKey}, keys...)
	}
	return keys
}

// String renders e.g. Snapshot(real=42, mem=5, util=10). It is diagnostic
// output only; it is not meant to be parsed back.
func (s Snapshot) String() string {
	var b strings.Builder
	b.WriteString(s.Name())
	b.WriteByte('(')
	for i, k := range s.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		v, _ := s.Get(k)
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v.Repr())
	}
	b.WriteByte(')')
	return b.String()
}

// GoString makes %#v print the same form as String.
func (s Snapshot) GoString() string { return s.String() }
