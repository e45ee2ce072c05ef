// Copyright 2026 The validate-i18n Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package container

import "slices"

// Set is an unordered collection of unique comparable values.
type Set[T comparable] map[T]struct{}

// SetOf creates a set containing the given values.
func SetOf[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add adds value to the set.
// Returns true if the value was not already present.
func (s Set[T]) Add(value T) bool {
	if _, has := s[value]; has {
		return false
	}
	s[value] = struct{}{}
	return true
}

// Contains reports whether value is in the set.
func (s Set[T]) Contains(value T) bool {
	_, has := s[value]
	return has
}

// Len returns the number of values in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Values returns the set's values as an unordered slice.
func (s Set[T]) Values() []T {
	values := make([]T, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	return values
}

// SortedValues returns the set's values in sorted order.
func SortedValues[T ~string](s Set[T]) []T {
	values := s.Values()
	slices.Sort(values)
	return values
}
