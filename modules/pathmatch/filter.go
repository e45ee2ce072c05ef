// Copyright 2026 The validate-i18n Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pathmatch decides which candidate files live inside the configured
// translation directories. It reasons about path strings only and never
// touches the filesystem.
package pathmatch

import (
	"errors"
	"fmt"
	"strings"

	"codeberg.org/i18n-tools/validate-i18n/modules/container"
)

// ErrNoComponents is returned for a directory filter that normalizes to
// nothing ("", "/", "."). Such a filter is ambiguous: it could mean
// "match everything" or "match nothing", so it is rejected outright.
var ErrNoComponents = errors.New("pathmatch: directory filter has no path components")

// Filter is a set of translation-directory names matched against the
// component sequence of candidate paths. An empty filter accepts every path.
type Filter struct {
	dirs [][]string
}

// New builds a filter from directory strings. Forward and backward slashes
// are both accepted as separators and trailing separators are insignificant.
// Duplicate directories collapse into one.
func New(dirs ...string) (*Filter, error) {
	f := &Filter{}
	seen := container.SetOf[string]()
	for _, dir := range dirs {
		components := splitComponents(dir)
		if len(components) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoComponents, dir)
		}
		if !seen.Add(strings.Join(components, "/")) {
			continue
		}
		f.dirs = append(f.dirs, components)
	}
	return f, nil
}

// Matches reports whether path lies inside any configured directory: some
// filter's component sequence must appear as consecutive components of path.
// Matching is case-sensitive and purely textual. With no configured
// directories every path matches; an empty path never matches a non-empty
// filter.
func (f *Filter) Matches(path string) bool {
	if f == nil || len(f.dirs) == 0 {
		return true
	}
	components := splitComponents(path)
	if len(components) == 0 {
		return false
	}
	for _, dir := range f.dirs {
		if containsRun(components, dir) {
			return true
		}
	}
	return false
}

// Empty reports whether the filter accepts everything.
func (f *Filter) Empty() bool {
	return f == nil || len(f.dirs) == 0
}

// splitComponents normalizes separators and splits p into its non-empty
// path components. "." components carry no information and are dropped.
func splitComponents(p string) []string {
	p = strings.ReplaceAll(p, "\\", "/")
	var components []string
	for _, c := range strings.Split(p, "/") {
		if c == "" || c == "." {
			continue
		}
		components = append(components, c)
	}
	return components
}

// containsRun reports whether needle occurs as a consecutive run within
// haystack.
func containsRun(haystack, needle []string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
