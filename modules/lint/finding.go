// Copyright 2026 The validate-i18n Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package lint implements the translation catalog checks: the per-entry
// rules, the per-file validator and the batch runner.
package lint

import "fmt"

// Kind classifies a finding. The values double as the rendered labels, which
// are part of the tool's output contract with pre-commit configurations.
type Kind string

const (
	// EmptyValue flags a translation whose value is the empty string.
	EmptyValue Kind = "Empty translation"
	// MisplacedPluralSuffix flags a plural-category suffix at the end of a
	// value. Plural suffixes belong on the key.
	MisplacedPluralSuffix Kind = "Plural suffix in value"
	// ParseError flags a catalog file that is not well-formed.
	ParseError Kind = "JSON Parse Error"
	// ReadError flags a catalog file that could not be read.
	ReadError Kind = "Error"
)

// FileKey is the sentinel key for findings about the file itself rather than
// a specific entry.
const FileKey = "FILE"

// Finding is a single reported issue tied to one key, or to the whole file.
type Finding struct {
	Key     string `json:"key"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// String renders the finding as one indented report line.
func (f Finding) String() string {
	return fmt.Sprintf("  - %s: \"%s\" - %s", f.Kind, f.Key, f.Message)
}

// FileResult is the validation outcome for one file. OK is true exactly when
// Findings is empty; the findings list is the sole source of truth.
type FileResult struct {
	Path     string    `json:"path"`
	OK       bool      `json:"ok"`
	Findings []Finding `json:"findings"`
}
