// Copyright 2026 The validate-i18n Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package lint

import (
	"os"
	"unicode/utf8"

	"codeberg.org/i18n-tools/validate-i18n/modules/catalog"
)

// Format selects the catalog decoder for a file.
type Format int

const (
	FormatJSON Format = iota
	FormatINI
)

// Input names one file to validate and how to decode it.
type Input struct {
	Path   string
	Format Format
}

// ValidateFile checks one catalog file. It never fails: unreadable or
// malformed input becomes a file-level finding, so validating N files always
// yields N results.
func ValidateFile(in Input) FileResult {
	data, err := os.ReadFile(in.Path)
	if err != nil {
		return fileFailure(in.Path, ReadError, "Failed to read file: "+err.Error())
	}
	if !utf8.Valid(data) {
		return fileFailure(in.Path, ReadError, "Failed to read file: invalid UTF-8 byte sequence")
	}

	doc, err := decode(in.Format, data)
	if err != nil {
		return fileFailure(in.Path, ParseError, parseErrorPrefix(in.Format)+err.Error())
	}

	findings := []Finding{}
	findings = append(findings, EmptyValues(doc)...)
	findings = append(findings, MisplacedPluralSuffixes(doc)...)

	return FileResult{
		Path:     in.Path,
		OK:       len(findings) == 0,
		Findings: findings,
	}
}

func decode(format Format, data []byte) (*catalog.Document, error) {
	if format == FormatINI {
		return catalog.DecodeINI(data)
	}
	return catalog.DecodeJSON(data)
}

func parseErrorPrefix(format Format) string {
	if format == FormatINI {
		return "Invalid INI: "
	}
	return "Invalid JSON: "
}

func fileFailure(path string, kind Kind, message string) FileResult {
	return FileResult{
		Path: path,
		OK:   false,
		Findings: []Finding{{
			Key:     FileKey,
			Kind:    kind,
			Message: message,
		}},
	}
}
