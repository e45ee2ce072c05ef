// Copyright 2026 The validate-i18n Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package lint

import (
	"fmt"
	"strings"

	"codeberg.org/i18n-tools/validate-i18n/modules/catalog"
)

// pluralSuffixes are the CLDR plural-category tags an i18n framework expects
// appended to a key, matched case-sensitively against value tails.
var pluralSuffixes = [...]string{"_zero", "_one", "_two", "_few", "_many", "_other"}

// EmptyValues flags entries whose value is exactly the empty string.
// Whitespace-only values do not count. Documents whose root is not an
// object produce no findings. Results follow catalog order.
func EmptyValues(doc *catalog.Document) []Finding {
	cat, ok := doc.Mapping()
	if !ok {
		return nil
	}

	var findings []Finding
	for key, value := range cat.Entries() {
		if value.Kind == catalog.KindString && value.Str == "" {
			findings = append(findings, Finding{
				Key:     key,
				Kind:    EmptyValue,
				Message: "translation value is an empty string",
			})
		}
	}
	return findings
}

// MisplacedPluralSuffixes flags string values ending in a plural-category
// suffix. For example:
//
//	BAD:  "count": "{{count}} item found_one"
//	GOOD: "count_one": "{{count}} item found"
//
// Only a suffix forming the literal end of the value matches; occurrences
// elsewhere in the value are fine. Documents whose root is not an object
// produce no findings. Results follow catalog order.
func MisplacedPluralSuffixes(doc *catalog.Document) []Finding {
	cat, ok := doc.Mapping()
	if !ok {
		return nil
	}

	var findings []Finding
	for key, value := range cat.Entries() {
		if value.Kind != catalog.KindString {
			continue
		}
		suffix, found := terminalPluralSuffix(value.Str)
		if !found {
			continue
		}
		findings = append(findings, Finding{
			Key:     key,
			Kind:    MisplacedPluralSuffix,
			Message: fmt.Sprintf("contains \"%s\" (should be in key, not value)", suffix),
		})
	}
	return findings
}

// terminalPluralSuffix returns the plural-category suffix s ends with, if
// any. No two suffixes overlap, so at most one can match.
func terminalPluralSuffix(s string) (string, bool) {
	for _, suffix := range pluralSuffixes {
		if strings.HasSuffix(s, suffix) {
			return suffix, true
		}
	}
	return "", false
}
