// Copyright 2026 The validate-i18n Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"gopkg.in/ini.v1"
)

// DecodeINI decodes a flat INI locale file into a catalog document. Section
// names prefix their keys ("section.key"); keys in the unnamed, DEFAULT and
// common sections keep their bare name. All INI values are strings, so the
// resulting catalog is always a flat string mapping.
func DecodeINI(data []byte) (*Document, error) {
	cfg := ini.Empty(ini.LoadOptions{
		IgnoreContinuation: true,
	})
	if err := cfg.Append(data); err != nil {
		return nil, &SyntaxError{Msg: err.Error()}
	}

	cat := &Catalog{}
	for _, section := range cfg.Sections() {
		for _, key := range section.Keys() {
			name := key.Name()
			switch section.Name() {
			case "", ini.DefaultSection, "common":
				// bare key
			default:
				name = section.Name() + "." + name
			}
			cat.set(name, StringValue(key.Value()))
		}
	}

	return &Document{kind: KindMapping, mapping: cat}, nil
}
