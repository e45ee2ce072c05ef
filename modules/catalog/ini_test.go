// Copyright 2026 The validate-i18n Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeINIFlattensSections(t *testing.T) {
	doc, err := DecodeINI([]byte(`
greeting = Hello

[settings]
save = Save
cancel = Cancel

[common]
ok = OK
`))
	require.NoError(t, err)

	cat, ok := doc.Mapping()
	require.True(t, ok)
	assert.Equal(t, KindMapping, doc.Kind())

	expect := map[string]string{
		"greeting":        "Hello",
		"settings.save":   "Save",
		"settings.cancel": "Cancel",
		"ok":              "OK",
	}
	require.Equal(t, len(expect), cat.Len())
	for key, want := range expect {
		value, found := cat.Get(key)
		require.True(t, found, key)
		assert.Equal(t, KindString, value.Kind, key)
		assert.Equal(t, want, value.Str, key)
	}
}

func TestDecodeINIKeyOrder(t *testing.T) {
	doc, err := DecodeINI([]byte("b = 2\na = 1\n\n[sec]\nz = 3\n"))
	require.NoError(t, err)

	cat, ok := doc.Mapping()
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a", "sec.z"}, cat.Keys())
}

func TestDecodeINIEmptyValues(t *testing.T) {
	doc, err := DecodeINI([]byte("present = text\nmissing =\n"))
	require.NoError(t, err)

	cat, ok := doc.Mapping()
	require.True(t, ok)

	value, found := cat.Get("missing")
	require.True(t, found)
	assert.Equal(t, "", value.Str)
}

func TestDecodeINIMalformed(t *testing.T) {
	_, err := DecodeINI([]byte("[unclosed section\nkey = value\n"))
	require.Error(t, err)

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.NotEmpty(t, syntaxErr.Msg)
}
