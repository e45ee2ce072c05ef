// Copyright 2026 The validate-i18n Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"codeberg.org/i18n-tools/validate-i18n/modules/lint"
)

// runApp runs the command with args and captures its stdout. The cli
// package's exiter is disarmed so exit codes come back through the error.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prevExiter := cli.OsExiter
	cli.OsExiter = func(int) {}
	t.Cleanup(func() { cli.OsExiter = prevExiter })

	var out, errOut bytes.Buffer
	app := NewMainApp("test")
	app.Writer = &out
	app.ErrWriter = &errOut

	err := app.Run(context.Background(), append([]string{"validate-i18n"}, args...))
	return out.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	var coder cli.ExitCoder
	require.ErrorAs(t, err, &coder)
	return coder.ExitCode()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCheckValidFiles(t *testing.T) {
	dir := t.TempDir()
	file1 := writeFile(t, dir, "file1.json", `{"hello": "Hello"}`)
	file2 := writeFile(t, dir, "file2.json", `{"bye": "Goodbye"}`)

	out, err := runApp(t, file1, file2)

	assert.Equal(t, 0, exitCode(t, err))
	assert.Empty(t, out)
}

func TestCheckNoFiles(t *testing.T) {
	out, err := runApp(t)

	assert.Equal(t, 0, exitCode(t, err))
	assert.Empty(t, out)
}

func TestCheckInvalidFileReport(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "en.json",
		`{"welcome": "", "hello": "Hello", "goodbye": "", "thanks": "Thank you"}`)

	out, err := runApp(t, path)

	assert.Equal(t, 1, exitCode(t, err))
	want := "\n" + path + ":\n" +
		"  - Empty translation: \"welcome\" - translation value is an empty string\n" +
		"  - Empty translation: \"goodbye\" - translation value is an empty string\n" +
		"\n"
	assert.Equal(t, want, out)
}

func TestCheckMixedResults(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "valid.json", `{"hello": "Hello"}`)
	invalid := writeFile(t, dir, "invalid.json", `{"bye": ""}`)

	out, err := runApp(t, valid, invalid)

	assert.Equal(t, 1, exitCode(t, err))
	assert.NotContains(t, out, valid)
	assert.Contains(t, out, invalid+":")
}

func TestCheckSkipsNonJSONFiles(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "broken.txt", `{"hello": ""}`)

	out, err := runApp(t, txt)

	assert.Equal(t, 0, exitCode(t, err))
	assert.Empty(t, out)
}

func TestCheckNonexistentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does_not_exist.json")

	out, err := runApp(t, path)

	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, out, "Failed to read file: ")
}

func TestCheckParseErrorReport(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.json", `{"hello": `)

	out, err := runApp(t, path)

	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, out, `  - JSON Parse Error: "FILE" - Invalid JSON: `)
}

func TestCheckTranslationDirsFilter(t *testing.T) {
	t.Chdir(t.TempDir())
	inScope := writeFile(t, ".", filepath.Join("translations", "en.json"), `{"hello": ""}`)
	outOfScope := writeFile(t, ".", filepath.Join("config", "strings.json"), `{"hello": ""}`)

	out, err := runApp(t, "--translation-dirs", "translations", inScope, outOfScope)

	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, out, inScope+":")
	assert.NotContains(t, out, outOfScope+":")
}

func TestCheckTranslationDirsAllSkipped(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeFile(t, ".", filepath.Join("config", "strings.json"), `{"hello": ""}`)

	out, err := runApp(t, "-d", "translations", path)

	assert.Equal(t, 0, exitCode(t, err))
	assert.Empty(t, out)
}

func TestCheckJSONFormat(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "valid.json", `{"hello": "Hello"}`)
	invalid := writeFile(t, dir, "invalid.json", `{"count": "{{count}} items_one"}`)

	out, err := runApp(t, "--format", "json", valid, invalid)

	assert.Equal(t, 1, exitCode(t, err))

	var results []lint.FileResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, valid, results[0].Path)
	assert.True(t, results[0].OK)
	assert.Equal(t, invalid, results[1].Path)
	assert.False(t, results[1].OK)
	require.Len(t, results[1].Findings, 1)
	assert.Equal(t, lint.MisplacedPluralSuffix, results[1].Findings[0].Kind)
}

func TestCheckJSONFormatNoFiles(t *testing.T) {
	out, err := runApp(t, "--format", "json")

	assert.Equal(t, 0, exitCode(t, err))
	assert.JSONEq(t, `[]`, out)
}

func TestCheckParallelJobs(t *testing.T) {
	dir := t.TempDir()
	var args []string
	args = append(args, "--jobs", "4")
	for i := range 20 {
		content := `{"key": "value"}`
		if i%10 == 0 {
			content = `{"key": ""}`
		}
		args = append(args, writeFile(t, dir, "file"+string(rune('a'+i))+".json", content))
	}

	out, err := runApp(t, args...)

	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, out, "Empty translation")
}

func TestCheckINIFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "locale_en.ini", "greeting = hello_one\n")

	t.Run("skipped without flag", func(t *testing.T) {
		out, err := runApp(t, path)
		assert.Equal(t, 0, exitCode(t, err))
		assert.Empty(t, out)
	})

	t.Run("validated with flag", func(t *testing.T) {
		out, err := runApp(t, "--ini", path)
		assert.Equal(t, 1, exitCode(t, err))
		assert.Contains(t, out, `  - Plural suffix in value: "greeting" - contains "_one" (should be in key, not value)`)
	})
}

func TestCheckInvalidFormatFlag(t *testing.T) {
	_, err := runApp(t, "--format", "xml")
	assert.Equal(t, 2, exitCode(t, err))
}

func TestCheckUppercaseExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "EN.JSON", `{"hello": ""}`)

	_, err := runApp(t, path)
	assert.Equal(t, 1, exitCode(t, err))
}
