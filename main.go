// Copyright 2026 The validate-i18n Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// validate-i18n is a pre-commit/CI check for flat key-value translation
// catalogs.
package main

import (
	"os"

	"codeberg.org/i18n-tools/validate-i18n/cmd"
)

// version is substituted at build time via -ldflags "-X main.version=...".
var version = "development"

func main() {
	app := cmd.NewMainApp(version)
	_ = cmd.RunMainApp(app, os.Args...)
}
