// Copyright 2026 The validate-i18n Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd provides the validate-i18n command line interface.
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewMainApp builds the root command. The tool is a single-action command in
// the pre-commit style: candidate filenames arrive as positional arguments
// (typically the staged files) and the exit code is the overall verdict.
func NewMainApp(version string) *cli.Command {
	app := &cli.Command{
		Name:  "validate-i18n",
		Usage: "Validate flat translation catalogs for common authoring mistakes",
		Description: `validate-i18n scans flat key-value translation files for empty
translation values and for plural-category suffixes (_one, _other, ...)
misplaced at the end of a value instead of appended to the key.

Files that are not catalogs (by extension) or that lie outside the
configured translation directories are skipped. The command exits non-zero
when any validated file has findings.`,
		Version:   version,
		ArgsUsage: "[filename...]",
		Flags:     append([]cli.Flag{cli.VersionFlag}, checkFlags()...),
		Action:    runCheck,
	}
	return app
}

// RunMainApp runs the app and reports errors the cli package has not
// already rendered and converted into an exit code.
func RunMainApp(app *cli.Command, args ...string) error {
	err := app.Run(context.Background(), args)
	if err == nil {
		return nil
	}
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		// already handled by the cli package
		return err
	}
	_, _ = fmt.Fprintf(app.Root().ErrWriter, "Command error: %v\n", err)
	cli.OsExiter(1)
	return err
}
