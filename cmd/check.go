// Copyright 2026 The validate-i18n Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"codeberg.org/i18n-tools/validate-i18n/modules/container"
	"codeberg.org/i18n-tools/validate-i18n/modules/lint"
	"codeberg.org/i18n-tools/validate-i18n/modules/log"
	"codeberg.org/i18n-tools/validate-i18n/modules/pathmatch"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	formatText = "text"
	formatJSON = "json"
)

func checkFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "translation-dirs",
			Aliases: []string{"d"},
			Usage:   "directory `NAME`s containing translation files; candidates outside them are skipped",
		},
		&cli.IntFlag{
			Name:    "jobs",
			Aliases: []string{"j"},
			Value:   1,
			Usage:   "number of files validated concurrently",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: formatText,
			Usage: "report format: text or json",
		},
		&cli.BoolFlag{
			Name:  "ini",
			Usage: "also validate flat INI catalogs",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "config `FILE` (default: .validate-i18n.yaml in the working directory)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable debug logging",
		},
	}
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return cli.Exit("validate-i18n: "+err.Error(), 2)
	}

	logLevel := "warn"
	if opts.Verbose {
		logLevel = "debug"
	}
	if err := log.Init(logLevel, opts.LogFormat); err != nil {
		return cli.Exit("validate-i18n: "+err.Error(), 2)
	}
	logger := log.L()

	filter, err := pathmatch.New(opts.TranslationDirs...)
	if err != nil {
		return cli.Exit("validate-i18n: "+err.Error(), 2)
	}

	extensions := container.SetOf(".json")
	formats := map[string]lint.Format{".json": lint.FormatJSON}
	if opts.INI {
		extensions.Add(".ini")
		formats[".ini"] = lint.FormatINI
	}

	var inputs []lint.Input
	for _, path := range cmd.Args().Slice() {
		ext := strings.ToLower(filepath.Ext(path))
		if !extensions.Contains(ext) {
			logger.Debug("skipping file: not a catalog extension", zap.String("path", path))
			continue
		}
		if !filter.Matches(path) {
			logger.Debug("skipping file: outside translation directories", zap.String("path", path))
			continue
		}
		inputs = append(inputs, lint.Input{Path: path, Format: formats[ext]})
	}

	runner := lint.Runner{Jobs: opts.Jobs, Logger: logger}
	results, err := runner.Run(inputs)
	if err != nil {
		return cli.Exit("validate-i18n: "+err.Error(), 2)
	}

	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	if opts.Format == formatJSON {
		if err := renderJSON(w, results); err != nil {
			return cli.Exit("validate-i18n: "+err.Error(), 2)
		}
	} else {
		renderText(w, results)
	}

	if lint.Failed(results) {
		return cli.Exit("", 1)
	}
	return nil
}

// renderText prints the pre-commit style report: a leading blank line, then
// each failing file followed by its findings and a blank separator line.
// Passing files are silent.
func renderText(w io.Writer, results []lint.FileResult) {
	var failing []lint.FileResult
	for _, res := range results {
		if !res.OK {
			failing = append(failing, res)
		}
	}
	if len(failing) == 0 {
		return
	}

	fmt.Fprintln(w)
	for _, res := range failing {
		fmt.Fprintf(w, "%s:\n", res.Path)
		for _, finding := range res.Findings {
			fmt.Fprintln(w, finding.String())
		}
		fmt.Fprintln(w)
	}
}

// renderJSON emits every result, passing files included, for machine
// consumption in CI.
func renderJSON(w io.Writer, results []lint.FileResult) error {
	if results == nil {
		results = []lint.FileResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
