// Copyright 2026 The validate-i18n Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v3"
)

// options are the resolved settings for one run: defaults, layered under an
// optional config file, layered under command-line flags.
type options struct {
	TranslationDirs []string
	Jobs            int
	Format          string
	INI             bool
	Verbose         bool
	LogFormat       string
}

func resolveOptions(cmd *cli.Command) (options, error) {
	v := viper.New()
	v.SetDefault("translation_dirs", []string{})
	v.SetDefault("jobs", 1)
	v.SetDefault("format", formatText)
	v.SetDefault("ini", false)
	v.SetDefault("log_format", "console")

	if path := cmd.String("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".validate-i18n")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// the implicit lookup may come up empty; an explicit --config
		// file must exist, and a malformed file is always an error
		var notFound viper.ConfigFileNotFoundError
		if cmd.String("config") != "" || !errors.As(err, &notFound) {
			return options{}, fmt.Errorf("read config file: %w", err)
		}
	}

	opts := options{
		TranslationDirs: v.GetStringSlice("translation_dirs"),
		Jobs:            v.GetInt("jobs"),
		Format:          v.GetString("format"),
		INI:             v.GetBool("ini"),
		LogFormat:       v.GetString("log_format"),
		Verbose:         cmd.Bool("verbose"),
	}
	if cmd.IsSet("translation-dirs") {
		opts.TranslationDirs = cmd.StringSlice("translation-dirs")
	}
	if cmd.IsSet("jobs") {
		opts.Jobs = int(cmd.Int("jobs"))
	}
	if cmd.IsSet("format") {
		opts.Format = cmd.String("format")
	}
	if cmd.IsSet("ini") {
		opts.INI = cmd.Bool("ini")
	}

	if opts.Format != formatText && opts.Format != formatJSON {
		return options{}, fmt.Errorf("unknown report format %q", opts.Format)
	}
	if opts.Jobs < 1 {
		opts.Jobs = 1
	}
	return opts, nil
}
