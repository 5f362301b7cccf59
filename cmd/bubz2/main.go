// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

// Command bubz2 incrementally mirrors a directory tree into bzip2
// compressed files, honoring wildcard ignore rules and a persistent
// modified time state file.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/b0mbie/bubz2/ignore"
	"github.com/b0mbie/bubz2/pipeline"
	"github.com/b0mbie/bubz2/state"
)

type compressOptions struct {
	from       string
	to         string
	statePath  string
	ignoreFile string
	level      string
	jobs       int
	ignoreExt  []string
	dirIgnore  string
}

func newRootCommand() *cobra.Command {
	var opts compressOptions

	cmd := &cobra.Command{
		Use:   "bubz2 --from <dir> --to <dir> [OPTIONS]",
		Short: "Incrementally compress a directory tree with bzip2",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompress(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()

	flags.StringVar(&opts.from, "from", "", "Source directory with uncompressed files")
	flags.StringVar(&opts.to, "to", "", "Destination directory for compressed files")
	flags.StringVar(&opts.statePath, "state", ".fastdl", "File recording last seen modified times")
	flags.StringVar(&opts.ignoreFile, "ignore", "", "File with wildcard patterns for paths to skip")
	flags.StringVar(&opts.level, "level", "best", `Compression level: "none", "fast", "best" or 0-9`)
	flags.IntVar(&opts.jobs, "jobs", 0, "Concurrent compression jobs (default NumCPU)")
	flags.StringSliceVar(&opts.ignoreExt, "ignore-ext", nil, "File extensions to skip everywhere")
	flags.StringVar(&opts.dirIgnore, "dir-ignore", "", "Per-directory rules file name, empty disables")

	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runCompress(cmd *cobra.Command, opts compressOptions) error {
	level, err := pipeline.ParseLevel(opts.level)
	if err != nil {
		return err
	}

	rules, err := loadIgnoreRules(opts)
	if err != nil {
		return err
	}

	stateFile, err := os.OpenFile(opts.statePath, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open state file %s: %w", opts.statePath, err)
	}
	defer func() { _ = stateFile.Close() }()

	store := state.NewStore(stateFile)
	if err := store.Load(); err != nil {
		return fmt.Errorf("read state file %s: %w", opts.statePath, err)
	}

	walker := &pipeline.Walker{
		Source:       opts.from,
		Destination:  opts.to,
		Rules:        rules,
		State:        store,
		DirRulesName: opts.dirIgnore,
		OnSkip: func(path string) {
			fmt.Fprintf(cmd.OutOrStdout(), "!%s\n", path)
		},
	}

	jobs, err := walker.Plan()
	if err != nil {
		return err
	}

	compressor := &pipeline.Compressor{
		Level: level,
		Jobs:  opts.jobs,
		OnDone: func(job pipeline.Job) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s => %s\n", job.Source, job.Destination)
		},
	}

	return compressor.Run(cmd.Context(), jobs)
}

// loadIgnoreRules merges the rules file, when present, with the
// extension shorthand flags. A missing rules file is not an error.
func loadIgnoreRules(opts compressOptions) ([]ignore.Rule, error) {
	var rules []ignore.Rule
	if opts.ignoreFile != "" {
		loaded, err := ignore.LoadRulesFile(opts.ignoreFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		rules = loaded
	}

	return ignore.MergeRules(rules, ignore.ParseExtensions(opts.ignoreExt)), nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
