// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

// Package pipeline plans and runs incremental bzip2 compression of a
// directory tree into a mirror tree of ".bz2" files.
package pipeline

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/b0mbie/bubz2/ignore"
	"github.com/b0mbie/bubz2/state"
)

// CompressedSuffix is appended to every destination file name.
const CompressedSuffix = ".bz2"

// Job is one source file scheduled for compression.
type Job struct {
	// Source is the path of the uncompressed input file.
	Source string
	// Destination is the path the compressed output is written to.
	Destination string
	// Relative is the source path relative to the walk root.
	Relative string
}

// Walker plans compression jobs for a source tree.
type Walker struct {
	// Source is the root directory with uncompressed files.
	Source string
	// Destination is the root directory for compressed files.
	Destination string
	// Rules are the root ignore rules.
	Rules []ignore.Rule
	// TableOptions configures rule compilation.
	TableOptions ignore.TableOptions
	// State holds last seen modified times. Nil means every file is
	// treated as never seen and no times are recorded.
	State *state.Store
	// DirRulesName, when set, names a per-directory rules file whose
	// rules extend the inherited set for that directory and below. The
	// rules file itself is never scheduled.
	DirRulesName string
	// OnSkip, when set, is called with the source path of every entry
	// suppressed by ignore rules.
	OnSkip func(path string)
}

// Plan walks the source tree and returns the files needing compression.
//
// A file is scheduled when its destination is missing or its modified time
// differs from the recorded one. Scheduled times are recorded immediately.
// Directories matched by ignore rules are pruned without descending.
func (w *Walker) Plan() ([]Job, error) {
	table, err := ignore.NewTable(w.Rules, w.TableOptions)
	if err != nil {
		return nil, err
	}

	var jobs []Job
	if err := w.planDir(w.Source, "", w.Rules, table, &jobs); err != nil {
		return nil, err
	}

	return jobs, nil
}

// planDir schedules one directory, carrying the effective rules and table.
func (w *Walker) planDir(dir, rel string, rules []ignore.Rule, table *ignore.Table, jobs *[]Job) error {
	if w.DirRulesName != "" {
		local, err := w.loadDirRules(dir)
		if err != nil {
			return err
		}

		if local != nil {
			rules = ignore.MergeRules(rules, local)
			table, err = ignore.NewTable(rules, w.TableOptions)
			if err != nil {
				return errors.Wrapf(err, "compile rules for %s", dir)
			}
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, "read directory %s", dir)
	}

	for _, entry := range entries {
		name := entry.Name()
		if w.DirRulesName != "" && name == w.DirRulesName {
			continue
		}

		sourcePath := filepath.Join(dir, name)
		relPath := filepath.Join(rel, name)

		if table.ExcludesString(relPath) {
			if w.OnSkip != nil {
				w.OnSkip(sourcePath)
			}

			continue
		}

		if entry.IsDir() {
			if err := w.planDir(sourcePath, relPath, rules, table, jobs); err != nil {
				return err
			}

			continue
		}

		info, err := entry.Info()
		if err != nil {
			return errors.Wrapf(err, "stat %s", sourcePath)
		}

		if err := w.planFile(sourcePath, relPath, uint64(info.ModTime().Unix()), jobs); err != nil {
			return err
		}
	}

	return nil
}

// planFile schedules one file if its destination or modified time is stale.
func (w *Walker) planFile(sourcePath, relPath string, modTime uint64, jobs *[]Job) error {
	destPath := filepath.Join(w.Destination, relPath) + CompressedSuffix
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return errors.Wrapf(err, "create parent directories for %s", destPath)
	}

	fresh := false
	if _, err := os.Stat(destPath); err == nil {
		if w.State != nil {
			seen, ok := w.State.TimeOf(relPath)
			fresh = ok && seen == modTime
		}
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "stat %s", destPath)
	}

	if fresh {
		return nil
	}

	if w.State != nil {
		if err := w.State.SetTime(relPath, modTime); err != nil {
			return errors.Wrapf(err, "record time for %s", sourcePath)
		}
	}

	*jobs = append(*jobs, Job{
		Source:      sourcePath,
		Destination: destPath,
		Relative:    relPath,
	})
	return nil
}

// loadDirRules reads the per-directory rules file, nil when absent.
func (w *Walker) loadDirRules(dir string) ([]ignore.Rule, error) {
	path := filepath.Join(dir, w.DirRulesName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "stat %s", path)
	}

	rules, err := ignore.LoadRulesFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	return rules, nil
}
