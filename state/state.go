// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

// Package state persists last modified times for files between runs.
//
// The on-disk format is one "%08x,path" line per file, newline separated,
// with the time expressed in hexadecimal seconds after the Unix epoch.
// Updating a known path rewrites its line in place, so repeated runs over
// a stable tree never grow the file.
package state

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedEntry indicates a state line without a valid time prefix.
var ErrMalformedEntry = errors.New("malformed state entry")

// entry is one loaded line with its byte offset in the source.
type entry struct {
	offset int64
	time   uint64
}

// Store tracks last modified times backed by a seekable source.
type Store struct {
	source  io.ReadWriteSeeker
	entries map[string]entry
}

// NewStore creates a store with no time associations.
func NewStore(source io.ReadWriteSeeker) *Store {
	return &Store{
		source:  source,
		entries: make(map[string]entry),
	}
}

// Load reads all entries from the beginning of the source.
//
// Later lines for the same path replace earlier ones. Blank lines are
// skipped.
func (s *Store) Load() error {
	if _, err := s.source.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek state: %w", err)
	}

	r := bufio.NewReader(s.source)
	offset := int64(0)
	for {
		line, err := r.ReadString('\n')
		if line == "" && err != nil {
			if err == io.EOF {
				return nil
			}

			return fmt.Errorf("read state: %w", err)
		}

		start := offset
		offset += int64(len(line))

		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			path, time, perr := parseLine(trimmed)
			if perr != nil {
				return perr
			}

			s.entries[path] = entry{offset: start, time: time}
		}

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return fmt.Errorf("read state: %w", err)
		}
	}
}

// TimeOf returns the recorded time for path.
func (s *Store) TimeOf(path string) (uint64, bool) {
	e, ok := s.entries[path]
	return e.time, ok
}

// SetTime records time for path in memory and in the source.
//
// A known path has its line rewritten at its original offset. An unknown
// path is appended, separated from existing content by a newline.
func (s *Store) SetTime(path string, time uint64) error {
	if e, ok := s.entries[path]; ok {
		if _, err := s.source.Seek(e.offset, io.SeekStart); err != nil {
			return fmt.Errorf("seek state: %w", err)
		}

		if _, err := io.WriteString(s.source, formatLine(path, time)); err != nil {
			return fmt.Errorf("rewrite state entry: %w", err)
		}

		e.time = time
		s.entries[path] = e
		return nil
	}

	end, err := s.source.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("seek state: %w", err)
	}

	start := end
	if end != 0 {
		if _, err := io.WriteString(s.source, "\n"); err != nil {
			return fmt.Errorf("append state entry: %w", err)
		}

		start = end + 1
	}

	if _, err := io.WriteString(s.source, formatLine(path, time)); err != nil {
		return fmt.Errorf("append state entry: %w", err)
	}

	s.entries[path] = entry{offset: start, time: time}
	return nil
}

// Len returns the number of tracked paths.
func (s *Store) Len() int {
	return len(s.entries)
}

// formatLine renders one state line without a trailing newline.
func formatLine(path string, time uint64) string {
	return fmt.Sprintf("%08x,%s", time, path)
}

// parseLine splits a trimmed state line into path and time.
func parseLine(line string) (string, uint64, error) {
	secs, path, ok := strings.Cut(line, ",")
	if !ok {
		return "", 0, fmt.Errorf("%w: expected time and path", ErrMalformedEntry)
	}

	time, err := strconv.ParseUint(secs, 16, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}

	return path, time, nil
}
