// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

package pipeline

import (
	"strconv"

	"github.com/pkg/errors"
)

// Level is a bzip2 compression level.
//
// LevelNone disables compression entirely and files are copied verbatim.
type Level int

const (
	// LevelNone copies files without compressing them.
	LevelNone Level = 0
	// LevelFast optimizes for encoding speed.
	LevelFast Level = 1
	// LevelBest optimizes for output size.
	LevelBest Level = 9
)

// ParseLevel parses a compression level argument.
//
// Accepted values are "none", "fast", "best" and "0" through "9", with "0"
// equivalent to "none".
func ParseLevel(s string) (Level, error) {
	switch s {
	case "none":
		return LevelNone, nil
	case "fast":
		return LevelFast, nil
	case "best":
		return LevelBest, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 9 {
		return 0, errors.Errorf("invalid compression level %q", s)
	}

	return Level(n), nil
}

// String renders the level in the form ParseLevel accepts.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelFast:
		return "fast"
	case LevelBest:
		return "best"
	}

	return strconv.Itoa(int(l))
}
