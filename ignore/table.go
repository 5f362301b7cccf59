// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

package ignore

import (
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/b0mbie/bubz2/slicepat"
)

// tableEntry is one compiled pattern with its directive.
type tableEntry struct {
	pattern   slicepat.PackedPattern
	directive Directive
}

// Table evaluates paths against compiled ignore rules.
//
// Entries are keyed by the canonical pattern encoding, so duplicate rule
// lines collapse to one entry with the last directive winning.
type Table struct {
	entries   map[string]tableEntry
	strategy  slicepat.Matcher[byte]
	prefilter *ahocorasick.Automaton
	pieceless bool
}

// NewTable compiles rules into a table.
func NewTable(rules []Rule, opts TableOptions) (*Table, error) {
	strategy := opts.Strategy
	defaultStrategy := strategy == nil
	if defaultStrategy {
		strategy = slicepat.PathMatch{}
	}

	t := &Table{
		entries:  make(map[string]tableEntry, len(rules)),
		strategy: strategy,
	}

	for _, rule := range rules {
		if !rule.Directive.valid() {
			return nil, fmt.Errorf("%w: %q: unknown directive %d", ErrInvalidRule, rule.Pattern, rule.Directive)
		}

		pattern := slicepat.ParsePackedPattern([]byte(rule.Pattern), Wildcard)
		t.entries[pattern.Key()] = tableEntry{
			pattern:   pattern,
			directive: rule.Directive,
		}
	}

	// The literal prefilter is only sound for the default strategy, where
	// normalized byte equality coincides with strategy equality.
	if defaultStrategy && !opts.DisablePrefilter {
		t.buildPrefilter()
	}

	return t, nil
}

// buildPrefilter indexes every pattern piece in an Aho-Corasick automaton.
//
// A pattern with at least one piece can only match a path containing all of
// its pieces, so zero automaton hits on the normalized path rule out every
// such pattern. Patterns without pieces match independently of path content
// and disable the fast reject. Build failures leave the prefilter off.
func (t *Table) buildPrefilter() {
	builder := ahocorasick.NewBuilder()
	pieces := 0
	for _, entry := range t.entries {
		cursor := entry.pattern.Pieces().Cursor()
		seen := false
		for {
			piece, ok := cursor.Next()
			if !ok {
				break
			}

			seen = true
			pieces++
			builder.AddPattern(appendNormalized(make([]byte, 0, len(piece)), piece))
		}

		if !seen {
			t.pieceless = true
		}
	}

	if pieces == 0 {
		return
	}

	auto, err := builder.Build()
	if err != nil {
		return
	}

	t.prefilter = auto
}

// Len returns the number of distinct compiled patterns.
func (t *Table) Len() int {
	return len(t.entries)
}

// Excludes reports whether path is suppressed by the table.
//
// Decision policy:
// - any matching exclude pattern wins immediately
// - otherwise any matching include pattern suppresses the path
// - a path matched by no pattern passes through
//
// Entry evaluation order is unspecified and never affects the result.
func (t *Table) Excludes(path []byte) bool {
	if len(t.entries) == 0 {
		return false
	}

	if t.prefilter != nil && !t.pieceless {
		normalized := appendNormalized(make([]byte, 0, len(path)), path)
		if !t.prefilter.IsMatch(normalized) {
			return false
		}
	}

	matched := false
	for _, entry := range t.entries {
		if _, ok := entry.pattern.FirstMatch(t.strategy, path); !ok {
			continue
		}

		if entry.directive == DirectiveExclude {
			return false
		}

		matched = true
	}

	return matched
}

// ExcludesString reports whether path is suppressed by the table.
func (t *Table) ExcludesString(path string) bool {
	return t.Excludes([]byte(path))
}
