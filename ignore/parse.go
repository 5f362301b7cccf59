// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

package ignore

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseRules parses ignore rules from reader.
//
// Semantics:
// - blank lines and "#" comments are ignored
// - "!" creates an exclude rule from the rest of the line
// - "\" takes the rest of the line verbatim as an include pattern
// - plain lines create include rules
func ParseRules(r io.Reader) ([]Rule, error) {
	s := bufio.NewScanner(r)
	rules := make([]Rule, 0, 16)

	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}

		directive := DirectiveInclude
		switch line[0] {
		case '#':
			continue
		case '!':
			directive = DirectiveExclude
			line = line[1:]
		case '\\':
			line = line[1:]
		}

		rules = append(rules, Rule{
			Pattern:   line,
			Directive: directive,
		})
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan rules: %w", err)
	}

	return rules, nil
}

// ParseRulesString parses rules from string input.
func ParseRulesString(src string) ([]Rule, error) {
	return ParseRules(strings.NewReader(src))
}
