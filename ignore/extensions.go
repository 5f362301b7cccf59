// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

package ignore

import "strings"

// ParseExtensions converts extension list to include rules.
//
// Accepted extension forms:
//   - "txt"
//   - ".txt"
//   - "*.txt"
//
// Empty values are skipped. Returned patterns are normalized to lower-case
// "*.ext" form and preserve input order.
func ParseExtensions(exts []string) []Rule {
	rules := make([]Rule, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = strings.ToLower(ext)
		if ext == "" {
			continue
		}

		rules = append(rules, Rule{
			Pattern:   "*." + ext,
			Directive: DirectiveInclude,
		})
	}

	return rules
}
