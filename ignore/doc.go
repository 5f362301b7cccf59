// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

/*
Package ignore decides which paths are suppressed from the compression
pipeline, using wildcard patterns from github.com/b0mbie/bubz2/slicepat.

An ignore specification is a line-oriented text format: one pattern per
line, `#` for comments, `!` to register an exclude override, `\` to escape a
literal leading `#` or `!`. Parsed rules compile into a Table keyed by the
patterns' canonical packed encoding. Evaluating a path:
  - if any exclude-directive pattern matches, the path is never suppressed,
    irrespective of how many include-directive patterns also match
  - otherwise the path is suppressed when at least one include-directive
    pattern matches
  - with no match at all the path passes through

The result does not depend on table iteration order: an exclude match wins
deterministically, and include-only evaluation is monotonic.

Basic flow:
  - parse rules from text (`ParseRules`)
  - optionally load rules from file (`LoadRulesFile`)
  - optionally build extension-based rules (`ParseExtensions`)
  - compile the table (`NewTable`)
  - ask for the decision (`Table.Excludes`)
*/
package ignore
