// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

package ignore

import "github.com/b0mbie/bubz2/slicepat"

// Wildcard is the marker splitting rule patterns into literal pieces.
const Wildcard = byte('*')

// Directive classifies what a matching pattern means for a path.
type Directive uint8

const (
	// DirectiveUnknown is unset/invalid directive placeholder.
	DirectiveUnknown Directive = iota
	// DirectiveInclude registers the pattern in the ignore set: matching
	// paths are suppressed from further processing.
	DirectiveInclude
	// DirectiveExclude overrides the ignore set: matching paths are never
	// suppressed, no matter how many include patterns also match.
	DirectiveExclude
)

// Rule is one user-visible ignore rule.
type Rule struct {
	// Pattern is a wildcard template using Wildcard as the marker.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Directive is applied when the pattern matches.
	Directive Directive `json:"directive" yaml:"directive"`
}

// TableOptions controls table behavior.
type TableOptions struct {
	// Strategy is the piece equivalence strategy. Nil selects the
	// path-normalizing strategy (ASCII case-insensitive, "/" and "\"
	// interchangeable) and enables the literal prefilter.
	Strategy slicepat.Matcher[byte] `json:"-" yaml:"-"`
	// DisablePrefilter turns the literal prefilter off even for the
	// default strategy.
	DisablePrefilter bool `json:"disable_prefilter,omitempty" yaml:"disable_prefilter,omitempty"`
}

// valid reports whether directive value is supported.
func (d Directive) valid() bool {
	return d == DirectiveInclude || d == DirectiveExclude
}
