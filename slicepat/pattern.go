// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

package slicepat

// Flags describe how a pattern is anchored. Both bits derive
// deterministically from the raw template at parse time.
type Flags uint8

const (
	// StartUnanchored is set when the template began with the wildcard
	// marker: the first piece may start anywhere in the haystack.
	StartUnanchored Flags = 1 << iota
	// EndAnchored is set when the template did not end with the wildcard
	// marker: the last piece must end exactly at the haystack's end.
	EndAnchored
)

// IsStartUnanchored reports whether the first piece may start anywhere.
func (f Flags) IsStartUnanchored() bool {
	return f&StartUnanchored != 0
}

// IsEndAnchored reports whether the remainder must be empty after the last
// piece.
func (f Flags) IsEndAnchored() bool {
	return f&EndAnchored != 0
}

// Pattern is an immutable parsed wildcard template: anchoring flags plus the
// ordered non-empty literal pieces. Pieces are subslices of the parsed
// template; parsing copies nothing.
//
// A Pattern is created once by Parse and is then safe to evaluate against
// unboundedly many haystacks, concurrently, with no synchronization.
type Pattern[T comparable] struct {
	pieces [][]T
	flags  Flags
}

// NewPattern builds a pattern from pre-split pieces and explicit flags.
// Empty pieces carry no information and are dropped.
func NewPattern[T comparable](pieces [][]T, flags Flags) Pattern[T] {
	kept := make([][]T, 0, len(pieces))
	for _, piece := range pieces {
		if len(piece) > 0 {
			kept = append(kept, piece)
		}
	}

	return Pattern[T]{pieces: kept, flags: flags}
}

// Parse splits template at every occurrence of wildcard into a pattern.
//
// Parse is total: every template is accepted. Empty fragments produced by
// leading, trailing or doubled wildcards are not materialized as pieces;
// their information is fully captured by the anchoring flags. There is no
// escaping mechanism, so an element equal to wildcard can never appear
// literally in a piece.
func Parse[T comparable](template []T, wildcard T) Pattern[T] {
	var flags Flags
	if len(template) > 0 && template[0] == wildcard {
		flags |= StartUnanchored
	}

	if len(template) == 0 || template[len(template)-1] != wildcard {
		flags |= EndAnchored
	}

	var pieces [][]T
	start := 0
	for i := 0; i <= len(template); i++ {
		if i != len(template) && template[i] != wildcard {
			continue
		}

		if i > start {
			pieces = append(pieces, template[start:i])
		}

		start = i + 1
	}

	return Pattern[T]{pieces: pieces, flags: flags}
}

// Flags returns the pattern's anchoring flags.
func (p Pattern[T]) Flags() Flags {
	return p.flags
}

// Pieces returns the pattern's pieces in template order. The returned slice
// and its elements are read-only.
func (p Pattern[T]) Pieces() [][]T {
	return p.pieces
}

// FirstMatch evaluates the pattern against haystack under strategy m and
// returns the unconsumed remainder on success.
//
// FirstMatch is total: absence of a match is (nil, false), never an error.
func (p Pattern[T]) FirstMatch(m Matcher[T], haystack []T) ([]T, bool) {
	return firstMatch[T](&sliceCursor[T]{pieces: p.pieces}, p.flags, m, haystack)
}
