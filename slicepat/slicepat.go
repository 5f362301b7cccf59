// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

package slicepat

// pieceCursor yields pattern pieces in template order. Cursors are consumed
// by one evaluation and never shared.
type pieceCursor[T any] interface {
	Next() (piece []T, ok bool)
}

// sliceCursor walks a piece slice without copying.
type sliceCursor[T any] struct {
	pieces [][]T
}

// Next returns the next piece in order.
func (c *sliceCursor[T]) Next() ([]T, bool) {
	if len(c.pieces) == 0 {
		return nil, false
	}

	piece := c.pieces[0]
	c.pieces = c.pieces[1:]
	return piece, true
}

// Matches matches pieces against haystack anchored at its start: the first
// piece must begin at offset 0, each following piece at the first window
// where the strategy reports equivalence. It returns the unconsumed
// remainder of the haystack.
//
// An empty piece sequence matches only an empty haystack.
func Matches[T any, M Matcher[T]](pieces [][]T, m M, haystack []T) ([]T, bool) {
	return matchAnchored[T](&sliceCursor[T]{pieces: pieces}, m, haystack)
}

// SuffixMatches scans for each piece in order, taking the leftmost window
// the strategy accepts and advancing past it. It returns the unconsumed
// remainder of the haystack.
//
// An empty piece sequence trivially succeeds with the haystack unchanged.
func SuffixMatches[T any, M Matcher[T]](pieces [][]T, m M, haystack []T) ([]T, bool) {
	return matchScan[T](&sliceCursor[T]{pieces: pieces}, m, haystack)
}

// matchAnchored pins the first piece to offset 0 and hands the rest to
// matchScan. The first piece's alignment is never retried: this is
// shell-glob non-backtracking matching, not regexp matching.
func matchAnchored[T any, C pieceCursor[T], M Matcher[T]](c C, m M, haystack []T) ([]T, bool) {
	first, ok := c.Next()
	if !ok {
		if len(haystack) != 0 {
			return nil, false
		}

		return haystack, true
	}

	if len(haystack) < len(first) {
		return nil, false
	}

	if !m.IsEqual(first, haystack[:len(first)]) {
		return nil, false
	}

	return matchScan[T](c, m, haystack[len(first):])
}

// matchScan is the leftmost-piece-scan: for every piece, the first matching
// window wins and is never reconsidered, so pieces match in order without
// overlapping.
func matchScan[T any, C pieceCursor[T], M Matcher[T]](c C, m M, haystack []T) ([]T, bool) {
	for {
		piece, ok := c.Next()
		if !ok {
			return haystack, true
		}

		n := len(piece)
		if n == 0 {
			continue
		}

		at := -1
		for off := 0; off+n <= len(haystack); off++ {
			if m.IsEqual(piece, haystack[off:off+n]) {
				at = off
				break
			}
		}

		if at < 0 {
			return nil, false
		}

		haystack = haystack[at+n:]
	}
}

// firstMatch composes the two procedures by anchoring flags and applies the
// end-anchor requirement to the remainder.
func firstMatch[T any, C pieceCursor[T], M Matcher[T]](c C, flags Flags, m M, haystack []T) ([]T, bool) {
	var rest []T
	var ok bool
	if flags.IsStartUnanchored() {
		rest, ok = matchScan[T](c, m, haystack)
	} else {
		rest, ok = matchAnchored[T](c, m, haystack)
	}

	if !ok || (flags.IsEndAnchored() && len(rest) != 0) {
		return nil, false
	}

	return rest, true
}
