// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

package slicepat

// Matcher decides whether two element windows are equivalent.
//
// The matching functions only ever compare a pattern piece against a
// haystack window of the same length. Implementations must be stateless
// values, safe to share across concurrent evaluations.
type Matcher[T any] interface {
	// IsEqual reports whether a and b are equivalent.
	IsEqual(a, b []T) bool
}

// ExactMatch compares elements with ==.
type ExactMatch[T comparable] struct{}

// IsEqual reports elementwise equality; slices of different length are never
// equal.
func (ExactMatch[T]) IsEqual(a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// CaseInsensitive compares bytes with ASCII case folding. Non-ASCII bytes
// are compared literally.
type CaseInsensitive struct{}

// IsEqual reports ASCII case-insensitive byte equality.
func (CaseInsensitive) IsEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if asciiLower(a[i]) != asciiLower(b[i]) {
			return false
		}
	}

	return true
}

// PathMatch compares bytes like CaseInsensitive and additionally treats "/"
// and "\" as interchangeable, so patterns match paths written with either
// separator.
type PathMatch struct{}

// IsEqual reports per-byte path equivalence, short-circuiting on the first
// byte that is neither ASCII-case-equal nor a separator pair.
func (PathMatch) IsEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		switch {
		case asciiLower(a[i]) == asciiLower(b[i]):
		case a[i] == '/' && b[i] == '\\':
		case a[i] == '\\' && b[i] == '/':
		default:
			return false
		}
	}

	return true
}

// asciiLower converts one ASCII A-Z byte to a-z and leaves all other bytes
// unchanged.
func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}

	return c
}
