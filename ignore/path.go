// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

package ignore

// appendNormalized appends src with ASCII A-Z lowered and "\" folded to "/".
//
// The folding collapses each byte to the representative of its equivalence
// class under the default path strategy, so byte equality on normalized
// input coincides with strategy equality on the original input.
func appendNormalized(dst, src []byte) []byte {
	for _, c := range src {
		switch {
		case c >= 'A' && c <= 'Z':
			c += 'a' - 'A'
		case c == '\\':
			c = '/'
		}

		dst = append(dst, c)
	}

	return dst
}
