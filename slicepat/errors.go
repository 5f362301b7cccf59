// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

package slicepat

import "errors"

// ErrMalformedPacked indicates bytes that are not a valid packed piece
// buffer. It is only produced by ParsePacked; parsing and matching are
// total and never fail.
var ErrMalformedPacked = errors.New("malformed packed piece buffer")
