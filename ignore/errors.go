// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

package ignore

import "errors"

// Sentinel errors for ignore table operations.
var (
	// ErrInvalidRule indicates malformed or unsupported rule input.
	ErrInvalidRule = errors.New("invalid rule")
)
