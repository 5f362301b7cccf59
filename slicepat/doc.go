// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

/*
Package slicepat implements wildcard pattern matching over ordered element
slices (bytes, in practice).

A template is split at every occurrence of a caller-chosen wildcard marker
into literal pieces. A pattern matches a haystack when all pieces occur in
order without overlapping; the wildcard stands for "any run of elements".
Two independent anchoring flags, derived from whether the template begins or
ends with the marker, decide whether the first piece must start at the
haystack's start and whether the last piece must end at the haystack's end.

Basic flow:
  - parse a template (`Parse`)
  - evaluate it against haystacks (`Pattern.FirstMatch`), choosing an
    equivalence strategy (`ExactMatch`, `CaseInsensitive`, `PathMatch`)
  - for long-term storage, pack the pieces into an owned buffer
    (`ParsePackedPattern`, `Pack`) whose equality and hashing reduce to
    byte-buffer equality

Matching is pure: patterns and strategies carry no mutable state after
construction and are safe to evaluate concurrently against independent
haystacks. Matching never allocates; pieces and remainders are subslices of
their owning buffers.

The pattern language is intentionally minimal: one wildcard token, no
escaping, no character classes, no alternation. An element equal to the
marker can never appear literally in a piece.
*/
package slicepat
