// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

package slicepat

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/bits"
)

// prefixSize is the width of one piece length prefix: the platform's native
// word, in native byte order.
const prefixSize = bits.UintSize / 8

// Packed stores an ordered byte piece sequence as one owned contiguous
// buffer of (length-prefix, raw-bytes) records. Zero-length pieces are never
// written, which keeps the encoding canonical: two packed buffers hold the
// same piece sequence exactly when their bytes are equal, so equality,
// ordering and hashing reduce to plain byte-buffer operations.
type Packed struct {
	buf []byte
}

// Pack encodes pieces into a packed buffer, pre-computing the total
// capacity so the buffer is allocated once.
func Pack(pieces ...[]byte) Packed {
	size := 0
	for _, piece := range pieces {
		if len(piece) > 0 {
			size += prefixSize + len(piece)
		}
	}

	p := Packed{buf: make([]byte, 0, size)}
	for _, piece := range pieces {
		p.Push(piece)
	}

	return p
}

// TrustedPacked wraps raw as a packed buffer without validation.
//
// raw must have been produced by this package's encoder. Decoding bytes of
// any other provenance is outside the contract; use ParsePacked for
// untrusted input.
func TrustedPacked(raw []byte) Packed {
	return Packed{buf: raw}
}

// ParsePacked validates raw as a packed piece buffer: a sequence of
// complete records with non-zero piece lengths.
func ParsePacked(raw []byte) (Packed, error) {
	rest := raw
	for len(rest) > 0 {
		if len(rest) < prefixSize {
			return Packed{}, fmt.Errorf("%w: truncated length prefix", ErrMalformedPacked)
		}

		n := readPrefix(rest)
		rest = rest[prefixSize:]

		if n == 0 {
			return Packed{}, fmt.Errorf("%w: zero-length piece record", ErrMalformedPacked)
		}

		if uint(len(rest)) < n {
			return Packed{}, fmt.Errorf("%w: piece shorter than its length prefix", ErrMalformedPacked)
		}

		rest = rest[n:]
	}

	return Packed{buf: raw}, nil
}

// Push appends one piece. Empty pieces carry no information and are not
// written.
func (p *Packed) Push(piece []byte) {
	if len(piece) == 0 {
		return
	}

	p.buf = appendPrefix(p.buf, uint(len(piece)))
	p.buf = append(p.buf, piece...)
}

// Bytes returns the encoded buffer. The returned slice is read-only.
func (p Packed) Bytes() []byte {
	return p.buf
}

// Len reports the encoded size in bytes.
func (p Packed) Len() int {
	return len(p.buf)
}

// Count reports the number of encoded pieces.
func (p Packed) Count() int {
	n := 0
	for c := p.Cursor(); ; n++ {
		if _, ok := c.Next(); !ok {
			break
		}
	}

	return n
}

// Equal reports byte-for-byte buffer equality, which is piece-sequence
// equality because the encoding is canonical.
func (p Packed) Equal(q Packed) bool {
	return bytes.Equal(p.buf, q.buf)
}

// Compare orders two packed buffers byte-wise.
func (p Packed) Compare(q Packed) int {
	return bytes.Compare(p.buf, q.buf)
}

// Cursor starts sequential decode. Pieces are yielded as subslices of the
// packed buffer; nothing is copied.
func (p Packed) Cursor() PackedCursor {
	return PackedCursor{rest: p.buf}
}

// PackedCursor walks a packed buffer one record at a time. It trusts the
// buffer's provenance; a malformed tail ends iteration.
type PackedCursor struct {
	rest []byte
}

// Next returns the next piece in order.
func (c *PackedCursor) Next() ([]byte, bool) {
	if len(c.rest) < prefixSize {
		return nil, false
	}

	n := readPrefix(c.rest)
	after := c.rest[prefixSize:]
	if uint(len(after)) < n {
		c.rest = nil
		return nil, false
	}

	piece := after[:n]
	c.rest = after[n:]
	return piece, true
}

// PackedPattern is a byte pattern whose pieces live in a packed buffer,
// independent of the template it was parsed from. It is the storable form
// of Pattern[byte], intended for long-lived tables keyed by pattern.
type PackedPattern struct {
	pieces Packed
	flags  Flags
}

// ParsePackedPattern parses template and packs the resulting pieces into an
// owned buffer.
func ParsePackedPattern(template []byte, wildcard byte) PackedPattern {
	return PackPattern(Parse(template, wildcard))
}

// PackPattern copies a byte pattern's pieces into packed form.
func PackPattern(p Pattern[byte]) PackedPattern {
	return PackedPattern{pieces: Pack(p.Pieces()...), flags: p.Flags()}
}

// Flags returns the pattern's anchoring flags.
func (p PackedPattern) Flags() Flags {
	return p.flags
}

// Pieces returns the packed piece buffer.
func (p PackedPattern) Pieces() Packed {
	return p.pieces
}

// FirstMatch evaluates the pattern against haystack under strategy m, with
// the same semantics as Pattern.FirstMatch.
func (p PackedPattern) FirstMatch(m Matcher[byte], haystack []byte) ([]byte, bool) {
	c := p.pieces.Cursor()
	return firstMatch[byte](&c, p.flags, m, haystack)
}

// AppendKey appends the pattern's canonical binary encoding to dst: one
// flags byte followed by the packed piece buffer. Two patterns are equal
// exactly when their keys are equal.
func (p PackedPattern) AppendKey(dst []byte) []byte {
	dst = append(dst, byte(p.flags))
	return append(dst, p.pieces.buf...)
}

// Key returns AppendKey as a string, usable directly as a map key.
func (p PackedPattern) Key() string {
	return string(p.AppendKey(make([]byte, 0, 1+len(p.pieces.buf))))
}

// appendPrefix appends one native-word length prefix in native byte order.
func appendPrefix(dst []byte, n uint) []byte {
	if prefixSize == 8 {
		return binary.NativeEndian.AppendUint64(dst, uint64(n))
	}

	return binary.NativeEndian.AppendUint32(dst, uint32(n))
}

// readPrefix reads one native-word length prefix in native byte order.
func readPrefix(b []byte) uint {
	if prefixSize == 8 {
		return uint(binary.NativeEndian.Uint64(b))
	}

	return uint(binary.NativeEndian.Uint32(b))
}
