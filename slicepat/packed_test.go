// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

package slicepat

import (
	"bytes"
	"errors"
	"testing"
)

func TestPackRoundTrip(t *testing.T) {
	t.Parallel()

	want := [][]byte{[]byte("one"), []byte("tour")}
	p := Pack(want...)

	if p.Count() != len(want) {
		t.Fatalf("Count()=%d, want %d", p.Count(), len(want))
	}

	c := p.Cursor()
	for i, piece := range want {
		got, ok := c.Next()
		if !ok || !bytes.Equal(got, piece) {
			t.Fatalf("piece[%d] = %q, %v, want %q", i, got, ok, piece)
		}
	}

	if _, ok := c.Next(); ok {
		t.Fatalf("cursor must be exhausted after the last piece")
	}
}

func TestPackSkipsEmptyPieces(t *testing.T) {
	t.Parallel()

	p := Pack([]byte("a"), nil, []byte{}, []byte("b"))
	q := Pack([]byte("a"), []byte("b"))

	if !p.Equal(q) {
		t.Fatalf("empty pieces must not be encoded: %x vs %x", p.Bytes(), q.Bytes())
	}
}

func TestPackedPushMatchesPack(t *testing.T) {
	t.Parallel()

	var p Packed
	p.Push([]byte("maps/"))
	p.Push(nil)
	p.Push([]byte(".nav"))

	if !p.Equal(Pack([]byte("maps/"), []byte(".nav"))) {
		t.Fatalf("incremental Push must produce the bulk encoding")
	}
}

func TestPackedEqualityIsCanonical(t *testing.T) {
	t.Parallel()

	a := Pack([]byte("no"), []byte("ze"))
	b := Pack([]byte("no"), []byte("ze"))
	c := Pack([]byte("ze"), []byte("no"))

	if !a.Equal(b) {
		t.Fatalf("same pieces must encode to equal buffers")
	}

	if a.Equal(c) {
		t.Fatalf("reordered pieces must encode to different buffers")
	}

	if a.Compare(b) != 0 || a.Compare(c) == 0 {
		t.Fatalf("Compare must agree with Equal")
	}
}

func TestParsePacked(t *testing.T) {
	t.Parallel()

	raw := Pack([]byte("one"), []byte("tour")).Bytes()

	p, err := ParsePacked(raw)
	if err != nil {
		t.Fatalf("ParsePacked(valid): %v", err)
	}

	if p.Count() != 2 {
		t.Fatalf("Count()=%d, want 2", p.Count())
	}

	if _, err := ParsePacked(raw[:len(raw)-1]); !errors.Is(err, ErrMalformedPacked) {
		t.Fatalf("truncated piece must be rejected, got %v", err)
	}

	if _, err := ParsePacked(raw[:prefixSize-1]); !errors.Is(err, ErrMalformedPacked) {
		t.Fatalf("truncated prefix must be rejected, got %v", err)
	}

	zero := appendPrefix(nil, 0)
	if _, err := ParsePacked(zero); !errors.Is(err, ErrMalformedPacked) {
		t.Fatalf("zero-length record must be rejected, got %v", err)
	}

	if _, err := ParsePacked(nil); err != nil {
		t.Fatalf("empty buffer is a valid empty sequence, got %v", err)
	}
}

func TestTrustedPacked(t *testing.T) {
	t.Parallel()

	raw := Pack([]byte("no"), []byte("ze")).Bytes()
	p := TrustedPacked(raw)

	c := p.Cursor()
	first, ok := c.Next()
	if !ok || !bytes.Equal(first, []byte("no")) {
		t.Fatalf("trusted decode must yield the encoded pieces")
	}
}

func TestPackedPatternFirstMatch(t *testing.T) {
	t.Parallel()

	templates := []string{"*.nav", "maps/*.nav", "no*ze", "*", ""}
	haystacks := []string{
		"DM_FLOOD.NAV", "maps/cp_dustbowl.bsp", "noize", "noize ",
		"Maps/DM_FLOOD.NAV", "", "dm_flood.nav\t",
	}

	for _, template := range templates {
		plain := Parse([]byte(template), wildcard)
		packed := ParsePackedPattern([]byte(template), wildcard)

		if packed.Flags() != plain.Flags() {
			t.Fatalf("%q: packed flags %v, plain flags %v", template, packed.Flags(), plain.Flags())
		}

		for _, haystack := range haystacks {
			wantRest, wantOK := plain.FirstMatch(PathMatch{}, []byte(haystack))
			gotRest, gotOK := packed.FirstMatch(PathMatch{}, []byte(haystack))
			if gotOK != wantOK || !bytes.Equal(gotRest, wantRest) {
				t.Fatalf("%q vs %q: packed (%q, %v), plain (%q, %v)",
					template, haystack, gotRest, gotOK, wantRest, wantOK)
			}
		}
	}
}

func TestPackedPatternKey(t *testing.T) {
	t.Parallel()

	a := ParsePackedPattern([]byte("a*b"), wildcard)
	b := ParsePackedPattern([]byte("a*b"), wildcard)

	if a.Key() != b.Key() {
		t.Fatalf("equal patterns must share a key")
	}

	// Same pieces, different anchoring: flags are part of the key.
	c := ParsePackedPattern([]byte("*a*b"), wildcard)
	if a.Key() == c.Key() {
		t.Fatalf("anchoring flags must distinguish keys")
	}

	// Pieces ["ab"] and ["a","b"] must not collide: the length prefixes
	// make the encoding canonical.
	d := ParsePackedPattern([]byte("ab"), wildcard)
	if a.Key() == d.Key() {
		t.Fatalf("different piece splits must produce different keys")
	}
}

func TestPackPreallocatesExactly(t *testing.T) {
	t.Parallel()

	p := Pack([]byte("one"), []byte("tour"))
	want := 2*prefixSize + len("one") + len("tour")
	if p.Len() != want {
		t.Fatalf("Len()=%d, want %d", p.Len(), want)
	}

	if cap(p.Bytes()) != want {
		t.Fatalf("cap=%d, want exactly %d (bulk construction must not reallocate)", cap(p.Bytes()), want)
	}
}
