// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

package slicepat

import "testing"

var (
	benchRestSink []byte
	benchOKSink   bool
)

func BenchmarkParse(b *testing.B) {
	template := []byte("maps/*/nav/*_final*.nav")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := Parse(template, '*')
		if len(p.Pieces()) == 0 {
			b.Fatal("no pieces")
		}
	}
}

func BenchmarkFirstMatchExact(b *testing.B) {
	p := Parse([]byte("maps/*_final*.nav"), '*')
	haystack := []byte("maps/workshop/cp_dustbowl_final1.nav")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchRestSink, benchOKSink = p.FirstMatch(ExactMatch[byte]{}, haystack)
	}

	if !benchOKSink {
		b.Fatal("no match")
	}
}

func BenchmarkFirstMatchPath(b *testing.B) {
	p := Parse([]byte("maps/*_final*.nav"), '*')
	haystack := []byte(`Maps\Workshop\CP_Dustbowl_Final1.NAV`)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchRestSink, benchOKSink = p.FirstMatch(PathMatch{}, haystack)
	}

	if !benchOKSink {
		b.Fatal("no match")
	}
}

func BenchmarkPackedFirstMatchPath(b *testing.B) {
	p := ParsePackedPattern([]byte("maps/*_final*.nav"), '*')
	haystack := []byte("maps/workshop/cp_dustbowl_final1.nav")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchRestSink, benchOKSink = p.FirstMatch(PathMatch{}, haystack)
	}

	if !benchOKSink {
		b.Fatal("no match")
	}
}

func BenchmarkPack(b *testing.B) {
	p := Parse([]byte("maps/*_final*.nav"), '*')
	pieces := p.Pieces()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		packed := Pack(pieces...)
		if packed.Len() == 0 {
			b.Fatal("empty packed buffer")
		}
	}
}
