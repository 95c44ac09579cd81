// Copyright 2026 Laborlink Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package classify

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases the text, applies NFC so composed and decomposed
// Hangul compare equal, and collapses runs of whitespace to single spaces.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = strings.ToLower(text)
	return strings.Join(strings.Fields(text), " ")
}

// Compact reduces the text to its bare content: only ASCII alphanumerics
// and Hangul survive. Used for substring and containment tests where
// punctuation and spacing must not matter.
func Compact(text string) string {
	text = norm.NFC.String(text)
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isCompactRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isCompactRune(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	if r >= 'a' && r <= 'z' {
		return true
	}
	return unicode.Is(unicode.Hangul, r)
}

// Tokenize splits text on non-alphanumeric boundaries and keeps substrings
// of length >= 2 runes.
func Tokenize(text string) []string {
	text = norm.NFC.String(text)
	text = strings.ToLower(text)

	var tokens []string
	var current []rune
	flush := func() {
		if len(current) >= 2 {
			tokens = append(tokens, string(current))
		}
		current = current[:0]
	}

	for _, r := range text {
		if isCompactRune(r) {
			current = append(current, r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// Ngrams returns the character n-grams of a compacted string. When the
// string is shorter than n, the whole string is the sole gram.
func Ngrams(compacted string, n int) []string {
	runes := []rune(compacted)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) < n {
		return []string{compacted}
	}

	grams := make([]string, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+n]))
	}
	return grams
}

// jaccard computes set-based Jaccard similarity over two string slices.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(a))
	for _, item := range a {
		setA[item] = true
	}
	setB := make(map[string]bool, len(b))
	for _, item := range b {
		setB[item] = true
	}

	intersection := 0
	for item := range setA {
		if setB[item] {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
