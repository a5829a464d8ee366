// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII slugs from arbitrary Unicode titles.
//
// # Usage
//
// Imported works carry a slug next to their title (e.g. "akame-ga-kill") so
// downstream consumers can build stable, readable keys. Titles that contain no
// Latin letters or digits produce an empty slug.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// separators matches any run of characters that are not lowercase ASCII letters or digits.
var separators = regexp.MustCompile(`[^a-z0-9]+`)

// From converts an arbitrary Unicode title into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: á → a + combining acute).
// 2. Removes combining marks (accents).
// 3. Lowercases.
// 4. Replaces every run of non-alphanumeric characters with one hyphen.
// 5. Trims leading/trailing hyphens.
func From(title string) string {
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(stripAccents, title)
	if err != nil {
		folded = title
	}

	// A Caser is stateful and must not be shared between goroutines.
	lowered := cases.Lower(language.Und).String(folded)

	result := separators.ReplaceAllString(lowered, "-")
	return strings.Trim(result, "-")
}
