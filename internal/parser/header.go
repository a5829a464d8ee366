// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// headerPattern matches "N- Title" and "N-Title". The title must not be empty,
// so a bare "919-" is not a header.
var headerPattern = regexp.MustCompile(`^(\d+)-\s*(.+)$`)

// isHeader reports whether line opens a new entry.
func isHeader(line string) bool {
	return headerPattern.MatchString(strings.TrimSpace(line))
}

// parseHeader extracts the user index and title from a header line.
// ok is false when the line is not a header or the title is blank.
func parseHeader(line string) (index int, title string, ok bool) {
	match := headerPattern.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return 0, "", false
	}

	title = strings.TrimSpace(match[2])
	if title == "" {
		return 0, "", false
	}

	// The index is pass-through; an ordinal too large for int still yields an entry.
	index, _ = strconv.Atoi(match[1])
	return index, title, true
}
