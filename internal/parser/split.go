// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parser

import "strings"

// block is the raw text of one entry: its header line plus every following
// line up to the next header.
type block struct {
	// line is the 1-indexed source line of the header.
	line int
	text string
}

// splitBlocks groups the lines of text into entry blocks.
//
// A line opens a new block when its trimmed form is a header. Other lines are
// appended untouched to the open block, blank ones included, so an entry may
// span several paragraphs. Lines before the first header are dropped.
func splitBlocks(text string) []block {
	var (
		blocks  []block
		current []string
		start   int
	)

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, block{line: start, text: strings.Join(current, "\n")})
		}
	}

	for i, line := range strings.Split(text, "\n") {
		if isHeader(line) {
			flush()
			current = []string{line}
			start = i + 1
			continue
		}
		if len(current) > 0 {
			current = append(current, line)
		}
	}
	flush()

	return blocks
}
