// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parser

import "strings"

// assembleEntry turns one block into an entry. It returns nil when the block
// has no usable header or an empty title; that is a silent skip, not an error.
func assembleEntry(text string, _ int) *ParsedEntry {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return nil
	}

	index, title, ok := parseHeader(lines[0])
	if !ok {
		return nil
	}

	warnings := []string{}
	body := strings.Join(lines[1:], " ")

	status := StatusInProgress
	var mangaProgress *ProgressData
	if manga, found := extractManga(text); found {
		mangaProgress = manga.progress
		status = manga.status
	} else if strings.Contains(body, "mangá") {
		warnings = append(warnings, WarnMangaUnparsed)
	}

	// The novel status is computed along with the track but never surfaces:
	// the entry status follows the manga track only.
	var novelProgress *ProgressData
	novel, extra, found := extractNovel(text)
	if found {
		novelProgress = novel.progress
	}

	if mangaProgress == nil && novelProgress == nil && len(lines) == 1 {
		warnings = append(warnings, WarnNoProgress)
	}

	return &ParsedEntry{
		UserIndex:     index,
		Title:         title,
		Status:        status,
		MangaProgress: mangaProgress,
		NovelProgress: novelProgress,
		NovelExtra:    extra,
		Score:         extractScore(text),
		RawBlock:      strings.TrimSpace(text),
		ParseWarnings: warnings,
	}
}

// nonBlankLines returns the lines of text that hold more than whitespace.
func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
