// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parser

import (
	"regexp"
	"strings"

	"github.com/taibuivan/whatmanga/pkg/pointer"
)

// Segment patterns are tried in order against the whole block; the first
// pattern with a match supplies the segment. Candidates are never merged.
var (
	mangaSegmentPatterns = []*regexp.Regexp{
		// (~78º chap. do mangá)
		regexp.MustCompile(`(?i)\([^)]*mang[aá][^)]*\)`),
		// mangá ... up to the next ".", ")" or "]"
		regexp.MustCompile(`(?i)mang[aá][^.)\]]*[.)\]]`),
	}

	novelSegmentPatterns = []*regexp.Regexp{
		// [*249º chap. da Novel]
		regexp.MustCompile(`(?i)\[[^\]]*(?:novel|ln|light\s*novel)[^\]]*\]`),
		// (~494º chap. da novel)
		regexp.MustCompile(`(?i)\([^)]*(?:novel|ln|light\s*novel)[^)]*\)`),
		regexp.MustCompile(`(?i)(?:novel|ln|light\s*novel)[^.)\]]*[.)\]]`),
	}

	livroPattern = regexp.MustCompile(`(?i)\(Livro\s*(\d+)\)`)
)

// track is one extracted progress track together with the status its segment
// encodes.
type track struct {
	progress *ProgressData
	status   Status
}

// findSegment returns the first match of the first pattern that matches text.
func findSegment(text string, patterns []*regexp.Regexp) (string, bool) {
	for _, pattern := range patterns {
		if segment := pattern.FindString(text); segment != "" {
			return segment, true
		}
	}
	return "", false
}

// readTrack runs the classifiers over a located segment.
func readTrack(segment string) track {
	status, uncertain := classifyStatus(segment)

	unit := detectUnit(segment)
	current, override := extractNumber(segment)
	if override != "" {
		unit = override
	}

	return track{
		progress: &ProgressData{
			Raw:         strings.TrimSpace(segment),
			Current:     current,
			Unit:        unit,
			IsUncertain: uncertain,
		},
		status: status,
	}
}

// extractManga locates the manga progress of a block.
func extractManga(text string) (track, bool) {
	segment, ok := findSegment(text, mangaSegmentPatterns)
	if !ok {
		return track{}, false
	}
	return readTrack(segment), true
}

// extractNovel locates the novel progress of a block and its optional
// "(Livro N)" annotation. Novel lists are counted in chapters unless stated
// otherwise, so an unknown unit is reported as chapter.
func extractNovel(text string) (track, *string, bool) {
	segment, ok := findSegment(text, novelSegmentPatterns)
	if !ok {
		return track{}, nil, false
	}

	result := readTrack(segment)
	if result.progress.Unit == UnitUnknown {
		result.progress.Unit = UnitChapter
	}

	var extra *string
	if match := livroPattern.FindStringSubmatch(segment); match != nil {
		extra = pointer.To("Livro " + match[1])
	}

	return result, extra, true
}
