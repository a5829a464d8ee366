// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parser

import (
	"regexp"
	"strconv"
)

// scorePattern matches "{8.7}" or "{10}".
var scorePattern = regexp.MustCompile(`\{(\d+(?:\.\d+)?)\}`)

const (
	minScore = 0.0
	maxScore = 10.0
)

// extractScore returns the first braced score of a block when it lies in
// [0, 10]. Later braces are not consulted, and an out-of-range score is
// dropped without a warning.
func extractScore(text string) *float64 {
	match := scorePattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	score, err := strconv.ParseFloat(match[1], 64)
	if err != nil || score < minScore || score > maxScore {
		return nil
	}
	return &score
}
