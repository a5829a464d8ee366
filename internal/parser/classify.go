// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// Symbols and numbers may sit anywhere inside a progress segment, so every
// classifier below scans the whole segment. Each classifier is an ordered rule
// table: the first rule that applies wins.

var (
	// uncertainPattern matches a number followed by "?", e.g. "317º?".
	uncertainPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*º?\s*\?`)

	// comboPattern matches "13º vol. 57º chap."; group 2 is the chapter.
	comboPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*º?\s*vol\.?\s*(\d+(?:\.\d+)?)\s*º?\s*(?:chap|cap)`)

	// seasonPattern matches each "Season N" mention.
	seasonPattern = regexp.MustCompile(`(?i)Season\s*(\d+)`)

	// numberPattern matches the first plain number, e.g. "78º" or "71.1".
	numberPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*º?`)

	seasonKeyword  = regexp.MustCompile(`(?i)season`)
	volumeKeyword  = regexp.MustCompile(`(?i)vol`)
	chapterKeyword = regexp.MustCompile(`(?i)chap|cap`)
)

// # Status

type statusRule struct {
	name    string
	applies func(segment string, uncertain bool) bool
	status  Status
}

func containsSymbol(symbol string) func(string, bool) bool {
	return func(segment string, _ bool) bool {
		return strings.Contains(segment, symbol)
	}
}

// statusRules is checked top to bottom. "r.π" comes first because the longer
// symbol must not lose to the ones it may co-occur with.
var statusRules = []statusRule{
	{name: "dropped", applies: containsSymbol("r.π"), status: StatusDroppedHiatus},
	{name: "completed", applies: containsSymbol("*"), status: StatusCompleted},
	{name: "incomplete", applies: containsSymbol("∆"), status: StatusIncomplete},
	{
		name: "in_progress_uncertain",
		applies: func(segment string, uncertain bool) bool {
			return uncertain && strings.Contains(segment, "~")
		},
		status: StatusUncertain,
	},
	{name: "in_progress", applies: containsSymbol("~"), status: StatusInProgress},
	{
		name:    "uncertain",
		applies: func(_ string, uncertain bool) bool { return uncertain },
		status:  StatusUncertain,
	},
}

// classifyStatus derives the reading state of a segment and whether its
// number carries the "?" marker. The two are reported independently: a
// completed segment with "?" stays COMPLETED but is still uncertain.
func classifyStatus(segment string) (status Status, uncertain bool) {
	uncertain = uncertainPattern.MatchString(segment)

	for _, rule := range statusRules {
		if rule.applies(segment, uncertain) {
			return rule.status, uncertain
		}
	}
	return StatusInProgress, uncertain
}

// # Progress Number

// numberRule extracts a progress value. A non-empty unit overrides keyword
// detection for the segment.
type numberRule func(segment string) (value float64, unit Unit, ok bool)

// numberRules prefers the most granular reading of a segment.
var numberRules = []numberRule{
	chapterOfCombo,
	highestSeason,
	firstNumber,
}

// chapterOfCombo reports the chapter of a "vol. + chap." pair, never the volume.
func chapterOfCombo(segment string) (float64, Unit, bool) {
	match := comboPattern.FindStringSubmatch(segment)
	if match == nil {
		return 0, "", false
	}
	value, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return 0, "", false
	}
	return value, UnitMixed, true
}

// highestSeason treats repeated "Season K" mentions as milestones and reports
// the largest one.
func highestSeason(segment string) (float64, Unit, bool) {
	matches := seasonPattern.FindAllStringSubmatch(segment, -1)

	found := false
	highest := 0
	for _, match := range matches {
		season, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if !found || season > highest {
			highest = season
			found = true
		}
	}
	if !found {
		return 0, "", false
	}
	return float64(highest), UnitSeason, true
}

func firstNumber(segment string) (float64, Unit, bool) {
	match := numberPattern.FindStringSubmatch(segment)
	if match == nil {
		return 0, "", false
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, "", false
	}
	return value, "", true
}

// extractNumber returns the progress value of a segment, or nil when the
// segment holds no number, along with any unit the winning rule implies.
func extractNumber(segment string) (*float64, Unit) {
	for _, rule := range numberRules {
		if value, unit, ok := rule(segment); ok {
			return &value, unit
		}
	}
	return nil, ""
}

// # Unit

type unitRule struct {
	applies func(segment string) bool
	unit    Unit
}

// unitRules checks volume before chapter: when both appear outside a combo,
// the volume wins.
var unitRules = []unitRule{
	{applies: comboPattern.MatchString, unit: UnitMixed},
	{applies: seasonKeyword.MatchString, unit: UnitSeason},
	{applies: volumeKeyword.MatchString, unit: UnitVolume},
	{applies: chapterKeyword.MatchString, unit: UnitChapter},
}

// detectUnit classifies the unit of a segment from its keywords.
func detectUnit(segment string) Unit {
	for _, rule := range unitRules {
		if rule.applies(segment) {
			return rule.unit
		}
	}
	return UnitUnknown
}
