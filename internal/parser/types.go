// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package parser converts a hand-authored plain-text tracking list into
structured entries.

The list format is free-form. Each entry starts with a header line
"<index>- <title>" and may carry, anywhere in its body, a manga progress
segment, a novel progress segment and a score in braces:

	148- The Beginning After The End
	(~61º chap. do mangá).
	(~217 chap. da LN (Livro 7)).
	{8.7}

Reading state is encoded with symbols placed next to the progress number:

  - "~" in progress
  - "*" completed
  - "∆" incomplete
  - "r.π" dropped or on hiatus
  - a "?" after the number marks the number as uncertain

Parsing is lenient. Malformed segments degrade to nil fields and warnings, and
a block that fails outright is reported in [ParseResult.ParseErrors] without
aborting the rest of the list. Segment discovery is heuristic ("first matching
pattern wins"), so unusual phrasing can be missed or misattributed.

The package performs no I/O and holds no mutable state; [Parse] is safe for
concurrent use.
*/
package parser

// # Domain Enums

// Status is the reading state derived from a progress segment.
//
// It is overloaded: UNCERTAIN describes confidence in the recorded number
// rather than a reading state, and takes the place of IN_PROGRESS when the
// number is marked with "?".
type Status string

const (
	// StatusInProgress is the default reading state ("~" or no symbol).
	StatusInProgress Status = "IN_PROGRESS"

	// StatusCompleted marks a finished track ("*").
	StatusCompleted Status = "COMPLETED"

	// StatusIncomplete marks a track read partway and left ("∆").
	StatusIncomplete Status = "INCOMPLETE"

	// StatusUncertain marks an in-progress track whose number is unsure ("?").
	StatusUncertain Status = "UNCERTAIN"

	// StatusDroppedHiatus marks a dropped track or one on hiatus ("r.π").
	StatusDroppedHiatus Status = "DROPPED_HIATUS"
)

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case
		StatusInProgress,
		StatusCompleted,
		StatusIncomplete,
		StatusUncertain,
		StatusDroppedHiatus:
		return true
	}
	return false
}

// Unit is the measure a progress number is expressed in.
type Unit string

const (
	UnitChapter Unit = "chapter"
	UnitVolume  Unit = "volume"
	UnitSeason  Unit = "season"
	UnitMixed   Unit = "mixed" // volume and chapter given together
	UnitUnknown Unit = "unknown"
)

// IsValid reports whether u is a recognised [Unit] value.
func (u Unit) IsValid() bool {
	switch u {
	case UnitChapter, UnitVolume, UnitSeason, UnitMixed, UnitUnknown:
		return true
	}
	return false
}

// # Parsed Records

// ProgressData describes one progress track (manga or novel).
type ProgressData struct {
	// Raw is the matched segment, trimmed. Never empty.
	Raw string `json:"raw" yaml:"raw"`

	// Current is the extracted counter, nil when no number was found.
	Current *float64 `json:"current" yaml:"current"`

	Unit Unit `json:"unit" yaml:"unit"`

	// IsUncertain is set whenever the number is followed by "?", whatever the
	// final status is.
	IsUncertain bool `json:"isUncertain" yaml:"isUncertain"`
}

// ParsedEntry is the structured form of one list entry.
//
// Entries are immutable once returned; the import step maps them into
// storage records.
type ParsedEntry struct {
	UserIndex     int           `json:"userIndex" yaml:"userIndex"`
	Title         string        `json:"title" yaml:"title"`
	Status        Status        `json:"status" yaml:"status"`
	MangaProgress *ProgressData `json:"mangaProgress" yaml:"mangaProgress"`
	NovelProgress *ProgressData `json:"novelProgress" yaml:"novelProgress"`

	// NovelExtra is the "(Livro N)" annotation of the novel segment, e.g. "Livro 7".
	NovelExtra *string `json:"novelExtra" yaml:"novelExtra"`

	// Score lies in [0, 10]; out-of-range scores are discarded as nil.
	Score *float64 `json:"score" yaml:"score"`

	RawBlock      string   `json:"rawBlock" yaml:"rawBlock"`
	ParseWarnings []string `json:"parseWarnings" yaml:"parseWarnings"`
}

// LineError reports a block that could not be turned into an entry.
type LineError struct {
	// Line is the 1-indexed line of the block's header.
	Line    int    `json:"line" yaml:"line"`
	Message string `json:"message" yaml:"message"`
}

// ParseResult aggregates one parse call.
//
// SuccessCount always equals len(Entries) and ErrorCount len(ParseErrors).
// WarningCount counts entries with at least one warning.
type ParseResult struct {
	Entries      []ParsedEntry `json:"entries" yaml:"entries"`
	TotalLines   int           `json:"totalLines" yaml:"totalLines"`
	SuccessCount int           `json:"successCount" yaml:"successCount"`
	WarningCount int           `json:"warningCount" yaml:"warningCount"`
	ErrorCount   int           `json:"errorCount" yaml:"errorCount"`
	ParseErrors  []LineError   `json:"parseErrors" yaml:"parseErrors"`
}

// Warning messages attached to entries.
const (
	WarnMangaUnparsed = "Could not parse manga progress"
	WarnNoProgress    = "Entry has no progress information"
)
