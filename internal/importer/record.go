// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package importer commits parsed list entries into a reader's library.

A commit maps every [parser.ParsedEntry] to a [Record] and stores it through a
[Repository] according to a [Mode]. Listeners learn about the outcome through
a [Notifier].
*/
package importer

import (
	"time"

	"github.com/taibuivan/whatmanga/internal/parser"
	"github.com/taibuivan/whatmanga/pkg/pointer"
	"github.com/taibuivan/whatmanga/pkg/slug"
	"github.com/taibuivan/whatmanga/pkg/uuid"
)

// Mode selects how a commit treats the owner's existing records.
type Mode string

const (
	// ModeAdd creates one record per entry, leaving existing records alone.
	ModeAdd Mode = "add"
	// ModeUpdate updates the record with the same title, or creates one.
	ModeUpdate Mode = "update"
	// ModeReplace deletes every record of the owner, then creates.
	ModeReplace Mode = "replace"
)

// Modes lists every accepted [Mode] in display order.
var Modes = []Mode{ModeAdd, ModeUpdate, ModeReplace}

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	switch m {
	case ModeAdd, ModeUpdate, ModeReplace:
		return true
	}
	return false
}

// Record is one stored work of a reader's library.
type Record struct {
	ID        string        `json:"id"         yaml:"id"`
	OwnerID   string        `json:"owner_id"   yaml:"owner_id"`
	Title     string        `json:"title"      yaml:"title"`
	Slug      string        `json:"slug"       yaml:"slug"`
	UserIndex int           `json:"user_index" yaml:"user_index"`
	Status    parser.Status `json:"status"     yaml:"status"`

	MangaProgressRaw     *string  `json:"manga_progress_raw"     yaml:"manga_progress_raw"`
	MangaProgressCurrent *float64 `json:"manga_progress_current" yaml:"manga_progress_current"`
	MangaProgressUnit    *string  `json:"manga_progress_unit"    yaml:"manga_progress_unit"`

	NovelProgressRaw     *string  `json:"novel_progress_raw"     yaml:"novel_progress_raw"`
	NovelProgressCurrent *float64 `json:"novel_progress_current" yaml:"novel_progress_current"`
	NovelProgressUnit    *string  `json:"novel_progress_unit"    yaml:"novel_progress_unit"`
	NovelExtra           *string  `json:"novel_extra"            yaml:"novel_extra"`

	Score *float64 `json:"score" yaml:"score"`

	// RawImportedText is the block the record was parsed from.
	RawImportedText string `json:"raw_imported_text" yaml:"raw_imported_text"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

const (
	FieldOwnerID = "owner_id"
	FieldMode    = "mode"
	FieldEntries = "entries"
	FieldTitle   = "title"
	FieldStatus  = "status"
	FieldScore   = "score"

	FieldMangaUnit = "manga_progress_unit"
	FieldNovelUnit = "novel_progress_unit"
)

// MaxTitleLength bounds a stored title, in characters.
const MaxTitleLength = 255

// NewRecord maps a parsed entry to a fresh record of owner.
func NewRecord(owner string, entry parser.ParsedEntry, now time.Time) *Record {
	record := &Record{
		ID:              uuid.New(),
		OwnerID:         owner,
		CreatedAt:       now,
		UpdatedAt:       now,
		RawImportedText: entry.RawBlock,
	}
	record.apply(entry)
	return record
}

// apply copies the entry-derived fields onto r. Identity and timestamps are
// left untouched.
func (r *Record) apply(entry parser.ParsedEntry) {
	r.Title = entry.Title
	r.Slug = slug.From(entry.Title)
	r.UserIndex = entry.UserIndex
	r.Status = entry.Status
	r.Score = entry.Score
	r.NovelExtra = entry.NovelExtra
	r.RawImportedText = entry.RawBlock

	r.MangaProgressRaw, r.MangaProgressCurrent, r.MangaProgressUnit = progressColumns(entry.MangaProgress)
	r.NovelProgressRaw, r.NovelProgressCurrent, r.NovelProgressUnit = progressColumns(entry.NovelProgress)
}

// progressColumns flattens a track. An empty raw or unit is stored as nil; a
// zero count is kept.
func progressColumns(progress *parser.ProgressData) (raw *string, current *float64, unit *string) {
	if progress == nil {
		return nil, nil, nil
	}
	return pointer.NonEmpty(progress.Raw), progress.Current, pointer.NonEmpty(string(progress.Unit))
}
