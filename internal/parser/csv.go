// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parser

import (
	"strconv"
	"strings"
)

// csvHeader is the header row of [ExportCSV]. Consumers key on it verbatim.
var csvHeader = []string{
	"Index",
	"Title",
	"Status",
	"Manga Progress",
	"Manga Chapter",
	"Manga Unit",
	"Novel Progress",
	"Novel Chapter",
	"Novel Unit",
	"Score",
	"Warnings",
}

// ExportCSV renders parsed entries as CSV, one row per entry, rows separated
// by "\n" and no trailing newline.
//
// Titles are always quoted with embedded quotes doubled. Other text cells are
// quoted only when they contain a comma, a quote or a line break, so a raw
// segment or warning list holding a comma no longer splits the row the way
// older bare-cell exports did. Absent values are empty cells and warnings
// are joined with "; ".
func ExportCSV(entries []ParsedEntry) string {
	var builder strings.Builder
	builder.WriteString(strings.Join(csvHeader, ","))

	for _, entry := range entries {
		row := []string{
			strconv.Itoa(entry.UserIndex),
			quote(entry.Title),
			string(entry.Status),
		}
		row = append(row, progressCells(entry.MangaProgress)...)
		row = append(row, progressCells(entry.NovelProgress)...)
		row = append(row,
			formatNumber(entry.Score),
			escapeCell(strings.Join(entry.ParseWarnings, "; ")),
		)

		builder.WriteByte('\n')
		builder.WriteString(strings.Join(row, ","))
	}

	return builder.String()
}

// progressCells renders the raw, current and unit cells of a track.
func progressCells(progress *ProgressData) []string {
	if progress == nil {
		return []string{"", "", ""}
	}
	return []string{
		escapeCell(progress.Raw),
		formatNumber(progress.Current),
		string(progress.Unit),
	}
}

func formatNumber(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

func quote(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

func escapeCell(cell string) string {
	if strings.ContainsAny(cell, ",\"\r\n") {
		return quote(cell)
	}
	return cell
}
