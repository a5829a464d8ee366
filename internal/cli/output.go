// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/whatmanga/internal/importer"
	"github.com/taibuivan/whatmanga/internal/parser"
	"github.com/taibuivan/whatmanga/internal/platform/apperr"
)

// OutputFormatter renders command results in the configured format.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Write encodes data as JSON or YAML, or calls text for the text format.
func (f *OutputFormatter) Write(data any, text func(io.Writer) error) error {
	switch f.Format {
	case FormatJSON:
		encoder := json.NewEncoder(f.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case FormatYAML:
		encoder := yaml.NewEncoder(f.Writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return text(f.Writer)
	}
}

// ReportError prints err for the operator, one line per field error.
func ReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)

	if ae := apperr.As(err); ae != nil {
		for _, detail := range ae.Details {
			fmt.Fprintf(w, "  %s: %s\n", detail.Field, detail.Message)
		}
	}
}

// # Text Renderers

func writeParseText(w io.Writer, result *parser.ParseResult) error {
	fmt.Fprintf(w, "%d entries from %d lines (%d with warnings, %d errors)\n",
		result.SuccessCount, result.TotalLines, result.WarningCount, result.ErrorCount)

	for _, entry := range result.Entries {
		fmt.Fprintf(w, "%4d  %s  [%s]", entry.UserIndex, entry.Title, entry.Status)
		writeTrack(w, "manga", entry.MangaProgress)
		writeTrack(w, "novel", entry.NovelProgress)
		if entry.NovelExtra != nil {
			fmt.Fprintf(w, " (%s)", *entry.NovelExtra)
		}
		if entry.Score != nil {
			fmt.Fprintf(w, "  score %s", formatNumber(*entry.Score))
		}
		fmt.Fprintln(w)

		for _, warning := range entry.ParseWarnings {
			fmt.Fprintf(w, "      ! %s\n", warning)
		}
	}

	for _, lineErr := range result.ParseErrors {
		fmt.Fprintf(w, "line %d: %s\n", lineErr.Line, lineErr.Message)
	}
	return nil
}

func writeTrack(w io.Writer, label string, progress *parser.ProgressData) {
	if progress == nil {
		return
	}

	current := "?"
	if progress.Current != nil {
		current = formatNumber(*progress.Current)
	}
	if progress.IsUncertain {
		current += "?"
	}
	fmt.Fprintf(w, "  %s %s %s", label, current, progress.Unit)
}

// ImportOutput is the result of the import command.
type ImportOutput struct {
	Stats   *importer.CommitStats `json:"stats"             yaml:"stats"`
	Records []*importer.Record    `json:"records,omitempty" yaml:"records,omitempty"`
}

func writeImportText(w io.Writer, out ImportOutput) error {
	fmt.Fprintf(w, "created %d, updated %d, skipped %d, total %d\n",
		out.Stats.Created, out.Stats.Updated, out.Stats.Skipped, out.Stats.Total)

	for _, record := range out.Records {
		fmt.Fprintf(w, "%s  %4d  %s  [%s]\n", record.ID, record.UserIndex, record.Slug, record.Status)
	}
	return nil
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
