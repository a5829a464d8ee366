// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/whatmanga/internal/importer"
	"github.com/taibuivan/whatmanga/internal/parser"
	"github.com/taibuivan/whatmanga/internal/platform/apperr"
	"github.com/taibuivan/whatmanga/internal/platform/ctxutil"
	"github.com/taibuivan/whatmanga/internal/platform/metrics"
)

const sampleList = "1- Naruto \n(*72 vol. do mangá).\n{10}\n\n2- Akame Ga Kill \n(~78º chap. do mangá).\n{8.7}"

type harness struct {
	service *importer.Service
	repo    *importer.MemoryRepository
	metrics *metrics.Metrics
	events  []importer.ChangeEvent
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		repo:    importer.NewMemoryRepository(),
		metrics: metrics.New(prometheus.NewRegistry()),
	}
	notifier := importer.NotifierFunc(func(_ context.Context, event importer.ChangeEvent) {
		h.events = append(h.events, event)
	})
	h.service = importer.NewService(h.repo, notifier, h.metrics,
		importer.WithClock(func() time.Time { return fixedNow }),
	)
	return h
}

func entryTitled(title string) parser.ParsedEntry {
	return parser.ParsedEntry{
		UserIndex:     1,
		Title:         title,
		Status:        parser.StatusInProgress,
		RawBlock:      "1- " + title,
		ParseWarnings: []string{},
	}
}

func entries(t *testing.T) []parser.ParsedEntry {
	t.Helper()
	result := parser.Parse(sampleList)
	require.Len(t, result.Entries, 2)
	return result.Entries
}

/*
TestService_Preview verifies parse metrics and the run logger.
*/
func TestService_Preview(t *testing.T) {
	h := newHarness(t)
	var buf bytes.Buffer
	ctx := ctxutil.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	result := h.service.Preview(ctx, sampleList+"\n\n3- Solo Leveling")

	assert.Equal(t, 3, result.SuccessCount)
	assert.Equal(t, 3.0, testutil.ToFloat64(h.metrics.EntriesParsed))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.EntriesWithWarnings))
	assert.Zero(t, testutil.ToFloat64(h.metrics.BlockErrors))
	assert.Contains(t, buf.String(), `"msg":"list_parsed"`)
}

func TestService_PreviewLogsBlockFailures(t *testing.T) {
	h := newHarness(t)
	failing := parser.New(parser.WithAssembler(func(string, int) *parser.ParsedEntry {
		panic("broken")
	}))
	service := importer.NewService(h.repo, nil, h.metrics, importer.WithParser(failing))

	var buf bytes.Buffer
	ctx := ctxutil.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	result := service.Preview(ctx, sampleList)

	assert.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, 2.0, testutil.ToFloat64(h.metrics.BlockErrors))
	assert.Equal(t, 2, strings.Count(buf.String(), `"msg":"block_failed"`))
}

/*
TestService_CommitAdd creates every entry and notifies once.
*/
func TestService_CommitAdd(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	stats, err := h.service.Commit(ctx, importer.CommitRequest{OwnerID: "a", Mode: importer.ModeAdd, Entries: entries(t)})
	require.NoError(t, err)
	assert.Equal(t, &importer.CommitStats{Created: 2, Total: 2}, stats)

	// Adding again duplicates.
	_, err = h.service.Commit(ctx, importer.CommitRequest{OwnerID: "a", Mode: importer.ModeAdd, Entries: entries(t)})
	require.NoError(t, err)

	records, err := h.service.ListRecords(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, records, 4)

	assert.Equal(t, []importer.ChangeEvent{
		{Type: importer.ChangeAdd, Entity: "work", Count: 2, Timestamp: fixedNow},
		{Type: importer.ChangeAdd, Entity: "work", Count: 2, Timestamp: fixedNow},
	}, h.events)
	assert.Equal(t, 4.0, testutil.ToFloat64(h.metrics.ImportRecords.WithLabelValues(metrics.OperationCreate)))
}

/*
TestService_CommitUpdate updates matching titles in place and creates the rest.
*/
func TestService_CommitUpdate(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.service.Commit(ctx, importer.CommitRequest{OwnerID: "a", Mode: importer.ModeAdd, Entries: entries(t)[:1]})
	require.NoError(t, err)
	before, err := h.repo.FindByTitle(ctx, "a", "Naruto")
	require.NoError(t, err)
	h.events = nil

	later := fixedNow.Add(time.Hour)
	service := importer.NewService(h.repo, importer.NotifierFunc(func(_ context.Context, event importer.ChangeEvent) {
		h.events = append(h.events, event)
	}), h.metrics, importer.WithClock(func() time.Time { return later }))

	updated := entries(t)
	updated[0].UserIndex = 40
	stats, err := service.Commit(ctx, importer.CommitRequest{OwnerID: "a", Mode: importer.ModeUpdate, Entries: updated})
	require.NoError(t, err)
	assert.Equal(t, &importer.CommitStats{Created: 1, Updated: 1, Total: 2}, stats)

	after, err := h.repo.FindByTitle(ctx, "a", "Naruto")
	require.NoError(t, err)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, fixedNow, after.CreatedAt)
	assert.Equal(t, later, after.UpdatedAt)
	assert.Equal(t, 40, after.UserIndex)

	assert.Equal(t, []importer.ChangeEvent{
		{Type: importer.ChangeAdd, Entity: "work", Count: 1, Timestamp: later},
		{Type: importer.ChangeUpdate, Entity: "work", Count: 1, Timestamp: later},
	}, h.events)
}

/*
TestService_CommitReplace only touches the requesting owner.
*/
func TestService_CommitReplace(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.service.Commit(ctx, importer.CommitRequest{OwnerID: "a", Mode: importer.ModeAdd, Entries: entries(t)})
	require.NoError(t, err)
	_, err = h.service.Commit(ctx, importer.CommitRequest{OwnerID: "b", Mode: importer.ModeAdd, Entries: entries(t)})
	require.NoError(t, err)
	h.events = nil

	stats, err := h.service.Commit(ctx, importer.CommitRequest{
		OwnerID: "a",
		Mode:    importer.ModeReplace,
		Entries: []parser.ParsedEntry{entryTitled("Bleach")},
	})
	require.NoError(t, err)
	assert.Equal(t, &importer.CommitStats{Created: 1, Total: 1}, stats)

	mine, err := h.service.ListRecords(ctx, "a")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Bleach", mine[0].Title)

	theirs, err := h.service.ListRecords(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, theirs, 2)

	assert.Equal(t, []importer.ChangeEvent{
		{Type: importer.ChangeDelete, Entity: "work", Count: 2, Timestamp: fixedNow},
		{Type: importer.ChangeAdd, Entity: "work", Count: 1, Timestamp: fixedNow},
	}, h.events)
}

func TestService_CommitEmpty(t *testing.T) {
	h := newHarness(t)

	stats, err := h.service.Commit(context.Background(), importer.CommitRequest{OwnerID: "a", Mode: importer.ModeUpdate})
	require.NoError(t, err)
	assert.Equal(t, &importer.CommitStats{}, stats)
	assert.Empty(t, h.events)
}

/*
TestService_CommitValidation rejects the whole request before writing.
*/
func TestService_CommitValidation(t *testing.T) {
	badScore := 11.0
	bad := entryTitled(" ")
	bad.Status = parser.Status("READING")
	bad.Score = &badScore
	bad.NovelProgress = &parser.ProgressData{Raw: "(~3 pages da Novel)", Unit: parser.Unit("page")}

	long := entryTitled(strings.Repeat("ã", importer.MaxTitleLength+1))
	long.MangaProgress = &parser.ProgressData{Raw: "(~3º chap. do mangá)", Unit: parser.UnitChapter}

	h := newHarness(t)
	_, err := h.service.Commit(context.Background(), importer.CommitRequest{
		Mode:    importer.Mode("merge"),
		Entries: []parser.ParsedEntry{entryTitled("Naruto"), bad, long, entryTitled(strings.Repeat("ã", importer.MaxTitleLength))},
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, apperr.ExitUsage, apperr.ExitCode(err))

	fields := make([]string, 0, len(ae.Details))
	for _, detail := range ae.Details {
		fields = append(fields, detail.Field)
	}
	assert.Equal(t, []string{
		"owner_id",
		"mode",
		"entries[1].title",
		"entries[1].status",
		"entries[1].novel_progress_unit",
		"entries[1].score",
		"entries[2].title",
	}, fields)

	records, err := h.repo.ListByOwner(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, records)
}

type failingRepository struct {
	importer.Repository
	err error
}

func (repo failingRepository) Create(context.Context, *importer.Record) error { return repo.err }

func TestService_CommitStoreFailure(t *testing.T) {
	t.Run("foreign_error_is_internal", func(t *testing.T) {
		repo := failingRepository{Repository: importer.NewMemoryRepository(), err: errors.New("disk full")}
		service := importer.NewService(repo, nil, metrics.New(prometheus.NewRegistry()))

		_, err := service.Commit(context.Background(), importer.CommitRequest{OwnerID: "a", Mode: importer.ModeAdd, Entries: []parser.ParsedEntry{entryTitled("Naruto")}})

		assert.Equal(t, "INTERNAL_ERROR", apperr.As(err).Code)
		assert.ErrorContains(t, err, "disk full")
	})

	t.Run("app_error_passes_through", func(t *testing.T) {
		repo := failingRepository{Repository: importer.NewMemoryRepository(), err: apperr.Conflict("taken")}
		service := importer.NewService(repo, nil, metrics.New(prometheus.NewRegistry()))

		_, err := service.Commit(context.Background(), importer.CommitRequest{OwnerID: "a", Mode: importer.ModeUpdate, Entries: []parser.ParsedEntry{entryTitled("Naruto")}})

		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	})
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxutil.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	importer.LogNotifier{}.Notify(ctx, importer.ChangeEvent{Type: importer.ChangeAdd, Entity: "work", Count: 3, Timestamp: fixedNow})

	assert.Contains(t, buf.String(), `"msg":"data_changed"`)
	assert.Contains(t, buf.String(), `"count":3`)
}
