// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/whatmanga/internal/parser"
	"github.com/taibuivan/whatmanga/internal/platform/apperr"
	"github.com/taibuivan/whatmanga/internal/platform/constants"
	"github.com/taibuivan/whatmanga/internal/platform/ctxutil"
	"github.com/taibuivan/whatmanga/internal/platform/metrics"
	"github.com/taibuivan/whatmanga/internal/platform/validate"
)

// CommitRequest is one batch of reviewed entries to store for an owner.
type CommitRequest struct {
	OwnerID string
	Mode    Mode
	Entries []parser.ParsedEntry
}

// CommitStats summarises a commit. Skipped is reserved and always zero.
type CommitStats struct {
	Created int `json:"created" yaml:"created"`
	Updated int `json:"updated" yaml:"updated"`
	Skipped int `json:"skipped" yaml:"skipped"`
	Total   int `json:"total"   yaml:"total"`
}

type Service struct {
	repo     Repository
	notifier Notifier
	metrics  *metrics.Metrics
	parser   *parser.Parser
	now      func() time.Time
}

// Option configures a [Service].
type Option func(*Service)

// WithClock replaces the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(service *Service) { service.now = now }
}

// WithParser replaces the list parser used by [Service.Preview].
func WithParser(p *parser.Parser) Option {
	return func(service *Service) { service.parser = p }
}

func NewService(repo Repository, notifier Notifier, m *metrics.Metrics, opts ...Option) *Service {
	service := &Service{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		parser:   parser.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Preview parses a list without storing anything.
func (service *Service) Preview(ctx context.Context, text string) *parser.ParseResult {
	start := time.Now()
	result := service.parser.Parse(text)
	service.metrics.RecordParse(result.SuccessCount, result.WarningCount, result.ErrorCount, time.Since(start))

	ctxutil.GetLogger(ctx).Info("list_parsed",
		slog.Int("total_lines", result.TotalLines),
		slog.Int("success", result.SuccessCount),
		slog.Int("warnings", result.WarningCount),
		slog.Int("errors", result.ErrorCount),
	)
	for _, lineErr := range result.ParseErrors {
		ctxutil.GetLogger(ctx).Warn("block_failed",
			slog.Int("line", lineErr.Line),
			slog.String(constants.FieldError, lineErr.Message),
		)
	}
	return result
}

// Commit stores req.Entries for req.OwnerID according to req.Mode.
//
// The request is validated as a whole before anything is written. Writes are
// not transactional: when the repository fails midway, the records written
// so far are kept and the error is returned without stats.
func (service *Service) Commit(ctx context.Context, req CommitRequest) (*CommitStats, error) {
	if err := validateCommit(req); err != nil {
		return nil, err
	}

	logger := ctxutil.GetLogger(ctx)
	now := service.now()
	stats := &CommitStats{Total: len(req.Entries)}

	if req.Mode == ModeReplace {
		removed, err := service.repo.DeleteByOwner(ctx, req.OwnerID)
		if err != nil {
			return nil, storeError(err)
		}
		service.metrics.RecordImport(metrics.OperationDelete, removed)
		service.emit(ctx, ChangeDelete, removed, now)
		logger.Warn("works_replaced", slog.String(constants.FieldOwner, req.OwnerID), slog.Int("removed", removed))
	}

	for _, entry := range req.Entries {
		created, err := service.store(ctx, req, entry, now)
		if err != nil {
			return nil, storeError(err)
		}
		if created {
			stats.Created++
		} else {
			stats.Updated++
		}
	}

	service.metrics.RecordImport(metrics.OperationCreate, stats.Created)
	service.metrics.RecordImport(metrics.OperationUpdate, stats.Updated)
	service.emit(ctx, ChangeAdd, stats.Created, now)
	service.emit(ctx, ChangeUpdate, stats.Updated, now)

	logger.Info("import_committed",
		slog.String(constants.FieldOwner, req.OwnerID),
		slog.String(constants.FieldMode, string(req.Mode)),
		slog.Int("created", stats.Created),
		slog.Int("updated", stats.Updated),
		slog.Int("total", stats.Total),
	)
	return stats, nil
}

// ListRecords returns the stored records of owner in creation order.
func (service *Service) ListRecords(ctx context.Context, owner string) ([]*Record, error) {
	records, err := service.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, storeError(err)
	}
	return records, nil
}

// store writes one entry and reports whether a record was created.
func (service *Service) store(ctx context.Context, req CommitRequest, entry parser.ParsedEntry, now time.Time) (bool, error) {
	if req.Mode == ModeUpdate {
		existing, err := service.repo.FindByTitle(ctx, req.OwnerID, entry.Title)
		switch {
		case err == nil:
			existing.apply(entry)
			existing.UpdatedAt = now
			return false, service.repo.Update(ctx, existing)
		case !apperr.IsNotFound(err):
			return false, err
		}
	}

	return true, service.repo.Create(ctx, NewRecord(req.OwnerID, entry, now))
}

func (service *Service) emit(ctx context.Context, changeType ChangeType, count int, now time.Time) {
	if count <= 0 || service.notifier == nil {
		return
	}
	service.notifier.Notify(ctx, ChangeEvent{
		Type:      changeType,
		Entity:    constants.EntityWork,
		Count:     count,
		Timestamp: now,
	})
}

func validateCommit(req CommitRequest) error {
	modes := make([]string, 0, len(Modes))
	for _, mode := range Modes {
		modes = append(modes, string(mode))
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldOwnerID, req.OwnerID).
		OneOf(FieldMode, string(req.Mode), modes...)

	for i, entry := range req.Entries {
		validator.
			Required(validate.Indexed(FieldEntries, i, FieldTitle), entry.Title).
			MaxLen(validate.Indexed(FieldEntries, i, FieldTitle), entry.Title, MaxTitleLength).
			Custom(validate.Indexed(FieldEntries, i, FieldStatus), !entry.Status.IsValid(), "Must be a known status").
			Custom(validate.Indexed(FieldEntries, i, FieldMangaUnit), !validUnit(entry.MangaProgress), "Must be a known unit").
			Custom(validate.Indexed(FieldEntries, i, FieldNovelUnit), !validUnit(entry.NovelProgress), "Must be a known unit").
			FloatRange(validate.Indexed(FieldEntries, i, FieldScore), entry.Score, 0, 10)
	}

	return validator.Err()
}

// validUnit accepts an absent track or one with a known unit.
func validUnit(progress *parser.ProgressData) bool {
	return progress == nil || progress.Unit.IsValid()
}

// storeError keeps repository AppErrors and wraps anything else as internal.
func storeError(err error) error {
	if apperr.IsAppError(err) {
		return err
	}
	return apperr.Internal(err)
}
