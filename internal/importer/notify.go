// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/whatmanga/internal/platform/ctxutil"
)

// ChangeType is the kind of a bulk change.
type ChangeType string

const (
	ChangeAdd    ChangeType = "add"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

// ChangeEvent describes one bulk change of stored records.
type ChangeEvent struct {
	Type      ChangeType `json:"type"`
	Entity    string     `json:"entity"`
	Count     int        `json:"count"`
	Timestamp time.Time  `json:"timestamp"`
}

// Notifier receives change events after a commit. Implementations must not
// block the commit for long.
type Notifier interface {
	Notify(ctx context.Context, event ChangeEvent)
}

// NotifierFunc adapts a plain function to [Notifier].
type NotifierFunc func(ctx context.Context, event ChangeEvent)

// Notify calls f(ctx, event).
func (f NotifierFunc) Notify(ctx context.Context, event ChangeEvent) {
	f(ctx, event)
}

// LogNotifier writes every event to the run logger.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, event ChangeEvent) {
	ctxutil.GetLogger(ctx).Info("data_changed",
		slog.String("type", string(event.Type)),
		slog.String("entity", event.Entity),
		slog.Int("count", event.Count),
		slog.Time("timestamp", event.Timestamp),
	)
}
