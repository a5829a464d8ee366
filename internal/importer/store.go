// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import "context"

// Repository stores the records of every owner.
type Repository interface {
	// DeleteByOwner removes every record of owner and reports how many were removed.
	DeleteByOwner(ctx context.Context, owner string) (int, error)

	// FindByTitle returns the first record of owner with exactly title, or a
	// NOT_FOUND [apperr.AppError].
	FindByTitle(ctx context.Context, owner, title string) (*Record, error)

	Create(ctx context.Context, record *Record) error
	Update(ctx context.Context, record *Record) error

	// ListByOwner returns the records of owner in creation order.
	ListByOwner(ctx context.Context, owner string) ([]*Record, error)
}
