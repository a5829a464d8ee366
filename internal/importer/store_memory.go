// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import (
	"context"
	"slices"
	"sync"

	"github.com/taibuivan/whatmanga/internal/platform/apperr"
)

// MemoryRepository is a process-local [Repository]. It is safe for
// concurrent use.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*Record
	order   []string
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]*Record)}
}

func (repo *MemoryRepository) DeleteByOwner(_ context.Context, owner string) (int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	removed := 0
	repo.order = slices.DeleteFunc(repo.order, func(id string) bool {
		if repo.records[id].OwnerID != owner {
			return false
		}
		delete(repo.records, id)
		removed++
		return true
	})
	return removed, nil
}

func (repo *MemoryRepository) FindByTitle(_ context.Context, owner, title string) (*Record, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, id := range repo.order {
		record := repo.records[id]
		if record.OwnerID == owner && record.Title == title {
			copied := *record
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Work")
}

func (repo *MemoryRepository) Create(_ context.Context, record *Record) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.records[record.ID]; exists {
		return apperr.Conflict("Work " + record.ID + " already exists")
	}

	copied := *record
	repo.records[record.ID] = &copied
	repo.order = append(repo.order, record.ID)
	return nil
}

func (repo *MemoryRepository) Update(_ context.Context, record *Record) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.records[record.ID]; !exists {
		return apperr.NotFound("Work")
	}

	copied := *record
	repo.records[record.ID] = &copied
	return nil
}

func (repo *MemoryRepository) ListByOwner(_ context.Context, owner string) ([]*Record, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	records := []*Record{}
	for _, id := range repo.order {
		if record := repo.records[id]; record.OwnerID == owner {
			copied := *record
			records = append(records, &copied)
		}
	}
	return records, nil
}
