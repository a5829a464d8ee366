// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides time-ordered unique identifiers for WhatManga.

Imported works and CLI runs are identified by Version 7 values, so records
created by one import sort in creation order.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// When the entropy source fails it falls back to a random UUIDv4, the same
// way request IDs are minted.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// IsValid reports whether s parses as a UUID of any version.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
